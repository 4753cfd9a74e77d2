/**
# Copyright (C) 2016-2024, Xilinx, Inc. All rights reserved.
#
# Licensed under the Apache License, Version 2.0 (the "License");
# you may not use this file except in compliance with the License.
# You may obtain a copy of the License at
#
#     http://www.apache.org/licenses/LICENSE-2.0
#
# Unless required by applicable law or agreed to in writing, software
# distributed under the License is distributed on an "AS IS" BASIS,
# WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
# See the License for the specific language governing permissions and
# limitations under the License.
**/

// Package dl wraps the platform dynamic loader. A Handle is an
// exclusively owned reference to an opened shared library: it is closed
// by its opener on every exit path unless ownership is transferred with
// Release, the single disarm point.
package dl

import (
	"fmt"
)

// Mode selects how an opened library binds its symbols.
type Mode int

const (
	// Lazy resolves symbols on first use. HAL drivers are opened lazily
	// so that probing a driver does not pull in its full symbol set.
	Lazy Mode = iota
	// Now resolves all symbols at open time.
	Now
)

// Loader opens shared libraries by path.
type Loader interface {
	Open(path string, mode Mode) (Handle, error)
}

// Handle is an exclusively owned reference to an opened shared library.
// Handles are not safe for concurrent use.
type Handle interface {
	// Path returns the path the library was opened from.
	Path() string
	// UintFunc resolves an exported entry point taking no arguments and
	// returning an unsigned integer. A missing symbol is a valid
	// outcome, reported through the second result, never an error.
	UintFunc(name string) (func() uint32, bool)
	// VoidFunc resolves an exported entry point taking no arguments and
	// returning nothing.
	VoidFunc(name string) (func(), bool)
	// Close releases the library. Close is a no-op after Release and
	// after a prior Close.
	Close() error
	// Release disarms Close, transferring ownership of the mapped
	// library to the caller. It is called at most once, at the moment a
	// downstream consumer accepts the library.
	Release()
}

// OpenError reports a failed library open. Detail carries the platform
// loader diagnostic.
type OpenError struct {
	Path   string
	Detail string
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open library %q: %s", e.Path, e.Detail)
}

// Ext is the shared-library filename extension on supported platforms.
const Ext = ".so"
