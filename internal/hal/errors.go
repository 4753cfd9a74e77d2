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

package hal

import (
	"fmt"
)

// ConfigurationError indicates that a required environment value is not
// set. Key names the missing variable.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return e.Key + " must be set"
}

// DirectoryNotFoundError indicates that an expected directory does not
// exist.
type DirectoryNotFoundError struct {
	Path string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("no such directory %q", e.Path)
}

// LibraryNotFoundError indicates that an expected library file is
// missing or is not a shared library.
type LibraryNotFoundError struct {
	Path string
}

func (e *LibraryNotFoundError) Error() string {
	return fmt.Sprintf("library %q not found", e.Path)
}

// SymbolNotFoundError indicates that a mandatory entry point is not
// exported by an opened library.
type SymbolNotFoundError struct {
	Symbol string
	Path   string
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("symbol %q not found in %q", e.Symbol, e.Path)
}

// UnsupportedVersionError indicates that a driver reported an ABI
// version this loader cannot safely interpret. Version 1, the legacy
// ABI, is rejected explicitly rather than guessed at.
type UnsupportedVersionError struct {
	Version uint32
}

func (e *UnsupportedVersionError) Error() string {
	if e.Version == 1 {
		return fmt.Sprintf("legacy HAL version %d not supported", e.Version)
	}
	return fmt.Sprintf("HAL version %d not supported", e.Version)
}
