//go:build linux || darwin

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

package dl

import (
	"github.com/ebitengine/purego"
)

type dlLoader struct{}

// New returns the Loader backed by the platform dynamic loader.
func New() Loader {
	return dlLoader{}
}

func (dlLoader) Open(path string, mode Mode) (Handle, error) {
	flags := purego.RTLD_GLOBAL
	if mode == Now {
		flags |= purego.RTLD_NOW
	} else {
		flags |= purego.RTLD_LAZY
	}

	lib, err := purego.Dlopen(path, flags)
	if err != nil {
		return nil, &OpenError{Path: path, Detail: err.Error()}
	}
	if lib == 0 {
		return nil, &OpenError{Path: path, Detail: "dlopen returned a null handle"}
	}

	return &handle{path: path, lib: lib}, nil
}

type handle struct {
	path     string
	lib      uintptr
	released bool
	closed   bool
}

func (h *handle) Path() string {
	return h.path
}

func (h *handle) UintFunc(name string) (func() uint32, bool) {
	addr, err := purego.Dlsym(h.lib, name)
	if err != nil || addr == 0 {
		return nil, false
	}

	var fn func() uint32
	purego.RegisterFunc(&fn, addr)
	return fn, true
}

func (h *handle) VoidFunc(name string) (func(), bool) {
	addr, err := purego.Dlsym(h.lib, name)
	if err != nil || addr == 0 {
		return nil, false
	}

	var fn func()
	purego.RegisterFunc(&fn, addr)
	return fn, true
}

func (h *handle) Close() error {
	if h.released || h.closed {
		return nil
	}
	h.closed = true
	return purego.Dlclose(h.lib)
}

func (h *handle) Release() {
	h.released = true
}
