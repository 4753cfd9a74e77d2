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

// Package xdp loads the XDP profiling add-on library. The library is
// loaded lazily, from whichever call site asks first, and the
// open-and-initialize sequence runs exactly once per process however
// many callers race for it.
package xdp

import (
	"fmt"
	"path/filepath"
	"sync"

	"k8s.io/klog/v2"

	"github.com/venkatp36/XRT/internal/config"
	"github.com/venkatp36/XRT/internal/dl"
	"github.com/venkatp36/XRT/internal/hal"
)

const (
	libName    = "liboclxdp.so"
	initSymbol = "initXDPLib"
)

// state tracks the one-time sequence so that its exactly-once guarantee
// is explicit rather than hidden in a sync.Once.
type state int

const (
	notStarted state = iota
	inProgress
	done
)

// Loader performs the one-time load of the profiling library.
type Loader struct {
	config config.Configuration
	fs     hal.FileSystem
	loader dl.Loader

	mu    sync.Mutex
	state state
	err   error
}

// New creates a Loader over the given collaborators.
func New(c config.Configuration, fs hal.FileSystem, loader dl.Loader) *Loader {
	return &Loader{
		config: c,
		fs:     fs,
		loader: loader,
	}
}

var defaultLoader = New(config.NewEnvConfiguration(), hal.NewOSFileSystem(), dl.New())

// EnsureLoaded loads and initializes the profiling library using the
// process environment. All call sites share a single one-time
// sequence.
func EnsureLoaded() error {
	return defaultLoader.EnsureLoaded()
}

// EnsureLoaded is idempotent and safe for concurrent use: callers
// observe either "not yet started" or "fully completed", and the
// library's initialization entry point runs on exactly one goroutine.
// The first outcome is latched; a failed initialization is re-raised on
// later calls, never retried.
func (l *Loader) EnsureLoaded() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == done {
		return l.err
	}

	l.state = inProgress
	l.err = l.load()
	l.state = done

	if l.err == nil {
		klog.Infof("Loaded XDP library %v", libName)
	}
	return l.err
}

func (l *Loader) load() error {
	root := l.config.InstallRoot()
	if root == "" {
		return &hal.ConfigurationError{Key: config.InstallRootEnvVar}
	}

	libDir := filepath.Join(root, "lib")
	if !l.fs.IsDir(libDir) {
		return &hal.DirectoryNotFoundError{Path: libDir}
	}

	path := filepath.Join(libDir, libName)
	if !l.fs.IsDLL(path) {
		return &hal.LibraryNotFoundError{Path: path}
	}

	h, err := l.loader.Open(path, dl.Now)
	if err != nil {
		return fmt.Errorf("failed to open XDP library: %w", err)
	}
	defer func() {
		_ = h.Close()
	}()

	initFn, ok := h.VoidFunc(initSymbol)
	if !ok {
		return &hal.SymbolNotFoundError{Symbol: initSymbol, Path: path}
	}

	// The library stays mapped for the rest of the process.
	h.Release()
	initFn()
	return nil
}
