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

// Package hal discovers accelerator devices by loading HAL driver
// shared libraries from the XRT installation tree, negotiating each
// driver's ABI version, and aggregating the devices the accepted
// drivers expose.
package hal

import (
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/venkatp36/XRT/internal/config"
	"github.com/venkatp36/XRT/internal/dl"
)

// HAL driver libraries, relative to <install root>/lib.
const (
	coreDriverName  = "libxrt_core.so"
	awsDriverName   = "libxrt_aws.so"
	hwEmuDriverName = "libxrt_hwemu.so"
	swEmuDriverName = "libxrt_swemu.so"
)

// Device is an opaque handle to a board exposed by a HAL driver. The
// loader never looks past this interface; device semantics belong to
// the driver that produced it.
type Device interface {
	// ID returns a process-unique identifier for the device.
	ID() string
	// Driver returns the path of the library that produced the device.
	Driver() string
}

// DeviceList holds discovered devices in discovery order.
type DeviceList []Device

// DeviceFactory constructs devices for a driver that negotiated ABI
// version 2. The factory takes ownership of the library handle and may
// keep the library mapped for the lifetime of the devices it creates.
type DeviceFactory interface {
	CreateDevices(h dl.Handle, path string, count uint32) ([]Device, error)
}

// candidate is one entry of the ordered load sequence: a driver library
// path plus an optional pre-known device count. A zero count means the
// driver's probe entry point decides.
type candidate struct {
	path  string
	count uint32
}

// Manager drives device-discovery passes. A pass is a synchronous,
// single-threaded operation; callers needing concurrent passes must
// serialize them externally.
type Manager struct {
	config  config.Configuration
	fs      FileSystem
	loader  dl.Loader
	factory DeviceFactory
}

// Option adjusts a Manager's collaborators.
type Option func(*Manager)

// WithConfiguration overrides the environment provider.
func WithConfiguration(c config.Configuration) Option {
	return func(m *Manager) { m.config = c }
}

// WithFileSystem overrides the filesystem checks.
func WithFileSystem(fs FileSystem) Option {
	return func(m *Manager) { m.fs = fs }
}

// WithLoader overrides the dynamic loader.
func WithLoader(l dl.Loader) Option {
	return func(m *Manager) { m.loader = l }
}

// New creates a Manager that builds devices through factory. By default
// the process environment, the host filesystem, and the platform
// dynamic loader are consulted; options replace individual
// collaborators.
func New(factory DeviceFactory, opts ...Option) *Manager {
	m := &Manager{
		config:  config.NewEnvConfiguration(),
		fs:      NewOSFileSystem(),
		loader:  dl.New(),
		factory: factory,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// LoadDevices runs one discovery pass and returns the devices the
// candidate drivers expose. The returned list may be empty; it is owned
// by the caller. The pass fails fatally when the install root is unset,
// when the install tree is missing, and when an accepted driver cannot
// be opened or negotiates an unsupported ABI version.
func (m *Manager) LoadDevices() (DeviceList, error) {
	ctx := config.Resolve(m.config)

	if ctx.InstallRoot == "" {
		return nil, &ConfigurationError{Key: config.InstallRootEnvVar}
	}
	if !m.fs.IsDir(ctx.InstallRoot) {
		return nil, &DirectoryNotFoundError{Path: ctx.InstallRoot}
	}

	var devices DeviceList

	if !ctx.Emulation {
		if err := m.attempt(&devices, m.deriveCandidate(ctx.InstallRoot, coreDriverName)); err != nil {
			return nil, err
		}
	}

	// Nothing from the primary driver; try the alternate.
	if len(devices) == 0 {
		if err := m.attempt(&devices, m.deriveCandidate(ctx.InstallRoot, awsDriverName)); err != nil {
			return nil, err
		}
	}

	if ctx.Emulation {
		// Both emulation backends are attempted; their devices coexist.
		hwEmu := m.resolveEmuCandidate(ctx.InstallRoot, ctx.HWEmuDriver, hwEmuDriverName)
		if err := m.attempt(&devices, hwEmu); err != nil {
			return nil, err
		}

		swEmu := m.resolveEmuCandidate(ctx.InstallRoot, ctx.SWEmuDriver, swEmuDriverName)
		if err := m.attempt(&devices, swEmu); err != nil {
			return nil, err
		}
	}

	klog.Infof("Discovered %d device(s)", len(devices))
	return devices, nil
}

// deriveCandidate builds the default candidate path for a driver name.
func (m *Manager) deriveCandidate(root, name string) candidate {
	return candidate{path: filepath.Join(root, "lib", name)}
}

// resolveEmuCandidate resolves an emulation driver candidate: the
// configured override wins unless it is the "null" sentinel, in which
// case the default path under the install tree is derived.
func (m *Manager) resolveEmuCandidate(root, override, name string) candidate {
	if override != config.NullDriver {
		return candidate{path: override}
	}
	return m.deriveCandidate(root, name)
}

// attempt loads one candidate and appends its devices. A candidate that
// fails the shared-library check is skipped silently; any failure after
// the library has been accepted for opening aborts the pass.
func (m *Manager) attempt(devices *DeviceList, c candidate) error {
	if !m.fs.IsDLL(c.path) {
		klog.V(2).Infof("Skipping %v: not a shared library", c.path)
		return nil
	}
	return m.createDevices(devices, c)
}
