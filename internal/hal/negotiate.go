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

	"k8s.io/klog/v2"

	"github.com/venkatp36/XRT/internal/dl"
)

// Driver entry points resolved by name. These two are the only
// name-based lookups; everything past them dispatches on the typed ABI
// version.
const (
	probeSymbol   = "xclProbe"
	versionSymbol = "xclVersion"
)

// abiVersion classifies the version value a driver reports.
type abiVersion int

const (
	// abiLegacy is the version 1 ABI. Drivers still reporting it are
	// rejected, never constructed.
	abiLegacy abiVersion = iota
	// abiV2 is the current device-construction ABI.
	abiV2
	// abiUnknown is any version this loader has no strategy for.
	abiUnknown
)

func abiVersionOf(version uint32) abiVersion {
	switch version {
	case 1:
		return abiLegacy
	case 2:
		return abiV2
	default:
		return abiUnknown
	}
}

// createDevices opens a candidate driver library, negotiates its ABI
// version, and appends a device for each board the driver reports. The
// library handle is closed on every path except acceptance by the
// version-2 factory, which takes ownership.
func (m *Manager) createDevices(devices *DeviceList, c candidate) error {
	h, err := m.loader.Open(c.path, dl.Lazy)
	if err != nil {
		return fmt.Errorf("failed to open HAL driver: %w", err)
	}
	defer func() {
		_ = h.Close()
	}()

	probe, ok := h.UintFunc(probeSymbol)
	if !ok {
		// Present but not a HAL driver; it offers no devices.
		klog.V(2).Infof("Driver %v exports no %v entry point", c.path, probeSymbol)
		return nil
	}

	count := c.count
	if count == 0 {
		count = probe()
	}
	if count == 0 {
		klog.V(1).Infof("Driver %v probed no devices", c.path)
		return nil
	}

	// Drivers predating the version entry point are legacy version 1.
	version := uint32(1)
	if versionFn, ok := h.UintFunc(versionSymbol); ok {
		version = versionFn()
	}

	switch abiVersionOf(version) {
	case abiLegacy:
		return &UnsupportedVersionError{Version: version}
	case abiV2:
		created, err := m.factory.CreateDevices(h, c.path, count)
		if err != nil {
			return fmt.Errorf("failed to create devices from %q: %w", c.path, err)
		}
		klog.Infof("Driver %v exposed %d device(s) (HAL version %d)", c.path, len(created), version)
		*devices = append(*devices, created...)
		return nil
	default:
		return &UnsupportedVersionError{Version: version}
	}
}
