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

// Package hal2 implements the device factory for HAL drivers that
// negotiate ABI version 2.
package hal2

import (
	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/venkatp36/XRT/internal/dl"
	"github.com/venkatp36/XRT/internal/hal"
)

// LoadDevices runs one discovery pass against the process environment,
// building devices through the version-2 factory. Together with
// xdp.EnsureLoaded this is the surface the rest of the application
// depends on.
func LoadDevices() (hal.DeviceList, error) {
	return hal.New(NewFactory()).LoadDevices()
}

type factory struct{}

// NewFactory returns the hal.DeviceFactory for version-2 drivers.
func NewFactory() hal.DeviceFactory {
	return factory{}
}

// CreateDevices builds count devices over the opened driver library.
// The factory takes ownership of the handle: the library stays mapped
// for the lifetime of the devices it backs.
func (factory) CreateDevices(h dl.Handle, path string, count uint32) ([]hal.Device, error) {
	h.Release()

	devices := make([]hal.Device, 0, count)
	for i := uint32(0); i < count; i++ {
		d := &device{
			id:     uuid.New().String(),
			driver: path,
			index:  i,
			lib:    h,
		}
		klog.V(1).Infof("Created device %v (%v index %d)", d.id, path, i)
		devices = append(devices, d)
	}
	return devices, nil
}

// device is one board exposed by a version-2 driver.
type device struct {
	id     string
	driver string
	index  uint32
	lib    dl.Handle
}

func (d *device) ID() string {
	return d.id
}

func (d *device) Driver() string {
	return d.driver
}

// Index returns the device's position within its driver.
func (d *device) Index() uint32 {
	return d.index
}
