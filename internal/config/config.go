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

package config

import (
	"os"
)

// Environment variables consumed by the HAL loader.
const (
	// InstallRootEnvVar locates the XRT installation tree.
	InstallRootEnvVar = "XILINX_XRT"
	// EmulationModeEnvVar, when present, selects the emulation drivers
	// instead of the physical ones. Its value is not interpreted.
	EmulationModeEnvVar = "XCL_EMULATION_MODE"
	// HWEmuDriverEnvVar overrides the hardware-emulation driver path.
	HWEmuDriverEnvVar = "XRT_HW_EM_DRIVER"
	// SWEmuDriverEnvVar overrides the software-emulation driver path.
	SWEmuDriverEnvVar = "XRT_SW_EM_DRIVER"
)

// NullDriver is the sentinel override value meaning "no override, derive
// the default driver path instead".
const NullDriver = "null"

// Configuration provides the environment values the loader depends on.
// It exists as a seam so that discovery passes can be driven against a
// fixed configuration in tests.
type Configuration interface {
	// InstallRoot returns the XRT installation root, or "" when unset.
	InstallRoot() string
	// EmulationMode reports whether emulation drivers should be used.
	EmulationMode() bool
	// HWEmuDriver returns the hardware-emulation driver override, or
	// NullDriver when no override is configured.
	HWEmuDriver() string
	// SWEmuDriver returns the software-emulation driver override, or
	// NullDriver when no override is configured.
	SWEmuDriver() string
}

type envConfiguration struct{}

// NewEnvConfiguration returns a Configuration backed by the process
// environment.
func NewEnvConfiguration() Configuration {
	return envConfiguration{}
}

func (envConfiguration) InstallRoot() string {
	return os.Getenv(InstallRootEnvVar)
}

func (envConfiguration) EmulationMode() bool {
	_, ok := os.LookupEnv(EmulationModeEnvVar)
	return ok
}

func (envConfiguration) HWEmuDriver() string {
	return valueOrNull(os.Getenv(HWEmuDriverEnvVar))
}

func (envConfiguration) SWEmuDriver() string {
	return valueOrNull(os.Getenv(SWEmuDriverEnvVar))
}

func valueOrNull(v string) string {
	if v == "" {
		return NullDriver
	}
	return v
}

// ModeContext is an immutable snapshot of the resolved environment,
// taken once at the start of a discovery pass. Threading the snapshot
// through the pass keeps the pass re-entrant with different
// configurations in the same process.
type ModeContext struct {
	InstallRoot string
	Emulation   bool
	HWEmuDriver string
	SWEmuDriver string
}

// Resolve reads all environment values from c and returns the snapshot
// for one discovery pass. Resolve never fails; a missing install root
// yields an empty path and is handled by the caller.
func Resolve(c Configuration) ModeContext {
	return ModeContext{
		InstallRoot: c.InstallRoot(),
		Emulation:   c.EmulationMode(),
		HWEmuDriver: c.HWEmuDriver(),
		SWEmuDriver: c.SWEmuDriver(),
	}
}
