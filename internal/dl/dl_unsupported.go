//go:build !(linux || darwin)

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
	"runtime"
)

type unsupportedLoader struct{}

// New returns a Loader whose Open always fails; dynamic loading is only
// available on unix platforms.
func New() Loader {
	return unsupportedLoader{}
}

func (unsupportedLoader) Open(path string, _ Mode) (Handle, error) {
	return nil, &OpenError{Path: path, Detail: "dynamic loading is not supported on " + runtime.GOOS}
}
