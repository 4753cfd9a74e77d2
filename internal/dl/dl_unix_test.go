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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloseAfterReleaseIsDisarmed(t *testing.T) {
	// A released handle must never reach dlclose, whatever Close is
	// called with afterwards.
	h := &handle{path: "/opt/xrt/lib/libxrt_core.so"}
	h.Release()

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())
	require.False(t, h.closed)
}

func TestHandlePath(t *testing.T) {
	h := &handle{path: "/opt/xrt/lib/libxrt_core.so"}
	require.Equal(t, "/opt/xrt/lib/libxrt_core.so", h.Path())
}
