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
	"os"
	"path/filepath"

	"github.com/venkatp36/XRT/internal/dl"
)

// FileSystem answers the existence and type checks the loader makes
// before a library is handed to the dynamic loader.
type FileSystem interface {
	// IsDir reports whether path is an existing directory.
	IsDir(path string) bool
	// IsDLL reports whether path is an existing regular file with the
	// platform shared-library extension.
	IsDLL(path string) bool
}

type osFileSystem struct{}

// NewOSFileSystem returns the FileSystem backed by the host filesystem.
func NewOSFileSystem() FileSystem {
	return osFileSystem{}
}

func (osFileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (osFileSystem) IsDLL(path string) bool {
	if filepath.Ext(path) != dl.Ext {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
