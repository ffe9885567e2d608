// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build windows

package installer

import (
	"os"
	"path/filepath"

	"github.com/NVIDIA/threadgen/pkg/defaults"
	"github.com/NVIDIA/threadgen/pkg/errors"
)

const threadDataSuffix = "Fusion/Server/Fusion/Configuration/ThreadData"

// DefaultRoot returns the webdeploy root below %LOCALAPPDATA%.
func DefaultRoot() (string, error) {
	base := os.Getenv(defaults.LocalAppDataEnv)
	if base == "" {
		return "", errors.New(errors.ErrCodeNotFound, defaults.LocalAppDataEnv+" is not set")
	}
	return filepath.Join(base, "Autodesk", "webdeploy", "Production"), nil
}
