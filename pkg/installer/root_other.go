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

//go:build !darwin && !windows

package installer

import (
	"runtime"

	"github.com/NVIDIA/threadgen/pkg/errors"
)

// Deployments copied from a Windows host keep the Windows layout.
const threadDataSuffix = "Fusion/Server/Fusion/Configuration/ThreadData"

// DefaultRoot fails: Fusion 360 is not distributed for this platform.
func DefaultRoot() (string, error) {
	return "", errors.NewWithContext(errors.ErrCodeNotFound,
		"no default Fusion 360 location on this platform",
		map[string]any{"os": runtime.GOOS})
}
