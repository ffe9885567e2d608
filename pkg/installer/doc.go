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

// Package installer places generated thread data files into a local
// Fusion 360 installation.
//
// Fusion 360 keeps one deployment per version below a webdeploy root. Each
// deployment carries a ThreadData directory from which the thread dialog
// reads its tables:
//
//	%LOCALAPPDATA%\Autodesk\webdeploy\Production\<build>\Fusion\Server\Fusion\Configuration\ThreadData
//	~/Library/Application Support/Autodesk/webdeploy/production/<build>/Autodesk Fusion 360.app/...
//
// Locate picks the first deployment (in lexical order) that has the
// directory, Confirm asks the operator, and Install copies the file in place
// without ever leaving a partially written table behind.
//
// A missing installation is reported with the NOT_FOUND error code, which
// callers treat as a soft outcome.
package installer
