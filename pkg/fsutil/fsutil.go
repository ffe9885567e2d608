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

// Package fsutil provides durable file replacement.
//
// ReplaceFile stages content in a temporary file in the target directory and
// renames it over the target once fully written. On Unix the temporary file is
// fsynced before the rename (github.com/google/renameio/v2); on Windows the
// rename is best-effort atomic. Either way a failed write leaves the previous
// file in place.
package fsutil

import (
	"io"
	"os"
)

// WriteFunc streams file content into w.
type WriteFunc func(w io.Writer) error

// DefaultPerm is the mode given to files created by ReplaceFile.
const DefaultPerm os.FileMode = 0o644
