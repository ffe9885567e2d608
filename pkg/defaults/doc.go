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

// Package defaults provides centralized configuration constants for threadgen.
//
// This package defines the thread table parameters, document identity and
// install locations used across the codebase. Centralizing these values keeps
// the generated artifact stable between releases.
//
// # Categories
//
//   - Document constants: artifact file name, display name, unit, sort order
//   - Geometry constants: thread angle, nominal size range
//   - Table literals: pitch and fit offset sequences, spelled exactly as emitted
//   - Install constants: Fusion 360 thread data locations
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/threadgen/pkg/defaults"
//
//	path := filepath.Join(dir, defaults.FileName)
//
// Sequences are returned by functions so callers always receive a fresh copy:
//
//	for _, p := range defaults.Pitches() {
//	    ...
//	}
package defaults
