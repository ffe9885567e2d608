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

package defaults

// Document constants.
const (
	// FileName is the artifact written by generate and copied by install.
	FileName = "3DPrintedMetricV4.xml"

	// Name is used for both the Name and CustomName elements.
	Name = "3D-printed Metric Threads V4"

	// Unit is the length unit of every dimension in the document.
	Unit = "mm"

	// SortOrder positions the thread type in the Fusion 360 thread list.
	SortOrder = 3
)

// Geometry constants.
const (
	// Angle is the included thread angle in degrees, spelled as emitted.
	Angle = "60.0"

	// MinSize is the smallest nominal diameter in millimeters.
	MinSize = 3

	// MaxSize is the largest nominal diameter in millimeters (inclusive).
	MaxSize = 79
)

// Install constants.
const (
	// LocalAppDataEnv names the Windows environment variable holding the
	// per-user application data root.
	LocalAppDataEnv = "LOCALAPPDATA"
)

// Sizes returns the nominal diameters MinSize..MaxSize in ascending order.
func Sizes() []int {
	sizes := make([]int, 0, MaxSize-MinSize+1)
	for s := MinSize; s <= MaxSize; s++ {
		sizes = append(sizes, s)
	}
	return sizes
}

// Pitches returns the pitch literals in table order. Order is significant
// and is not numeric: it is the order designations appear in the document.
func Pitches() []string {
	return []string{"3.5", "4", "4.5", "5.0", "5.5", "6.0", "6.5", "7", "7.5", "8.0"}
}

// Offsets returns the per-side fit offsets in millimeters, zero first.
func Offsets() []string {
	return []string{"0.0", "0.1", "0.2", "0.25", "0.3", "0.35", "0.4", "0.45", "0.5", "0.6", "0.7", "0.8", "0.9"}
}
