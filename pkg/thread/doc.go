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

// Package thread derives screw thread dimensions for printable thread profiles.
//
// # Overview
//
// A Profile describes one thread standard: the nominal sizes it covers, the
// pitches offered for each size, and the geometry used to derive major, pitch
// and minor diameters. Every method is a pure function of the profile settings.
//
// The only registered profile is KindMetric3DPrinted, the ISO metric thread
// form with a family of per-side fit offsets that leave room for the
// tolerances of additive manufacturing. External threads are shrunk by the
// offset and internal threads grown by it, so a printed bolt and nut with the
// same designation and class fit with clearance on both flanks.
//
// # Geometry
//
// For nominal diameter D, pitch P and thread angle A:
//
//	H     = 1/tan(A/2) * P/2
//	Dp    = D - 2*3H/8
//	Dmin  = D - 2*5H/8
//
// Profiles assume pitches are sensible for the diameter. A pitch larger than
// the diameter yields negative minor diameters; these are emitted unchanged.
//
// # Usage
//
//	p, err := thread.NewProfile(thread.KindMetric3DPrinted, thread.DefaultSettings())
//	if err != nil {
//	    return err
//	}
//	for _, size := range p.Sizes() {
//	    for _, d := range p.Designations(size) {
//	        threads := p.Threads(d)
//	        ...
//	    }
//	}
package thread
