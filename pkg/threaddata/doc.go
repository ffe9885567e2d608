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

// Package threaddata builds Fusion 360 thread data documents from a thread profile.
//
// # Overview
//
// A Builder walks a thread.Profile size by size, designation by designation
// and thread by thread, and assembles a ThreadType document in that order:
//
//	ThreadType
//	├─ Name, CustomName, Unit, Angle, SortOrder
//	└─ ThreadSize (per size, ascending)
//	   ├─ Size
//	   └─ Designation (per pitch, configured order)
//	      ├─ ThreadDesignation, CTD, Pitch
//	      └─ Thread (per offset: external, then internal)
//	         └─ Gender, Class, MajorDia, PitchDia, MinorDia, TapDrill
//
// Diameters are rendered with four significant digits (FormatSignificant).
// Pitch and Angle keep the decimal spelling they were configured with.
// Documents contain no timestamps, so equal inputs produce identical bytes.
//
// # Usage
//
//	b := threaddata.NewBuilder(profile)
//	doc, err := b.Generate(ctx, "3DPrintedMetricV4.xml")
//
// Generate replaces any existing file atomically.
package threaddata
