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

package thread

import (
	"math"
	"slices"

	"github.com/shopspring/decimal"
)

// Metric3DPrinted is the ISO metric thread form with a family of printable
// clearance classes, one per fit offset.
type Metric3DPrinted struct {
	settings Settings
}

// NewMetric3DPrinted returns the profile for s. The settings are copied.
func NewMetric3DPrinted(s Settings) *Metric3DPrinted {
	return &Metric3DPrinted{settings: s.Clone()}
}

// Kind implements Profile.
func (m *Metric3DPrinted) Kind() Kind {
	return KindMetric3DPrinted
}

// Angle implements Profile.
func (m *Metric3DPrinted) Angle() decimal.Decimal {
	return m.settings.Angle
}

// Sizes implements Profile.
func (m *Metric3DPrinted) Sizes() []int {
	return slices.Clone(m.settings.Sizes)
}

// Designations implements Profile.
func (m *Metric3DPrinted) Designations(size int) []Designation {
	diameter := decimal.NewFromInt(int64(size))
	ds := make([]Designation, 0, len(m.settings.Pitches))
	for _, pitch := range m.settings.Pitches {
		ds = append(ds, NewDesignation(diameter, pitch))
	}
	return ds
}

// Threads implements Profile.
func (m *Metric3DPrinted) Threads(d Designation) []Thread {
	D := d.NominalDiameter.InexactFloat64()
	P := d.Pitch.InexactFloat64()
	Dp, Dmin := BasicDiameters(D, P, m.settings.Angle.InexactFloat64())

	ts := make([]Thread, 0, 2*len(m.settings.Offsets))
	for _, o := range m.settings.Offsets {
		class := ClassLabel(o)
		offset := o.InexactFloat64()

		ts = append(ts, Thread{
			Gender:   GenderExternal,
			Class:    class,
			MajorDia: D - offset,
			PitchDia: Dp - offset,
			MinorDia: Dmin - offset,
		})

		tapDrill := D - P
		ts = append(ts, Thread{
			Gender:   GenderInternal,
			Class:    class,
			MajorDia: D + offset,
			PitchDia: Dp + offset,
			MinorDia: Dmin + offset,
			TapDrill: &tapDrill,
		})
	}
	return ts
}

// BasicDiameters returns the basic pitch and minor diameters of an ISO metric
// thread of nominal diameter D, pitch P and included angle in degrees.
// See https://en.wikipedia.org/wiki/ISO_metric_screw_thread.
func BasicDiameters(D, P, angle float64) (pitchDia, minorDia float64) {
	H := 1 / math.Tan(radians(angle/2)) * (P / 2)
	return D - 2*3*H/8, D - 2*5*H/8
}

func radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}
