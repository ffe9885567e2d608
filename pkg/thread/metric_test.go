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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func testSettings(sizes []int, pitches, offsets []string) Settings {
	return Settings{
		Angle:   decimal.RequireFromString("60.0"),
		Sizes:   sizes,
		Pitches: mustDecimals(pitches),
		Offsets: mustDecimals(offsets),
	}
}

func TestMetric3DPrinted_ZeroOffsetGendersMatch(t *testing.T) {
	p := NewMetric3DPrinted(DefaultSettings())

	for _, size := range p.Sizes() {
		for _, d := range p.Designations(size) {
			ts := p.Threads(d)
			require.GreaterOrEqual(t, len(ts), 2)

			ext, in := ts[0], ts[1]
			require.Equal(t, GenderExternal, ext.Gender, d.Name)
			require.Equal(t, GenderInternal, in.Gender, d.Name)
			assert.Equal(t, ext.MajorDia, in.MajorDia, d.Name)
			assert.Equal(t, ext.PitchDia, in.PitchDia, d.Name)
			assert.Equal(t, ext.MinorDia, in.MinorDia, d.Name)

			require.NotNil(t, in.TapDrill, d.Name)
			want := d.NominalDiameter.InexactFloat64() - d.Pitch.InexactFloat64()
			assert.InDelta(t, want, *in.TapDrill, tolerance, d.Name)
		}
	}
}

func TestMetric3DPrinted_ThreadOrdering(t *testing.T) {
	s := DefaultSettings()
	p := NewMetric3DPrinted(s)

	for _, d := range p.Designations(12) {
		ts := p.Threads(d)
		require.Len(t, ts, 2*len(s.Offsets))

		for i, o := range s.Offsets {
			ext, in := ts[2*i], ts[2*i+1]
			assert.Equal(t, GenderExternal, ext.Gender)
			assert.Equal(t, GenderInternal, in.Gender)
			assert.Equal(t, ClassLabel(o), ext.Class)
			assert.Equal(t, ext.Class, in.Class)
			assert.Nil(t, ext.TapDrill, "external threads carry no tap drill")
			assert.NotNil(t, in.TapDrill)
		}
	}
}

func TestMetric3DPrinted_OffsetsApplyPerGender(t *testing.T) {
	p := NewMetric3DPrinted(testSettings([]int{10}, []string{"4"}, []string{"0.0", "0.25"}))

	ts := p.Threads(p.Designations(10)[0])
	require.Len(t, ts, 4)

	base, ext, in := ts[0], ts[2], ts[3]
	assert.Equal(t, "O.25", ext.Class)

	assert.InDelta(t, 9.75, ext.MajorDia, tolerance)
	assert.InDelta(t, base.PitchDia-0.25, ext.PitchDia, tolerance)
	assert.InDelta(t, base.MinorDia-0.25, ext.MinorDia, tolerance)

	assert.InDelta(t, 10.25, in.MajorDia, tolerance)
	assert.InDelta(t, base.PitchDia+0.25, in.PitchDia, tolerance)
	assert.InDelta(t, base.MinorDia+0.25, in.MinorDia, tolerance)

	require.NotNil(t, in.TapDrill)
	assert.InDelta(t, 6.0, *in.TapDrill, tolerance, "tap drill does not depend on the offset")
}

func TestMetric3DPrinted_Designations(t *testing.T) {
	s := DefaultSettings()
	p := NewMetric3DPrinted(s)

	ds := p.Designations(3)
	require.Len(t, ds, len(s.Pitches))

	names := make([]string, 0, len(ds))
	for i, d := range ds {
		assert.True(t, d.Pitch.Equal(s.Pitches[i]), "pitch order must follow configuration")
		assert.True(t, d.NominalDiameter.Equal(decimal.NewFromInt(3)))
		names = append(names, d.Name)
	}

	assert.Equal(t, []string{
		"M3x3.5", "M3x4", "M3x4.5", "M3x5", "M3x5.5",
		"M3x6", "M3x6.5", "M3x7", "M3x7.5", "M3x8",
	}, names)
}

func TestMetric3DPrinted_SizesAreCopied(t *testing.T) {
	sizes := []int{3, 4, 5}
	p := NewMetric3DPrinted(testSettings(sizes, []string{"1"}, []string{"0.0"}))

	sizes[0] = 99
	got := p.Sizes()
	assert.Equal(t, []int{3, 4, 5}, got)

	got[1] = 42
	assert.Equal(t, []int{3, 4, 5}, p.Sizes())
}

func TestMetric3DPrinted_DefaultSizes(t *testing.T) {
	sizes := NewMetric3DPrinted(DefaultSettings()).Sizes()
	require.Len(t, sizes, 77)
	assert.Equal(t, 3, sizes[0])
	assert.Equal(t, 79, sizes[len(sizes)-1])
}

func TestMetric3DPrinted_Deterministic(t *testing.T) {
	a := NewMetric3DPrinted(DefaultSettings())
	b := NewMetric3DPrinted(DefaultSettings())

	for _, size := range []int{3, 40, 79} {
		da, db := a.Designations(size), b.Designations(size)
		require.Equal(t, len(da), len(db))
		for i := range da {
			assert.Equal(t, da[i].Name, db[i].Name)
			assert.Equal(t, a.Threads(da[i]), b.Threads(db[i]))
		}
	}
}

func TestBasicDiameters(t *testing.T) {
	tests := []struct {
		name      string
		d, p      float64
		wantPitch float64
		wantMinor float64
	}{
		// ISO 724: d2 = d - 0.649519P, d1 = d - 1.082532P
		{"M10x1.5", 10, 1.5, 9.025721, 8.376202},
		{"M6x1", 6, 1, 5.350481, 4.917468},
		{"M3x3.5 negative minor", 3, 3.5, 0.726683, -0.788861},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pitch, minor := BasicDiameters(tt.d, tt.p, 60)
			assert.InDelta(t, tt.wantPitch, pitch, 1e-6)
			assert.InDelta(t, tt.wantMinor, minor, 1e-6)
		})
	}
}
