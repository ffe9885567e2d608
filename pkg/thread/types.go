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
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Gender distinguishes bolts from nuts.
type Gender string

const (
	GenderExternal Gender = "external"
	GenderInternal Gender = "internal"
)

// String returns the string representation of the Gender.
func (g Gender) String() string {
	return string(g)
}

// Designation identifies one nominal diameter and pitch pair, e.g. M3x3.5.
type Designation struct {
	NominalDiameter decimal.Decimal
	Pitch           decimal.Decimal
	Name            string
}

// NewDesignation returns the designation for diameter and pitch with its derived name.
func NewDesignation(diameter, pitch decimal.Decimal) Designation {
	return Designation{
		NominalDiameter: diameter,
		Pitch:           pitch,
		Name:            DesignationName(diameter, pitch),
	}
}

// DesignationName formats M<diameter>x<pitch>. Integral values carry no decimal point.
func DesignationName(diameter, pitch decimal.Decimal) string {
	return fmt.Sprintf("M%sx%s", diameter.String(), pitch.String())
}

// Thread is one gender of a designation at one fit offset.
type Thread struct {
	Gender   Gender
	Class    string
	MajorDia float64
	PitchDia float64
	MinorDia float64

	// TapDrill is set for internal threads only.
	TapDrill *float64
}

// ClassLabel derives the fit class from the digits after the decimal point of
// the offset's canonical form: 0.25 gives "O.25". A zero offset has no
// fractional digits and gives "O.", which existing thread libraries rely on.
// The integer part is dropped, so offsets of 1 or more (10.5 gives "O.5") do
// not map to distinct classes; config validation rejects them.
func ClassLabel(offset decimal.Decimal) string {
	s := offset.String()
	digits := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		digits = s[i+1:]
	}
	return "O." + digits
}

// Literal renders d with the scale it was written with: "5.0" stays "5.0", "4" stays "4".
func Literal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
