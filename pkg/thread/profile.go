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
	"slices"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/NVIDIA/threadgen/pkg/defaults"
	"github.com/NVIDIA/threadgen/pkg/errors"
)

// Profile is a thread standard able to enumerate its sizes, designations and threads.
// Implementations must be deterministic: equal settings always yield equal sequences.
type Profile interface {
	// Kind identifies the profile implementation.
	Kind() Kind

	// Angle is the included thread angle in degrees.
	Angle() decimal.Decimal

	// Sizes returns the nominal diameters in ascending order without duplicates.
	Sizes() []int

	// Designations returns one designation per configured pitch, in configured order.
	Designations(size int) []Designation

	// Threads returns, per fit offset in configured order, the external then the internal thread.
	Threads(d Designation) []Thread
}

// Kind names a registered profile implementation.
type Kind string

const (
	// KindMetric3DPrinted is the ISO metric form with printable fit offsets.
	KindMetric3DPrinted Kind = "metric-3d-printed"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether a profile of this kind is registered.
func (k Kind) IsValid() bool {
	_, ok := registry[k]
	return ok
}

// Settings are the table parameters shared by all profiles.
type Settings struct {
	Angle   decimal.Decimal
	Sizes   []int
	Pitches []decimal.Decimal
	Offsets []decimal.Decimal
}

// DefaultSettings returns the table published as 3D-printed Metric Threads V4.
func DefaultSettings() Settings {
	return Settings{
		Angle:   decimal.RequireFromString(defaults.Angle),
		Sizes:   defaults.Sizes(),
		Pitches: mustDecimals(defaults.Pitches()),
		Offsets: mustDecimals(defaults.Offsets()),
	}
}

func mustDecimals(literals []string) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(literals))
	for _, l := range literals {
		out = append(out, decimal.RequireFromString(l))
	}
	return out
}

// Clone returns a deep copy so profiles never share slices with their callers.
func (s Settings) Clone() Settings {
	return Settings{
		Angle:   s.Angle,
		Sizes:   slices.Clone(s.Sizes),
		Pitches: slices.Clone(s.Pitches),
		Offsets: slices.Clone(s.Offsets),
	}
}

type factory func(Settings) Profile

var registry = map[Kind]factory{
	KindMetric3DPrinted: func(s Settings) Profile { return NewMetric3DPrinted(s) },
}

// SupportedKinds returns the registered profile kinds, sorted.
func SupportedKinds() []string {
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	return kinds
}

// NewProfile builds the registered profile for kind.
func NewProfile(kind Kind, s Settings) (Profile, error) {
	f, ok := registry[kind]
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown thread profile %q", kind),
			map[string]any{"supported": SupportedKinds()})
	}
	return f(s), nil
}
