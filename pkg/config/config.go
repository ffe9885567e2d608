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

// Package config holds the parameters of a thread table generation run.
//
// Default returns the published table. Load applies a YAML or JSON file (Read
// a stream) on top of the defaults; fields absent from the file keep their
// default value:
//
//	# threads.yaml
//	name: Printed Metric Fine
//	customName: Printed Metric Fine
//	fileName: PrintedMetricFine.xml
//	sizes: [6, 8, 10, 12]
//	pitches: [1, 1.25, 1.5]
//	offsets: [0.0, 0.1, 0.2]
//
// Decimal fields keep the spelling used in the file, so "5.0" is emitted as
// 5.0 in Pitch elements.
package config

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/NVIDIA/threadgen/pkg/defaults"
	cerrors "github.com/NVIDIA/threadgen/pkg/errors"
	"github.com/NVIDIA/threadgen/pkg/serializer"
	"github.com/NVIDIA/threadgen/pkg/thread"
)

// Config describes one generated thread type document.
type Config struct {
	Profile    thread.Kind       `json:"profile" yaml:"profile"`
	Name       string            `json:"name" yaml:"name"`
	CustomName string            `json:"customName" yaml:"customName"`
	FileName   string            `json:"fileName" yaml:"fileName"`
	Unit       string            `json:"unit" yaml:"unit"`
	Angle      decimal.Decimal   `json:"angle" yaml:"angle"`
	SortOrder  int               `json:"sortOrder" yaml:"sortOrder"`
	Sizes      []int             `json:"sizes" yaml:"sizes"`
	Pitches    []decimal.Decimal `json:"pitches" yaml:"pitches"`
	Offsets    []decimal.Decimal `json:"offsets" yaml:"offsets"`
}

// Default returns the configuration of the published 3D-printed metric table.
func Default() Config {
	s := thread.DefaultSettings()
	return Config{
		Profile:    thread.KindMetric3DPrinted,
		Name:       defaults.Name,
		CustomName: defaults.Name,
		FileName:   defaults.FileName,
		Unit:       defaults.Unit,
		Angle:      s.Angle,
		SortOrder:  defaults.SortOrder,
		Sizes:      s.Sizes,
		Pitches:    s.Pitches,
		Offsets:    s.Offsets,
	}
}

// Load reads path over the defaults and validates the result.
// An empty file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := serializer.IntoFile(path, &cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, cerrors.WrapWithContext(cerrors.ErrCodeInvalidRequest,
			"failed to load configuration", err, map[string]any{"path": path})
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read decodes a YAML (or JSON) stream over the defaults and validates the
// result. The stream is not closed. Empty input yields the defaults.
func Read(in io.Reader) (Config, error) {
	r, err := serializer.NewReader(serializer.FormatYAML, in)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := r.Deserialize(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, cerrors.Wrap(cerrors.ErrCodeInvalidRequest,
			"failed to read configuration", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Settings returns the profile settings carried by the configuration.
func (c Config) Settings() thread.Settings {
	return thread.Settings{
		Angle:   c.Angle,
		Sizes:   slices.Clone(c.Sizes),
		Pitches: slices.Clone(c.Pitches),
		Offsets: slices.Clone(c.Offsets),
	}
}

// NewProfile builds the configured thread profile.
func (c Config) NewProfile() (thread.Profile, error) {
	return thread.NewProfile(c.Profile, c.Settings())
}

// Validate reports the first invalid field as an INVALID_REQUEST error.
func (c Config) Validate() error {
	switch {
	case !c.Profile.IsValid():
		return invalid("profile", fmt.Sprintf("unknown profile %q, supported values: %v",
			c.Profile, thread.SupportedKinds()))
	case c.Name == "":
		return invalid("name", "name is required")
	case c.FileName == "":
		return invalid("fileName", "file name is required")
	case c.Unit == "":
		return invalid("unit", "unit is required")
	case !c.Angle.IsPositive() || c.Angle.GreaterThanOrEqual(decimal.NewFromInt(180)):
		return invalid("angle", fmt.Sprintf("angle %s must be between 0 and 180 degrees", c.Angle))
	case len(c.Sizes) == 0:
		return invalid("sizes", "at least one size is required")
	case len(c.Pitches) == 0:
		return invalid("pitches", "at least one pitch is required")
	case len(c.Offsets) == 0:
		return invalid("offsets", "at least one offset is required")
	}

	for i, s := range c.Sizes {
		if s <= 0 {
			return invalid("sizes", fmt.Sprintf("size %d must be positive", s))
		}
		if i > 0 && s <= c.Sizes[i-1] {
			return invalid("sizes", fmt.Sprintf("sizes must be strictly ascending: %d follows %d", s, c.Sizes[i-1]))
		}
	}
	for _, p := range c.Pitches {
		if !p.IsPositive() {
			return invalid("pitches", fmt.Sprintf("pitch %s must be positive", p))
		}
	}
	for _, o := range c.Offsets {
		if o.IsNegative() {
			return invalid("offsets", fmt.Sprintf("offset %s must not be negative", o))
		}
		// the class label only carries the fractional digits
		if o.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return invalid("offsets", fmt.Sprintf("offset %s must be less than 1", o))
		}
	}
	return nil
}

func invalid(field, msg string) error {
	return cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest, msg, map[string]any{"field": field})
}
