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

package threaddata

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NVIDIA/threadgen/pkg/config"
	"github.com/NVIDIA/threadgen/pkg/defaults"
	"github.com/NVIDIA/threadgen/pkg/serializer"
	"github.com/NVIDIA/threadgen/pkg/thread"
)

// Option is a functional option for configuring Builder instances.
type Option func(*Builder)

// WithName sets the Name element. CustomName follows unless set explicitly.
func WithName(name string) Option {
	return func(b *Builder) {
		b.name = name
	}
}

// WithCustomName sets the CustomName element.
func WithCustomName(name string) Option {
	return func(b *Builder) {
		b.customName = name
	}
}

// WithUnit sets the Unit element.
func WithUnit(unit string) Option {
	return func(b *Builder) {
		b.unit = unit
	}
}

// WithSortOrder sets the SortOrder element.
func WithSortOrder(order int) Option {
	return func(b *Builder) {
		b.sortOrder = order
	}
}

// Builder assembles thread data documents from a profile.
type Builder struct {
	profile    thread.Profile
	name       string
	customName string
	unit       string
	sortOrder  int
}

// NewBuilder creates a Builder for profile with the published document
// metadata, adjusted by opts.
func NewBuilder(profile thread.Profile, opts ...Option) *Builder {
	b := &Builder{
		profile:   profile,
		name:      defaults.Name,
		unit:      defaults.Unit,
		sortOrder: defaults.SortOrder,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.customName == "" {
		b.customName = b.name
	}
	return b
}

// NewBuilderFromConfig validates cfg and creates a Builder for its profile.
func NewBuilderFromConfig(cfg config.Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	profile, err := cfg.NewProfile()
	if err != nil {
		return nil, err
	}
	return NewBuilder(profile,
		WithName(cfg.Name),
		WithCustomName(cfg.CustomName),
		WithUnit(cfg.Unit),
		WithSortOrder(cfg.SortOrder),
	), nil
}

// Build assembles the document in generation order: sizes ascending,
// designations in pitch order, threads per offset external then internal.
func (b *Builder) Build() *Document {
	start := time.Now()
	defer func() {
		documentBuildDuration.Observe(time.Since(start).Seconds())
	}()

	doc := &Document{
		Name:       b.name,
		CustomName: b.customName,
		Unit:       b.unit,
		Angle:      thread.Literal(b.profile.Angle()),
		SortOrder:  b.sortOrder,
	}

	for _, size := range b.profile.Sizes() {
		ts := ThreadSize{Size: size}
		for _, d := range b.profile.Designations(size) {
			ts.Designations = append(ts.Designations, b.designation(d))
		}
		slog.Debug("thread size built", "size", size, "designations", len(ts.Designations))
		doc.ThreadSizes = append(doc.ThreadSizes, ts)
	}

	return doc
}

func (b *Builder) designation(d thread.Designation) Designation {
	threads := b.profile.Threads(d)
	out := Designation{
		ThreadDesignation: d.Name,
		CTD:               d.Name,
		Pitch:             thread.Literal(d.Pitch),
		Threads:           make([]Thread, 0, len(threads)),
	}
	for _, t := range threads {
		out.Threads = append(out.Threads, formatThread(t))
	}

	designationsGenerated.Inc()
	threadsGenerated.Add(float64(len(out.Threads)))
	return out
}

func formatThread(t thread.Thread) Thread {
	out := Thread{
		Gender:   t.Gender.String(),
		Class:    t.Class,
		MajorDia: FormatSignificant(t.MajorDia),
		PitchDia: FormatSignificant(t.PitchDia),
		MinorDia: FormatSignificant(t.MinorDia),
	}
	// a zero tap drill (D == P) is left out of the document
	if t.TapDrill != nil && *t.TapDrill != 0 {
		out.TapDrill = FormatSignificant(*t.TapDrill)
	}
	return out
}

// Write builds the document and hands it to s.
func (b *Builder) Write(ctx context.Context, s serializer.Serializer) (*Document, error) {
	doc := b.Build()
	if err := s.Serialize(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to write thread data: %w", err)
	}
	return doc, nil
}

// Generate builds the document and writes it as XML to path, replacing any
// existing file atomically.
func (b *Builder) Generate(ctx context.Context, path string) (*Document, error) {
	doc, err := b.Write(ctx, serializer.NewAtomicFileWriter(serializer.FormatXML, path))
	if err != nil {
		return nil, err
	}

	sizes, designations, threads := doc.Counts()
	slog.Info("thread data generated",
		"path", path,
		"profile", b.profile.Kind(),
		"sizes", sizes,
		"designations", designations,
		"threads", threads)

	return doc, nil
}
