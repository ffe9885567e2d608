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
	"github.com/google/uuid"

	"github.com/NVIDIA/threadgen/pkg/header"
	"github.com/NVIDIA/threadgen/pkg/thread"
)

// Summary reports the outcome of one generation run.
type Summary struct {
	header.Header `json:",inline" yaml:",inline"`

	Profile      thread.Kind `json:"profile" yaml:"profile"`
	Name         string      `json:"name" yaml:"name"`
	Path         string      `json:"path" yaml:"path"`
	Sizes        int         `json:"sizes" yaml:"sizes"`
	Designations int         `json:"designations" yaml:"designations"`
	Threads      int         `json:"threads" yaml:"threads"`
}

// MetadataRunID is the summary metadata key correlating a run with its log lines.
const MetadataRunID = "runId"

// NewSummary describes doc as generated from profile into path.
func NewSummary(profile thread.Kind, doc *Document, path, version string) *Summary {
	s := &Summary{
		Profile: profile,
		Name:    doc.Name,
		Path:    path,
	}
	s.Init(header.KindGenerationSummary, header.APIVersion, version)
	s.Metadata[MetadataRunID] = uuid.NewString()
	s.Sizes, s.Designations, s.Threads = doc.Counts()
	return s
}
