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

// Package header provides the common header of threadgen reports.
//
// Reports printed by the CLI (generation summaries, profile listings and
// install results) start with the same three fields:
//
//	kind: GenerationSummary
//	apiVersion: threadgen.nvidia.com/v1alpha1
//	metadata:
//	  timestamp: "2026-01-12T10:30:00Z"
//	  version: v0.4.0
//
// Headers are never written into the thread data XML itself, which must stay
// byte-for-byte reproducible.
//
// # Usage
//
//	var s Summary
//	s.Init(header.KindGenerationSummary, header.APIVersion, version)
//
// or with functional options:
//
//	h := header.New(
//	    header.WithKind(header.KindProfileList),
//	    header.WithAPIVersion(header.APIVersion),
//	    header.WithMetadata("version", version),
//	)
package header
