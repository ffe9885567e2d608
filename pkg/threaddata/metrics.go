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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Document generation metrics
	documentBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "threadgen_document_build_duration_seconds",
			Help:    "Duration of thread data document assembly in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 5},
		},
	)

	designationsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "threadgen_designations_generated_total",
			Help: "Total number of thread designations written to documents",
		},
	)
	threadsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "threadgen_threads_generated_total",
			Help: "Total number of thread records written to documents",
		},
	)
)
