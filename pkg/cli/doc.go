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

// Package cli implements the command-line interface for threadgen.
//
// # Overview
//
// threadgen generates Fusion 360 thread data tables for 3D-printed metric
// threads and optionally installs them into a local Fusion 360 deployment.
//
// # Commands
//
// Without a subcommand, threadgen generates the table into the working
// directory and then offers to copy it into Fusion 360:
//
//	threadgen [--config threads.yaml] [--output 3DPrintedMetricV4.xml] [--root DIR] [--yes]
//
// generate - Write the thread data document:
//
//	threadgen generate --config threads.yaml --output PrintedMetricFine.xml
//
// The artifact is XML unless --format selects json, yaml or table for
// inspection. An output of "-" writes to stdout. --metrics-textfile exports
// the generation metrics in the node-exporter textfile format.
//
// install - Copy a generated file into the Fusion 360 ThreadData directory:
//
//	threadgen install --source 3DPrintedMetricV4.xml [--root DIR] [--yes]
//
// A missing Fusion 360 installation is reported and is not an error.
//
// profiles - List the available thread profiles and their default settings:
//
//	threadgen profiles --format json
//
// # Global Flags
//
//	--log-level    Logging verbosity: debug, info, warn, error (env LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Exit Codes
//
//	0  Success, including "no Fusion 360 installation found"
//	1  Invalid configuration, generation or install failure
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/threadgen/pkg/cli.version=1.0.0'"
package cli
