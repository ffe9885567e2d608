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

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/threadgen/pkg/serializer"
	"github.com/NVIDIA/threadgen/pkg/threaddata"
)

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate",
		EnableShellCompletion: true,
		Usage:                 "Generate the Fusion 360 thread data file",
		Description: `Generate the thread data table for every configured size, pitch and fit offset.

Each size yields one designation per pitch (e.g. M10x1.5), and each designation
one external and one internal thread per offset. Diameters are rendered with
four significant digits.

The file is written as XML unless --format selects json, yaml or table. An
existing file is replaced atomically.`,
		Flags: []cli.Flag{
			configFlag(),
			outputFlag(),
			formatFlag(string(serializer.FormatXML)),
			&cli.StringFlag{
				Name:  "metrics-textfile",
				Usage: "Write generation metrics to this file in the node-exporter textfile format",
			},
			&cli.BoolFlag{
				Name:  "summary",
				Usage: "Print the generation summary to stdout as YAML",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			gen, err := runGenerate(ctx, cmd)
			if err != nil {
				return err
			}

			if path := cmd.String("metrics-textfile"); path != "" {
				if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
					return fmt.Errorf("failed to write metrics to %q: %w", path, err)
				}
				slog.Debug("metrics written", "path", path)
			}

			if cmd.Bool("summary") {
				return serializer.NewWriter(serializer.FormatYAML, stdout(cmd)).Serialize(ctx, gen.summary)
			}
			return nil
		},
	}
}

type generation struct {
	path    string
	summary *threaddata.Summary
}

// runGenerate writes the configured document to --output in --format.
// Commands without a --format flag always write XML.
func runGenerate(ctx context.Context, cmd *cli.Command) (*generation, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	format := serializer.FormatXML
	if cmd.IsSet("format") {
		if format, err = parseOutputFormat(cmd); err != nil {
			return nil, err
		}
	}

	builder, err := threaddata.NewBuilderFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	path := cmd.String("output")
	if path == "" {
		path = cfg.FileName
	}

	var doc *threaddata.Document
	switch {
	case path == stdoutPath:
		doc, err = builder.Write(ctx, serializer.NewWriter(format, stdout(cmd)))
	case format == serializer.FormatXML:
		doc, err = builder.Generate(ctx, path)
	default:
		doc, err = builder.Write(ctx, serializer.NewAtomicFileWriter(format, path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate thread data: %w", err)
	}

	summary := threaddata.NewSummary(cfg.Profile, doc, path, version)
	slog.Info("generation summary",
		"kind", summary.Kind,
		"runId", summary.Metadata[threaddata.MetadataRunID],
		"profile", summary.Profile,
		"name", summary.Name,
		"path", summary.Path,
		"sizes", summary.Sizes,
		"designations", summary.Designations,
		"threads", summary.Threads)

	return &generation{path: path, summary: summary}, nil
}
