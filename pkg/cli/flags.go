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
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/threadgen/pkg/config"
	"github.com/NVIDIA/threadgen/pkg/serializer"
)

// stdoutPath selects standard output (or input, for --config) instead of a file.
const stdoutPath = "-"

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   `YAML or JSON file overriding the default thread table settings ("-" for stdin)`,
		Sources: cli.EnvVars("THREADGEN_CONFIG"),
	}
}

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   `Output file path (default: the configured file name; "-" for stdout)`,
	}
}

func formatFlag(value string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   value,
		Usage:   fmt.Sprintf("Output format (supported: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func rootFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "root",
		Usage:   "Fusion 360 webdeploy directory (default: platform install location)",
		Sources: cli.EnvVars("THREADGEN_FUSION_ROOT"),
	}
}

func yesFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Install without asking for confirmation",
	}
}

// local and localBool keep a root flag from being inherited by subcommands.
func local(f *cli.StringFlag) *cli.StringFlag {
	f.Local = true
	return f
}

func localBool(f *cli.BoolFlag) *cli.BoolFlag {
	f.Local = true
	return f
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v", f, serializer.SupportedFormats())
	}
	return f, nil
}

// loadConfig returns the --config file (or stdin for "-") over the defaults,
// or the defaults.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	switch path := cmd.String("config"); path {
	case "":
		return config.Default(), nil
	case stdoutPath:
		return config.Read(stdin(cmd))
	default:
		return config.Load(path)
	}
}

func stdout(cmd *cli.Command) io.Writer {
	return cmd.Root().Writer
}

func stdin(cmd *cli.Command) io.Reader {
	return cmd.Root().Reader
}
