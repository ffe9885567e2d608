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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/threadgen/pkg/defaults"
	"github.com/NVIDIA/threadgen/pkg/errors"
	"github.com/NVIDIA/threadgen/pkg/installer"
)

const installQuestion = "Want Copy file in Fusion360 path?"

func installCmd() *cli.Command {
	return &cli.Command{
		Name:                  "install",
		EnableShellCompletion: true,
		Usage:                 "Copy a thread data file into Fusion 360",
		Description: `Copy a generated thread data file into the ThreadData directory of the first
Fusion 360 deployment found below the webdeploy root:

  Windows: %LOCALAPPDATA%\Autodesk\webdeploy\Production
  macOS:   ~/Library/Application Support/Autodesk/webdeploy/production

Fusion 360 must be restarted to pick up the new table. If no installation is
found, the command reports it and exits successfully.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Value:   defaults.FileName,
				Usage:   "Thread data file to install",
			},
			rootFlag(),
			yesFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInstall(ctx, cmd, cmd.String("source"))
		},
	}
}

// runInstall locates the Fusion 360 thread data directory, asks for
// confirmation unless --yes is set, and copies source into it.
func runInstall(ctx context.Context, cmd *cli.Command, source string) error {
	out := stdout(cmd)
	result := installer.NewResult(source, version)
	defer func() {
		slog.Info("install result",
			"kind", result.Kind,
			"source", result.Source,
			"destination", result.Destination,
			"installed", result.Installed,
			"reason", result.Reason)
	}()

	dir, err := locate(cmd.String("root"))
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeNotFound) {
			result.Reason = err.Error()
			fmt.Fprintln(out, "No Fusion360 Thread Path found.")
			return nil
		}
		return err
	}
	fmt.Fprintln(out, "Found Autodesk Fusion 360 Folder in:", dir)

	ok := cmd.Bool("yes")
	if !ok {
		if ok, err = installer.Confirm(stdin(cmd), out, installQuestion); err != nil {
			return err
		}
	}
	if !ok {
		result.Reason = "declined"
		return nil
	}

	dest, err := installer.Install(ctx, source, dir)
	if err != nil {
		return fmt.Errorf("failed to install %q: %w", source, err)
	}
	result.Destination = dest
	result.Installed = true
	fmt.Fprintln(out, "Copied", source, "to", dest)
	return nil
}

func locate(root string) (string, error) {
	if root == "" {
		var err error
		if root, err = installer.DefaultRoot(); err != nil {
			return "", err
		}
	}
	return installer.Locate(root)
}
