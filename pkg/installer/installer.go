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

package installer

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/NVIDIA/threadgen/pkg/errors"
	"github.com/NVIDIA/threadgen/pkg/fsutil"
	"github.com/NVIDIA/threadgen/pkg/header"
)

// ThreadDataDir is the location of the ThreadData directory relative to a
// deployment directory.
func ThreadDataDir() string {
	return filepath.FromSlash(threadDataSuffix)
}

// Locate returns the ThreadData directory of the first deployment below root.
func Locate(root string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", errors.NewWithContext(errors.ErrCodeNotFound,
				"Fusion 360 root does not exist", map[string]any{"root": root})
		}
		return "", errors.WrapWithContext(errors.ErrCodeInternal,
			"failed to read Fusion 360 root", err, map[string]any{"root": root})
	}

	// ReadDir returns entries sorted by name
	for _, e := range entries {
		deployment := filepath.Join(root, e.Name())
		if fi, statErr := os.Stat(deployment); statErr != nil || !fi.IsDir() {
			continue
		}
		dir := filepath.Join(deployment, ThreadDataDir())
		if fi, statErr := os.Stat(dir); statErr == nil && fi.IsDir() {
			slog.Debug("found Fusion 360 thread data directory", "path", dir)
			return dir, nil
		}
	}

	return "", errors.NewWithContext(errors.ErrCodeNotFound,
		"no Fusion 360 thread data directory found", map[string]any{"root": root})
}

// Confirm asks question on out until a y or n answer is read from in.
// Answers are case-insensitive; end of input counts as no.
func Confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	scanner := bufio.NewScanner(in)
	for {
		if _, err := fmt.Fprintf(out, "%s (Y,N): ", question); err != nil {
			return false, fmt.Errorf("failed to write prompt: %w", err)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return false, fmt.Errorf("failed to read answer: %w", err)
			}
			fmt.Fprintln(out)
			return false, nil
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		default:
			fmt.Fprintln(out, "Please select 'Y' for Yes or 'N' for no.")
		}
	}
}

// Install copies src into dir under its base name, replacing any existing
// file atomically and keeping the source modification time.
func Install(ctx context.Context, src, dir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeCanceled,
			"install canceled", err, map[string]any{"source": src})
	}

	info, err := os.Stat(src)
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeNotFound,
			"failed to stat source file", err, map[string]any{"source": src})
	}
	if info.IsDir() {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"source is a directory", map[string]any{"source": src})
	}

	f, err := os.Open(src)
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeInternal,
			"failed to open source file", err, map[string]any{"source": src})
	}
	defer f.Close()

	dest := filepath.Join(dir, filepath.Base(src))
	err = fsutil.ReplaceFile(dest, info.Mode().Perm(), func(w io.Writer) error {
		_, copyErr := io.Copy(w, f)
		return copyErr
	})
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeInternal,
			"failed to copy thread data", err, map[string]any{"destination": dest})
	}

	if err := os.Chtimes(dest, info.ModTime(), info.ModTime()); err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeInternal,
			"failed to preserve modification time", err, map[string]any{"destination": dest})
	}

	slog.Info("thread data installed", "source", src, "destination", dest)
	return dest, nil
}

// Result reports the outcome of an install run.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty"`
	Installed   bool   `json:"installed" yaml:"installed"`
	Reason      string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// NewResult creates an InstallResult report for src.
func NewResult(src, version string) *Result {
	r := &Result{Source: src}
	r.Init(header.KindInstallResult, header.APIVersion, version)
	return r
}
