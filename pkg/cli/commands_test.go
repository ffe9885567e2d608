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
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/threadgen/pkg/errors"
	"github.com/NVIDIA/threadgen/pkg/installer"
)

const smallConfig = `name: Small
customName: Small
sizes: [3]
pitches: [3.5]
offsets: [0.0]
`

// run executes the root command with args and returns what it printed.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.Writer = &out
	cmd.ErrWriter = io.Discard
	cmd.Reader = strings.NewReader(stdin)
	err := cmd.Run(context.Background(), append([]string{name}, args...))
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "threads.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func fusionRoot(t *testing.T) (root, threadData string) {
	t.Helper()
	root = t.TempDir()
	threadData = filepath.Join(root, "a1b2c3", installer.ThreadDataDir())
	require.NoError(t, os.MkdirAll(threadData, 0o755))
	return root, threadData
}

func TestGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "small.xml")

	_, err := run(t, "", "generate", "--config", writeConfig(t, smallConfig), "--output", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	xml := string(data)
	assert.True(t, strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`+"\n<ThreadType>\n"))
	assert.Contains(t, xml, "  <Name>Small</Name>\n  <CustomName>Small</CustomName>\n")
	assert.Contains(t, xml, "<ThreadDesignation>M3x3.5</ThreadDesignation>")
	assert.Contains(t, xml, "<PitchDia>0.7267</PitchDia>")
	assert.Contains(t, xml, "<TapDrill>-0.5</TapDrill>")
	assert.Equal(t, 2, strings.Count(xml, "<Class>O.</Class>"))
}

func TestGenerate_Stdout(t *testing.T) {
	stdout, err := run(t, "", "generate", "--config", writeConfig(t, smallConfig), "--output=-", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"threadDesignation": "M3x3.5"`)
	assert.Contains(t, stdout, `"tapDrill": "-0.5"`)
}

func TestGenerate_ConfigFromStdin(t *testing.T) {
	stdout, err := run(t, smallConfig, "generate", "--config=-", "--output=-", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "name: Small")
	assert.Contains(t, stdout, "threadDesignation: M3x3.5")
	assert.NotContains(t, stdout, "M4x")
}

func TestGenerate_Summary(t *testing.T) {
	out := filepath.Join(t.TempDir(), "small.xml")
	metrics := filepath.Join(t.TempDir(), "threadgen.prom")

	stdout, err := run(t, "", "generate",
		"--config", writeConfig(t, smallConfig),
		"--output", out,
		"--summary",
		"--metrics-textfile", metrics)
	require.NoError(t, err)

	assert.Contains(t, stdout, "kind: GenerationSummary")
	assert.Contains(t, stdout, "threads: 2")

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "threadgen_threads_generated_total")
	assert.Contains(t, string(prom), "threadgen_document_build_duration_seconds")
}

func TestGenerate_Errors(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, "", "generate", "--format", "csv", "--output=-")
		require.Error(t, err)
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := run(t, "", "generate", "--config", writeConfig(t, "sizes: [5, 4]\n"), "--output=-")
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))
	})

	t.Run("missing config", func(t *testing.T) {
		_, err := run(t, "", "generate", "--config", filepath.Join(t.TempDir(), "none.yaml"), "--output=-")
		require.Error(t, err)
	})
}

func TestInstall(t *testing.T) {
	src := filepath.Join(t.TempDir(), "3DPrintedMetricV4.xml")
	require.NoError(t, os.WriteFile(src, []byte("<ThreadType/>"), 0o644))

	t.Run("confirmed", func(t *testing.T) {
		root, threadData := fusionRoot(t)
		stdout, err := run(t, "maybe\ny\n", "install", "--source", src, "--root", root)
		require.NoError(t, err)

		assert.Contains(t, stdout, "Found Autodesk Fusion 360 Folder in: "+threadData)
		assert.Contains(t, stdout, "Please select 'Y' for Yes or 'N' for no.")
		assert.FileExists(t, filepath.Join(threadData, "3DPrintedMetricV4.xml"))
	})

	t.Run("declined", func(t *testing.T) {
		root, threadData := fusionRoot(t)
		_, err := run(t, "n\n", "install", "--source", src, "--root", root)
		require.NoError(t, err)
		assert.NoFileExists(t, filepath.Join(threadData, "3DPrintedMetricV4.xml"))
	})

	t.Run("yes flag", func(t *testing.T) {
		root, threadData := fusionRoot(t)
		_, err := run(t, "", "install", "--source", src, "--root", root, "--yes")
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(threadData, "3DPrintedMetricV4.xml"))
	})

	t.Run("not found is not an error", func(t *testing.T) {
		stdout, err := run(t, "", "install", "--source", src, "--root", t.TempDir())
		require.NoError(t, err)
		assert.Contains(t, stdout, "No Fusion360 Thread Path found.")
	})

	t.Run("missing source", func(t *testing.T) {
		root, _ := fusionRoot(t)
		_, err := run(t, "", "install", "--source", filepath.Join(t.TempDir(), "none.xml"), "--root", root, "--yes")
		require.Error(t, err)
	})
}

func TestDefaultAction(t *testing.T) {
	root, threadData := fusionRoot(t)
	out := filepath.Join(t.TempDir(), "Small.xml")

	stdout, err := run(t, "Y\n", "--config", writeConfig(t, smallConfig), "--output", out, "--root", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Want Copy file in Fusion360 path? (Y,N): ")

	generated, err := os.ReadFile(out)
	require.NoError(t, err)
	installed, err := os.ReadFile(filepath.Join(threadData, "Small.xml"))
	require.NoError(t, err)
	assert.Equal(t, generated, installed)
}

func TestProfiles(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		stdout, err := run(t, "", "profiles")
		require.NoError(t, err)
		assert.Contains(t, stdout, "kind: ProfileList")
		assert.Contains(t, stdout, "kind: metric-3d-printed")
		assert.Contains(t, stdout, `angle: "60.0"`)
	})

	t.Run("json", func(t *testing.T) {
		stdout, err := run(t, "", "profiles", "--format", "json")
		require.NoError(t, err)
		assert.Contains(t, stdout, `"kind": "metric-3d-printed"`)
		assert.Contains(t, stdout, `"5.0"`)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, "", "profiles", "--format", "csv")
		require.Error(t, err)
	})
}

func TestNewProfileList(t *testing.T) {
	list, err := newProfileList()
	require.NoError(t, err)
	require.Len(t, list.Profiles, 1)

	p := list.Profiles[0]
	assert.Equal(t, "60.0", p.Angle)
	assert.Len(t, p.Sizes, 77)
	assert.Equal(t, []string{"3.5", "4", "4.5", "5.0", "5.5", "6.0", "6.5", "7", "7.5", "8.0"}, p.Pitches)
	assert.Equal(t, "0.0", p.Offsets[0])
	assert.Equal(t, "0.25", p.Offsets[3])
}
