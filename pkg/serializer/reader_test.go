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

package serializer

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Format
	}{
		{
			name:     "xml",
			path:     "3DPrintedMetricV4.xml",
			expected: FormatXML,
		},
		{
			name:     "json lowercase",
			path:     "config.json",
			expected: FormatJSON,
		},
		{
			name:     "json uppercase",
			path:     "CONFIG.JSON",
			expected: FormatJSON,
		},
		{
			name:     "yaml extension",
			path:     "config.yaml",
			expected: FormatYAML,
		},
		{
			name:     "yml extension",
			path:     "config.yml",
			expected: FormatYAML,
		},
		{
			name:     "table extension",
			path:     "threads.table",
			expected: FormatTable,
		},
		{
			name:     "txt extension",
			path:     "threads.txt",
			expected: FormatTable,
		},
		{
			name:     "unknown extension",
			path:     "threads.bin",
			expected: FormatJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.expected {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestNewReader(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		wantErr bool
	}{
		{"xml", FormatXML, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"table", FormatTable, true},
		{"unknown", Format("csv"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(""))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, r)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, r)
		})
	}
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"json", FormatJSON, `{"name":"test","value":42}`},
		{"yaml", FormatYAML, "name: test\nvalue: 42\n"},
		{"xml", FormatXML, "<testConfig><Name>test</Name><Value>42</Value></testConfig>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			require.NoError(t, err)

			var got testConfig
			require.NoError(t, r.Deserialize(&got))
			assert.Equal(t, testConfig{Name: testName, Value: 42}, got)
		})
	}
}

func TestReader_DeserializeRejectsUnknownFields(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"json", FormatJSON, `{"name":"test","valeu":42}`},
		{"yaml", FormatYAML, "name: test\nvaleu: 42\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			require.NoError(t, err)

			var got testConfig
			assert.Error(t, r.Deserialize(&got))
		})
	}
}

func TestReader_DeserializeNilChecks(t *testing.T) {
	var r *Reader
	assert.Error(t, r.Deserialize(&testConfig{}))
	assert.NoError(t, r.Close())

	r = &Reader{format: FormatJSON}
	assert.Error(t, r.Deserialize(&testConfig{}))
}

func TestReader_CloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	r, err := NewFileReader(FormatJSON, path)
	require.NoError(t, err)

	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
}

func TestNewReader_DoesNotCloseSource(t *testing.T) {
	r, err := NewReader(FormatYAML, strings.NewReader("name: test\n"))
	require.NoError(t, err)
	assert.Nil(t, r.closer)
	assert.NoError(t, r.Close())
}

func TestNewFileReader_Errors(t *testing.T) {
	_, err := NewFileReader(FormatTable, "threads.table")
	assert.Error(t, err)

	_, err = NewFileReader(FormatYAML, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestIntoFile_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: test\nvalue: 9\n"), 0o644))

	var got testConfig
	require.NoError(t, IntoFile(path, &got))
	assert.Equal(t, testConfig{Name: testName, Value: 9}, got)
}

func TestIntoFile_KeepsUnsetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("value: 9\n"), 0o644))

	cfg := testConfig{Name: "default", Value: 1}
	require.NoError(t, IntoFile(path, &cfg))
	assert.Equal(t, testConfig{Name: "default", Value: 9}, cfg)
}

func TestIntoFile_Errors(t *testing.T) {
	dir := t.TempDir()

	err := IntoFile(filepath.Join(dir, "missing.yaml"), &testConfig{})
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	err = IntoFile(bad, &testConfig{})
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	err = IntoFile(empty, &testConfig{})
	assert.True(t, errors.Is(err, io.EOF), "empty YAML surfaces io.EOF, got %v", err)

	table := filepath.Join(dir, "threads.table")
	require.NoError(t, os.WriteFile(table, []byte("FIELD VALUE"), 0o644))
	err = IntoFile(table, &testConfig{})
	assert.Error(t, err)
}
