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

// Package serializer provides encoding and decoding of structured data in multiple formats.
//
// # Overview
//
// The serializer package converts documents to XML, JSON, YAML and human-readable
// tables, and decodes configuration files from JSON, YAML or XML. Formats are
// detected from file extensions where a path is involved.
//
// # Supported Formats
//
// XML:
//   - UTF-8 with an XML declaration, two-space indentation
//   - The artifact format consumed by the Fusion 360 thread library
//   - Standard encoding/xml package
//
// JSON:
//   - Machine-parseable representation
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened FIELD/VALUE listing for terminals
//   - Write-only (no deserialization support)
//
// # Usage - Encoding
//
// Write to any io.Writer:
//
//	w := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	if err := w.Serialize(ctx, data); err != nil {
//	    return err
//	}
//
// Replace a file atomically:
//
//	w := serializer.NewAtomicFileWriter(serializer.FormatXML, "threads.xml")
//	if err := w.Serialize(ctx, doc); err != nil {
//	    return err
//	}
//
// The atomic writer stages output in a temporary file next to the target and
// renames it into place after fsync, so readers never observe a partial document
// and a failed run leaves any previous file untouched.
//
// # Usage - Decoding
//
// Decode a file onto existing values, keeping fields the file does not set:
//
//	cfg := Default()
//	err := serializer.IntoFile("threads.yaml", &cfg)
//
// or a stream:
//
//	r, err := serializer.NewReader(serializer.FormatYAML, os.Stdin)
//	...
//	err = r.Deserialize(&cfg)
//
// # Format Detection
//
//   - .xml → XML
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table
//   - Other → JSON (default)
package serializer
