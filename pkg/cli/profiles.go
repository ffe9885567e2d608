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
	"encoding/xml"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/threadgen/pkg/header"
	"github.com/NVIDIA/threadgen/pkg/serializer"
	"github.com/NVIDIA/threadgen/pkg/thread"
)

// profileList is the report printed by the profiles command.
type profileList struct {
	XMLName       xml.Name `json:"-" yaml:"-" xml:"ProfileList"`
	header.Header `json:",inline" yaml:",inline"`

	Profiles []profileInfo `json:"profiles" yaml:"profiles"`
}

type profileInfo struct {
	Kind    string   `json:"kind" yaml:"kind"`
	Angle   string   `json:"angle" yaml:"angle"`
	Sizes   []int    `json:"sizes" yaml:"sizes,flow"`
	Pitches []string `json:"pitches" yaml:"pitches,flow"`
	Offsets []string `json:"offsets" yaml:"offsets,flow"`
}

func profilesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "profiles",
		EnableShellCompletion: true,
		Usage:                 "List thread profiles and their default settings",
		Flags: []cli.Flag{
			formatFlag(string(serializer.FormatYAML)),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			list, err := newProfileList()
			if err != nil {
				return err
			}
			return serializer.NewWriter(format, stdout(cmd)).Serialize(ctx, list)
		},
	}
}

func newProfileList() (*profileList, error) {
	list := &profileList{}
	list.Init(header.KindProfileList, header.APIVersion, version)

	settings := thread.DefaultSettings()
	for _, k := range thread.SupportedKinds() {
		p, err := thread.NewProfile(thread.Kind(k), settings)
		if err != nil {
			return nil, err
		}
		info := profileInfo{
			Kind:  k,
			Angle: thread.Literal(p.Angle()),
			Sizes: p.Sizes(),
		}
		for _, v := range settings.Pitches {
			info.Pitches = append(info.Pitches, thread.Literal(v))
		}
		for _, v := range settings.Offsets {
			info.Offsets = append(info.Offsets, thread.Literal(v))
		}
		list.Profiles = append(list.Profiles, info)
	}
	return list, nil
}
