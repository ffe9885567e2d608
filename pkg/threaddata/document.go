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

import "encoding/xml"

// Document is the ThreadType root element of a Fusion 360 thread data file.
type Document struct {
	XMLName     xml.Name     `xml:"ThreadType" json:"-" yaml:"-"`
	Name        string       `xml:"Name" json:"name" yaml:"name"`
	CustomName  string       `xml:"CustomName" json:"customName" yaml:"customName"`
	Unit        string       `xml:"Unit" json:"unit" yaml:"unit"`
	Angle       string       `xml:"Angle" json:"angle" yaml:"angle"`
	SortOrder   int          `xml:"SortOrder" json:"sortOrder" yaml:"sortOrder"`
	ThreadSizes []ThreadSize `xml:"ThreadSize" json:"threadSizes" yaml:"threadSizes"`
}

// ThreadSize groups the designations of one nominal diameter.
type ThreadSize struct {
	Size         int           `xml:"Size" json:"size" yaml:"size"`
	Designations []Designation `xml:"Designation" json:"designations" yaml:"designations"`
}

// Designation lists the threads of one diameter and pitch pair.
type Designation struct {
	ThreadDesignation string   `xml:"ThreadDesignation" json:"threadDesignation" yaml:"threadDesignation"`
	CTD               string   `xml:"CTD" json:"ctd" yaml:"ctd"`
	Pitch             string   `xml:"Pitch" json:"pitch" yaml:"pitch"`
	Threads           []Thread `xml:"Thread" json:"threads" yaml:"threads"`
}

// Thread holds the formatted dimensions of one gender and class.
type Thread struct {
	Gender   string `xml:"Gender" json:"gender" yaml:"gender"`
	Class    string `xml:"Class" json:"class" yaml:"class"`
	MajorDia string `xml:"MajorDia" json:"majorDia" yaml:"majorDia"`
	PitchDia string `xml:"PitchDia" json:"pitchDia" yaml:"pitchDia"`
	MinorDia string `xml:"MinorDia" json:"minorDia" yaml:"minorDia"`
	TapDrill string `xml:"TapDrill,omitempty" json:"tapDrill,omitempty" yaml:"tapDrill,omitempty"`
}

// Counts returns the number of sizes, designations and threads in the document.
func (d *Document) Counts() (sizes, designations, threads int) {
	for _, ts := range d.ThreadSizes {
		sizes++
		for _, ds := range ts.Designations {
			designations++
			threads += len(ds.Threads)
		}
	}
	return sizes, designations, threads
}
