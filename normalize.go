// Copyright 2025 The Rivaas Authors
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

package negotiation

import (
	"slices"
	"strings"
)

// NormalizedMediaType is the comparison form of a [MediaType]: type, subtype
// and parameter names lowercased, parameters ordered by name. Parameter
// values keep their case, since values like charset tokens can be
// case-sensitive, and duplicate names are kept.
//
// Source preserves the MediaType the normalization came from, so code that
// compares normalized forms can still report the original spelling.
type NormalizedMediaType struct {
	Type    string
	Subtype string
	Params  []Param
	Source  MediaType
}

// Normalize returns the comparison form of m. The receiver is unchanged;
// the normalized parameter slice is a copy.
//
// Sorting is stable, so duplicate parameter names stay in source order.
func (m MediaType) Normalize() NormalizedMediaType {
	n := NormalizedMediaType{
		Type:    strings.ToLower(m.Type),
		Subtype: strings.ToLower(m.Subtype),
		Source:  m,
	}

	if len(m.Params) > 0 {
		n.Params = make([]Param, len(m.Params))
		for i, p := range m.Params {
			n.Params[i] = Param{Name: strings.ToLower(p.Name), Value: p.Value}
		}
		slices.SortStableFunc(n.Params, func(a, b Param) int {
			return strings.Compare(a.Name, b.Name)
		})
	}

	return n
}

// String formats the normalized form in wire syntax.
func (n NormalizedMediaType) String() string {
	return MediaType{Type: n.Type, Subtype: n.Subtype, Params: n.Params}.String()
}
