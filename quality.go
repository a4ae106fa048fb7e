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

// Quality weights are RFC 9110 qvalues scaled to integer thousandths, so
// comparisons never touch floating point: "q=0.8" weighs 800.
const (
	// defaultWeight applies when a media range has no q parameter or its
	// value does not satisfy the qvalue grammar.
	defaultWeight = 1000

	// maxQValueLen bounds a valid qvalue: "0.999" and "1.000" are the
	// longest forms the grammar admits.
	maxQValueLen = 5
)

// parseQValue parses an RFC 9110 qvalue into thousandths. The grammar is
//
//	qvalue = ( "0" [ "." 0*3DIGIT ] ) / ( "1" [ "." 0*3"0" ] )
//
// A bare trailing dot ("0.", "1.") is accepted. Returns -1 when s is not a
// qvalue, including empty strings, values above 1, and excess digits.
func parseQValue(s string) int {
	if s == "" || len(s) > maxQValueLen {
		return -1
	}

	var weight int
	switch s[0] {
	case '0':
	case '1':
		weight = 1000
	default:
		return -1
	}
	if len(s) == 1 {
		return weight
	}
	if s[1] != '.' {
		return -1
	}

	scale := 100
	for i := 2; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return -1
		}
		if weight == 1000 && c != '0' {
			return -1
		}
		weight += int(c-'0') * scale
		scale /= 10
	}

	return weight
}

// weightOf returns the quality weight of a media range in [0, 1000]. The
// first parameter named q decides; a missing or malformed q parameter
// means no stated preference, which weighs full.
func weightOf(m NormalizedMediaType) int {
	for _, p := range m.Params {
		if p.Name != "q" {
			continue
		}
		if w := parseQValue(p.Value); w >= 0 {
			return w
		}

		return defaultWeight
	}

	return defaultWeight
}
