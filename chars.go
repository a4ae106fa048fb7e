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

import "strings"

// charClass is a bitmask of syntactic roles a byte can play in the
// media-type grammar.
type charClass uint8

const (
	// classToken marks tchar bytes (RFC 9110 section 5.6.2), the alphabet
	// of types, subtypes, parameter names and unquoted parameter values.
	classToken charClass = 1 << iota

	// classOWS marks optional whitespace, SP and HTAB only.
	classOWS
)

// charClasses is indexed by byte value so classification in the scanner
// hot path is a single table load.
var charClasses [256]charClass

func init() {
	for c := range len(charClasses) {
		b := byte(c)
		var cl charClass
		switch {
		case b >= '0' && b <= '9',
			b >= 'a' && b <= 'z',
			b >= 'A' && b <= 'Z',
			strings.IndexByte("!#$%&'*+-.^_`|~", b) >= 0:
			cl |= classToken
		case b == ' ' || b == '\t':
			cl |= classOWS
		}
		charClasses[c] = cl
	}
}

func isTokenChar(b byte) bool { return charClasses[b]&classToken != 0 }

func isOWS(b byte) bool { return charClasses[b]&classOWS != 0 }

// isToken reports whether s is a non-empty run of tchar bytes.
func isToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isTokenChar(s[i]) {
			return false
		}
	}
	return true
}
