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

// ahState enumerates the Accept header scanner states. The scanner mirrors
// the single media-type scanner but treats commas as entry delimiters,
// except inside quoted strings, and recovers from malformed entries by
// skipping to the next comma.
type ahState uint8

const (
	ahStart        ahState = iota // before an entry; empty segments are fine
	ahType                        // inside the type token
	ahSubtypeStart                // just after '/'
	ahSubtype                     // inside the subtype token
	ahComponentEnd                // whitespace after the subtype or a value
	ahParamsStart                 // after ';', before a parameter name
	ahParamName                   // inside a parameter name token
	ahParamNameEnd                // whitespace after a name, before '='
	ahValueStart                  // after '=', before a value
	ahValueToken                  // inside an unquoted value
	ahValueQuoted                 // inside a quoted-string value
	ahValueEnd                    // immediately after a closing quote
	ahSkip                        // malformed entry; discard through next comma
)

// ParseAcceptHeader splits an Accept header value into its media-range
// substrings in original order. Entries are returned verbatim, with only
// surrounding whitespace removed; [WithTypesOnly] strips parameters.
//
// The split never fails: malformed entries are dropped and scanning resumes
// after the next comma. Commas inside quoted parameter values do not
// delimit. Empty input yields no entries.
//
// The returned strings are substrings of s, so they share its memory.
func ParseAcceptHeader(s string, opts ...Option) []string {
	if s == "" {
		return nil
	}
	o := applyOptions(opts)

	return tokenizeAccept(s, o.TypesOnly, o.Permissive, make([]string, 0, strings.Count(s, ",")+1))
}

// tokenizeAccept appends each well-formed entry of s to dst. An entry is
// kept exactly when parseMediaType would accept it under the same mode, so
// downstream parsing of a kept entry cannot fail on structure alone.
func tokenizeAccept(s string, typesOnly, permissive bool, dst []string) []string {
	var (
		state   = ahStart
		mark    int // start of the current entry
		typeEnd int // end of the current entry's type/subtype part
		end     int // end of the current entry's last significant byte
	)

	emit := func() {
		if typesOnly {
			dst = append(dst, s[mark:typeEnd])
		} else {
			dst = append(dst, s[mark:end])
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]

		// Track where the entry's significant content ends so trailing
		// whitespace never leaks into the emitted substring. Inside quotes
		// every byte is significant, commas included.
		if state == ahValueQuoted {
			end = i + 1
		} else if !isOWS(c) && c != ',' {
			end = i + 1
		}

		switch state {
		case ahStart:
			switch {
			case isOWS(c) || c == ',':
			case isTokenChar(c):
				mark = i
				state = ahType
			default:
				state = ahSkip
			}

		case ahType:
			switch {
			case isTokenChar(c):
			case c == '/':
				state = ahSubtypeStart
			case c == ',':
				state = ahStart
			default:
				state = ahSkip
			}

		case ahSubtypeStart:
			switch {
			case isTokenChar(c):
				state = ahSubtype
			case c == ',':
				state = ahStart
			default:
				state = ahSkip
			}

		case ahSubtype:
			switch {
			case isTokenChar(c):
			case c == ';':
				typeEnd = i
				state = ahParamsStart
			case isOWS(c):
				typeEnd = i
				state = ahComponentEnd
			case c == ',':
				typeEnd = i
				emit()
				state = ahStart
			default:
				state = ahSkip
			}

		case ahComponentEnd:
			switch {
			case isOWS(c):
			case c == ';':
				if permissive {
					state = ahParamsStart
				} else {
					state = ahSkip
				}
			case c == ',':
				emit()
				state = ahStart
			default:
				state = ahSkip
			}

		case ahParamsStart:
			switch {
			case isOWS(c):
			case isTokenChar(c):
				state = ahParamName
			case c == ',':
				if permissive {
					emit()
				}
				state = ahStart
			default:
				state = ahSkip
			}

		case ahParamName:
			switch {
			case isTokenChar(c):
			case c == '=':
				state = ahValueStart
			case c == ';':
				if permissive {
					state = ahParamsStart
				} else {
					state = ahSkip
				}
			case isOWS(c):
				if permissive {
					state = ahParamNameEnd
				} else {
					state = ahSkip
				}
			case c == ',':
				if permissive {
					emit()
				}
				state = ahStart
			default:
				state = ahSkip
			}

		case ahParamNameEnd:
			switch {
			case isOWS(c):
			case c == '=':
				state = ahValueStart
			case c == ';':
				state = ahParamsStart
			case c == ',':
				emit()
				state = ahStart
			default:
				state = ahSkip
			}

		case ahValueStart:
			switch {
			case isOWS(c):
			case c == '"':
				state = ahValueQuoted
			case isTokenChar(c):
				state = ahValueToken
			case c == ';':
				if permissive {
					state = ahParamsStart
				} else {
					state = ahSkip
				}
			case c == ',':
				if permissive {
					emit()
				}
				state = ahStart
			default:
				state = ahSkip
			}

		case ahValueToken:
			switch {
			case isTokenChar(c):
			case c == ';':
				state = ahParamsStart
			case isOWS(c):
				state = ahComponentEnd
			case c == ',':
				emit()
				state = ahStart
			default:
				state = ahSkip
			}

		case ahValueQuoted:
			switch c {
			case '\\':
				i++
				if i < len(s) {
					end = i + 1
				}
			case '"':
				state = ahValueEnd
			}

		case ahValueEnd:
			switch {
			case isOWS(c):
				state = ahComponentEnd
			case c == ';':
				state = ahParamsStart
			case c == ',':
				emit()
				state = ahStart
			default:
				state = ahSkip
			}

		case ahSkip:
			if c == ',' {
				state = ahStart
			}
		}
	}

	// End of input: entries that stopped in an accepting state are kept.
	switch state {
	case ahSubtype:
		typeEnd = len(s)
		emit()
	case ahComponentEnd, ahValueToken, ahValueEnd:
		emit()
	case ahParamsStart, ahParamName, ahParamNameEnd, ahValueStart, ahValueQuoted:
		if permissive {
			emit()
		}
	}

	return dst
}
