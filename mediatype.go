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

// Param is a single media-type parameter with its original spelling
// preserved. A parameter written without a value ("text/html;flag",
// accepted in permissive mode) has an empty Value.
type Param struct {
	Name  string
	Value string
}

// MediaType is a parsed media type or media range such as "text/html" or
// "text/*; q=0.8". Type and Subtype keep the case they were written in;
// Params keeps parameters in source order, including duplicates.
//
// A wildcard Type implies a wildcard Subtype: "*/html" does not parse.
type MediaType struct {
	Type    string
	Subtype string
	Params  []Param
}

// IsWildcard reports whether m is the full wildcard range "*/*".
func (m MediaType) IsWildcard() bool {
	return m.Type == "*"
}

// HasWildcardSubtype reports whether m matches every subtype of a concrete
// type, like "text/*". The full wildcard reports false here.
func (m MediaType) HasWildcardSubtype() bool {
	return m.Type != "*" && m.Subtype == "*"
}

// String formats m in wire form. Parameter values that are not plain tokens
// are quoted with backslash escaping, so the result parses back to an
// equivalent MediaType.
func (m MediaType) String() string {
	if len(m.Params) == 0 {
		return m.Type + "/" + m.Subtype
	}

	var sb strings.Builder
	sb.Grow(len(m.Type) + len(m.Subtype) + 1 + 16*len(m.Params))
	sb.WriteString(m.Type)
	sb.WriteByte('/')
	sb.WriteString(m.Subtype)
	for _, p := range m.Params {
		sb.WriteString("; ")
		sb.WriteString(p.Name)
		sb.WriteByte('=')
		sb.WriteString(quoteValue(p.Value))
	}

	return sb.String()
}

// quoteValue returns v as a token when it already is one, otherwise as a
// quoted-string with '"' and '\' backslash-escaped.
func quoteValue(v string) string {
	if isToken(v) {
		return v
	}

	b := make([]byte, 0, len(v)+2)
	b = append(b, '"')
	for i := 0; i < len(v); i++ {
		if v[i] == '"' || v[i] == '\\' {
			b = append(b, '\\')
		}
		b = append(b, v[i])
	}
	b = append(b, '"')

	return string(b)
}

// mtState enumerates the scanner states for a single media type. Every
// input byte drives exactly one transition; end of input is decided by the
// state the scan stopped in.
type mtState uint8

const (
	mtStart        mtState = iota // leading whitespace before the type
	mtType                        // inside the type token
	mtSubtypeStart                // just after '/'
	mtSubtype                     // inside the subtype token
	mtComponentEnd                // whitespace after the subtype or a value
	mtParamsStart                 // after ';', before a parameter name
	mtParamName                   // inside a parameter name token
	mtParamNameEnd                // whitespace after a name, before '='
	mtValueStart                  // after '=', before a value
	mtValueToken                  // inside an unquoted value
	mtValueQuoted                 // inside a quoted-string value
	mtValueEnd                    // immediately after a closing quote
)

// ParseMediaType parses a single media type or media range.
//
// Strict mode (the default) requires the RFC 9110 grammar exactly, apart
// from leading and trailing whitespace. [WithPermissive] additionally
// accepts common sloppy forms: whitespace before ";" and around "=",
// parameters without "=value", empty values, trailing semicolons, and a
// quoted string left open at the end of input (the value then runs to the
// end).
//
// Errors are always of type [*ParseError] and match [ErrInvalidMediaType].
func ParseMediaType(s string, opts ...Option) (MediaType, error) {
	o := applyOptions(opts)

	return parseMediaType(s, o.Permissive)
}

func parseMediaType(s string, permissive bool) (MediaType, error) {
	var (
		m     MediaType
		state = mtStart
		mark  int    // start of the token being scanned
		name  string // parameter name awaiting its value
		buf   []byte // unescaped quoted value; nil until an escape is seen
	)

	fail := func(pos int, reason string) (MediaType, error) {
		return MediaType{}, &ParseError{Input: s, Position: pos, Reason: reason}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch state {
		case mtStart:
			switch {
			case isOWS(c):
			case isTokenChar(c):
				mark = i
				state = mtType
			default:
				return fail(i, "expected type")
			}

		case mtType:
			switch {
			case isTokenChar(c):
			case c == '/':
				m.Type = s[mark:i]
				state = mtSubtypeStart
			default:
				return fail(i, "expected '/' after type")
			}

		case mtSubtypeStart:
			if !isTokenChar(c) {
				return fail(i, "expected subtype")
			}
			mark = i
			state = mtSubtype

		case mtSubtype:
			switch {
			case isTokenChar(c):
			case c == ';':
				m.Subtype = s[mark:i]
				state = mtParamsStart
			case isOWS(c):
				m.Subtype = s[mark:i]
				state = mtComponentEnd
			default:
				return fail(i, "invalid character after subtype")
			}

		case mtComponentEnd:
			switch {
			case isOWS(c):
			case c == ';':
				if !permissive {
					return fail(i, "whitespace before ';'")
				}
				state = mtParamsStart
			default:
				return fail(i, "unexpected character")
			}

		case mtParamsStart:
			switch {
			case isOWS(c):
			case isTokenChar(c):
				mark = i
				state = mtParamName
			default:
				return fail(i, "expected parameter name")
			}

		case mtParamName:
			switch {
			case isTokenChar(c):
			case c == '=':
				name = s[mark:i]
				state = mtValueStart
			case c == ';':
				if !permissive {
					return fail(i, "parameter missing '='")
				}
				m.Params = append(m.Params, Param{Name: s[mark:i]})
				state = mtParamsStart
			case isOWS(c):
				if !permissive {
					return fail(i, "whitespace after parameter name")
				}
				name = s[mark:i]
				state = mtParamNameEnd
			default:
				return fail(i, "invalid character in parameter name")
			}

		case mtParamNameEnd:
			switch {
			case isOWS(c):
			case c == '=':
				state = mtValueStart
			case c == ';':
				m.Params = append(m.Params, Param{Name: name})
				state = mtParamsStart
			default:
				return fail(i, "expected '=' after parameter name")
			}

		case mtValueStart:
			switch {
			case isOWS(c):
			case c == '"':
				mark = i + 1
				buf = nil
				state = mtValueQuoted
			case isTokenChar(c):
				mark = i
				state = mtValueToken
			case c == ';':
				if !permissive {
					return fail(i, "empty parameter value")
				}
				m.Params = append(m.Params, Param{Name: name})
				state = mtParamsStart
			default:
				return fail(i, "invalid parameter value")
			}

		case mtValueToken:
			switch {
			case isTokenChar(c):
			case c == ';':
				m.Params = append(m.Params, Param{Name: name, Value: s[mark:i]})
				state = mtParamsStart
			case isOWS(c):
				m.Params = append(m.Params, Param{Name: name, Value: s[mark:i]})
				state = mtComponentEnd
			default:
				return fail(i, "invalid character in parameter value")
			}

		case mtValueQuoted:
			switch c {
			case '\\':
				if buf == nil {
					buf = make([]byte, 0, len(s)-mark)
					buf = append(buf, s[mark:i]...)
				}
				i++
				if i < len(s) {
					buf = append(buf, s[i])
				}
			case '"':
				val := s[mark:i]
				if buf != nil {
					val = string(buf)
				}
				m.Params = append(m.Params, Param{Name: name, Value: val})
				state = mtValueEnd
			default:
				if buf != nil {
					buf = append(buf, c)
				}
			}

		case mtValueEnd:
			switch {
			case isOWS(c):
				state = mtComponentEnd
			case c == ';':
				state = mtParamsStart
			default:
				return fail(i, "unexpected character after quoted value")
			}
		}
	}

	// End of input: the final state decides whether the scan is complete.
	switch state {
	case mtStart:
		return fail(len(s), "missing type")
	case mtType:
		return fail(len(s), "missing subtype")
	case mtSubtypeStart:
		return fail(len(s), "missing subtype")
	case mtSubtype:
		m.Subtype = s[mark:]
	case mtComponentEnd, mtValueEnd:
	case mtParamsStart:
		if !permissive {
			return fail(len(s), "trailing ';'")
		}
	case mtParamName:
		if !permissive {
			return fail(len(s), "parameter missing '='")
		}
		m.Params = append(m.Params, Param{Name: s[mark:]})
	case mtParamNameEnd:
		m.Params = append(m.Params, Param{Name: name})
	case mtValueStart:
		if !permissive {
			return fail(len(s), "empty parameter value")
		}
		m.Params = append(m.Params, Param{Name: name})
	case mtValueToken:
		m.Params = append(m.Params, Param{Name: name, Value: s[mark:]})
	case mtValueQuoted:
		if !permissive {
			return fail(len(s), "unterminated quoted string")
		}
		val := s[mark:]
		if buf != nil {
			val = string(buf)
		}
		m.Params = append(m.Params, Param{Name: name, Value: val})
	}

	if m.Type == "*" && m.Subtype != "*" {
		return fail(len(s), "wildcard type with concrete subtype")
	}

	return m, nil
}
