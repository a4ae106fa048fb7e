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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMediaType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		expected    MediaType
		description string
	}{
		{
			name:        "bare type and subtype",
			input:       "text/html",
			expected:    MediaType{Type: "text", Subtype: "html"},
			description: "should parse the simplest media type",
		},
		{
			name:        "surrounding whitespace",
			input:       "  text/html\t ",
			expected:    MediaType{Type: "text", Subtype: "html"},
			description: "should trim leading and trailing whitespace",
		},
		{
			name:  "single parameter",
			input: "text/html; charset=utf-8",
			expected: MediaType{Type: "text", Subtype: "html",
				Params: []Param{{Name: "charset", Value: "utf-8"}}},
			description: "should parse one token parameter",
		},
		{
			name:  "parameter without space after semicolon",
			input: "text/html;charset=utf-8",
			expected: MediaType{Type: "text", Subtype: "html",
				Params: []Param{{Name: "charset", Value: "utf-8"}}},
			description: "should not require whitespace after ';'",
		},
		{
			name:  "multiple parameters keep order",
			input: "application/vnd.api+json; version=2; level=1",
			expected: MediaType{Type: "application", Subtype: "vnd.api+json",
				Params: []Param{{Name: "version", Value: "2"}, {Name: "level", Value: "1"}}},
			description: "should keep parameters in source order",
		},
		{
			name:  "case is preserved",
			input: "Text/HTML; Charset=UTF-8",
			expected: MediaType{Type: "Text", Subtype: "HTML",
				Params: []Param{{Name: "Charset", Value: "UTF-8"}}},
			description: "should preserve the case of every component",
		},
		{
			name:        "full wildcard",
			input:       "*/*",
			expected:    MediaType{Type: "*", Subtype: "*"},
			description: "should parse the full wildcard range",
		},
		{
			name:        "subtype wildcard",
			input:       "text/*",
			expected:    MediaType{Type: "text", Subtype: "*"},
			description: "should parse a subtype wildcard range",
		},
		{
			name:  "wildcard with quality",
			input: "*/*;q=0.8",
			expected: MediaType{Type: "*", Subtype: "*",
				Params: []Param{{Name: "q", Value: "0.8"}}},
			description: "should parse parameters on wildcard ranges",
		},
		{
			name:  "quoted value",
			input: `application/json; profile="https://example.com/schema"`,
			expected: MediaType{Type: "application", Subtype: "json",
				Params: []Param{{Name: "profile", Value: "https://example.com/schema"}}},
			description: "should unquote quoted-string values",
		},
		{
			name:  "quoted value with escapes",
			input: `text/plain; note="say \"hi\" \\ ok"`,
			expected: MediaType{Type: "text", Subtype: "plain",
				Params: []Param{{Name: "note", Value: `say "hi" \ ok`}}},
			description: "should unescape backslash sequences",
		},
		{
			name:  "quoted empty value",
			input: `text/plain; pad=""`,
			expected: MediaType{Type: "text", Subtype: "plain",
				Params: []Param{{Name: "pad", Value: ""}}},
			description: "should accept an empty quoted string",
		},
		{
			name:  "quoted value then another parameter",
			input: `text/plain; a="x";b=y`,
			expected: MediaType{Type: "text", Subtype: "plain",
				Params: []Param{{Name: "a", Value: "x"}, {Name: "b", Value: "y"}}},
			description: "should continue parsing right after a closing quote",
		},
		{
			name:  "duplicate parameter names survive",
			input: "text/html; a=1; a=2",
			expected: MediaType{Type: "text", Subtype: "html",
				Params: []Param{{Name: "a", Value: "1"}, {Name: "a", Value: "2"}}},
			description: "should not deduplicate repeated names",
		},
		{
			name:  "whitespace after equals",
			input: "text/html; q= 1",
			expected: MediaType{Type: "text", Subtype: "html",
				Params: []Param{{Name: "q", Value: "1"}}},
			description: "should consume whitespace between '=' and the value",
		},
		{
			name:        "token symbols in type",
			input:       "x-custom.v1+a/y!z",
			expected:    MediaType{Type: "x-custom.v1+a", Subtype: "y!z"},
			description: "should accept the full token character set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMediaType(tt.input)
			require.NoError(t, err, "ParseMediaType(%q)\nDescription: %s", tt.input, tt.description)
			assert.Equal(t, tt.expected, got, "ParseMediaType(%q)\nDescription: %s", tt.input, tt.description)
		})
	}
}

func TestParseMediaType_StrictErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		description string
	}{
		{
			name:        "empty input",
			input:       "",
			description: "empty string is not a media type",
		},
		{
			name:        "whitespace only",
			input:       "   ",
			description: "whitespace alone carries no type",
		},
		{
			name:        "missing slash",
			input:       "text",
			description: "a type without a subtype is incomplete",
		},
		{
			name:        "missing subtype",
			input:       "text/",
			description: "a slash without a subtype is incomplete",
		},
		{
			name:        "missing type",
			input:       "/json",
			description: "a subtype without a type is invalid",
		},
		{
			name:        "space inside type",
			input:       "te xt/html",
			description: "whitespace cannot appear inside the type token",
		},
		{
			name:        "space around slash",
			input:       "text / html",
			description: "whitespace cannot surround the slash",
		},
		{
			name:        "trailing semicolon",
			input:       "text/html;",
			description: "strict mode rejects a trailing ';'",
		},
		{
			name:        "whitespace before semicolon",
			input:       "text/html ; q=1",
			description: "strict mode rejects whitespace before ';'",
		},
		{
			name:        "whitespace after parameter name",
			input:       "text/html; q =1",
			description: "strict mode rejects whitespace before '='",
		},
		{
			name:        "flag parameter",
			input:       "text/html; secure",
			description: "strict mode rejects a parameter without '='",
		},
		{
			name:        "empty parameter value",
			input:       "text/html; q=",
			description: "strict mode rejects an empty value",
		},
		{
			name:        "unterminated quote",
			input:       `text/html; a="b`,
			description: "strict mode rejects an open quoted string",
		},
		{
			name:        "comma is not part of a single media type",
			input:       "text/html, text/plain",
			description: "lists belong to ParseAcceptHeader",
		},
		{
			name:        "wildcard type with concrete subtype",
			input:       "*/html",
			description: "a wildcard type implies a wildcard subtype",
		},
		{
			name:        "non-ascii bytes",
			input:       "tëxt/html",
			description: "token characters are plain ASCII",
		},
		{
			name:        "empty parameter name",
			input:       "text/html; =x",
			description: "a parameter needs a name",
		},
		{
			name:        "double semicolon",
			input:       "text/html;; q=1",
			description: "an empty parameter segment is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseMediaType(tt.input)
			require.Error(t, err, "ParseMediaType(%q)\nDescription: %s", tt.input, tt.description)
			assert.ErrorIs(t, err, ErrInvalidMediaType, "all parse failures match the sentinel")

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr, "all parse failures are *ParseError")
			assert.Equal(t, tt.input, parseErr.Input, "ParseError.Input carries the original input")
		})
	}
}

func TestParseMediaType_Permissive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		expected    MediaType
		description string
	}{
		{
			name:  "whitespace before semicolon",
			input: "text/html ; q=1",
			expected: MediaType{Type: "text", Subtype: "html",
				Params: []Param{{Name: "q", Value: "1"}}},
			description: "should tolerate whitespace after the subtype",
		},
		{
			name:  "whitespace around equals",
			input: "text/html; charset = utf-8",
			expected: MediaType{Type: "text", Subtype: "html",
				Params: []Param{{Name: "charset", Value: "utf-8"}}},
			description: "should tolerate whitespace on both sides of '='",
		},
		{
			name:  "flag parameter",
			input: "text/html; secure",
			expected: MediaType{Type: "text", Subtype: "html",
				Params: []Param{{Name: "secure"}}},
			description: "should store a bare name with an empty value",
		},
		{
			name:  "flag parameter between others",
			input: "text/html; secure; q=1",
			expected: MediaType{Type: "text", Subtype: "html",
				Params: []Param{{Name: "secure"}, {Name: "q", Value: "1"}}},
			description: "should continue after a flag parameter",
		},
		{
			name:        "trailing semicolon",
			input:       "text/html;",
			expected:    MediaType{Type: "text", Subtype: "html"},
			description: "should treat a trailing ';' as a no-op",
		},
		{
			name:  "empty value at end of input",
			input: "text/html; q=",
			expected: MediaType{Type: "text", Subtype: "html",
				Params: []Param{{Name: "q"}}},
			description: "should store an empty value after '='",
		},
		{
			name:  "empty value before semicolon",
			input: "text/html; a=; b=2",
			expected: MediaType{Type: "text", Subtype: "html",
				Params: []Param{{Name: "a"}, {Name: "b", Value: "2"}}},
			description: "should continue after an empty value",
		},
		{
			name:  "unterminated quote runs to end",
			input: `text/html; a="open value`,
			expected: MediaType{Type: "text", Subtype: "html",
				Params: []Param{{Name: "a", Value: "open value"}}},
			description: "should take the rest of the input as the value",
		},
		{
			name:  "strict input parses identically",
			input: "text/html; charset=utf-8",
			expected: MediaType{Type: "text", Subtype: "html",
				Params: []Param{{Name: "charset", Value: "utf-8"}}},
			description: "permissive mode is a superset of strict mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMediaType(tt.input, WithPermissive())
			require.NoError(t, err, "ParseMediaType(%q, WithPermissive())\nDescription: %s", tt.input, tt.description)
			assert.Equal(t, tt.expected, got, "ParseMediaType(%q, WithPermissive())\nDescription: %s", tt.input, tt.description)
		})
	}
}

func TestParseMediaType_PermissiveStillRejects(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"   ",
		"text",
		"text/",
		"/json",
		"text//html",
		"text / html",
		"*/html",
		"text/html; =x",
		"text/html;; q=1",
		"text/html, text/plain",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			_, err := ParseMediaType(input, WithPermissive())
			assert.Error(t, err, "ParseMediaType(%q, WithPermissive()) must fail: permissive mode only relaxes documented patterns", input)
		})
	}
}

func TestParseMediaType_ErrorPositions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		position int
	}{
		{name: "missing subtype points at end", input: "text", position: 4},
		{name: "bad byte points at itself", input: "te xt/html", position: 2},
		{name: "whitespace before semicolon points at semicolon", input: "text/html ; q=1", position: 10},
		{name: "unterminated quote points at end", input: `text/html; a="b`, position: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseMediaType(tt.input)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.position, parseErr.Position, "ParseMediaType(%q) error position", tt.input)
		})
	}
}

func TestMediaType_Wildcards(t *testing.T) {
	t.Parallel()

	full, err := ParseMediaType("*/*")
	require.NoError(t, err)
	assert.True(t, full.IsWildcard())
	assert.False(t, full.HasWildcardSubtype())

	sub, err := ParseMediaType("text/*")
	require.NoError(t, err)
	assert.False(t, sub.IsWildcard())
	assert.True(t, sub.HasWildcardSubtype())

	concrete, err := ParseMediaType("text/html")
	require.NoError(t, err)
	assert.False(t, concrete.IsWildcard())
	assert.False(t, concrete.HasWildcardSubtype())
}

func TestMediaType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		mt          MediaType
		expected    string
		description string
	}{
		{
			name:        "no parameters",
			mt:          MediaType{Type: "text", Subtype: "html"},
			expected:    "text/html",
			description: "bare types print without separators",
		},
		{
			name: "token value",
			mt: MediaType{Type: "text", Subtype: "html",
				Params: []Param{{Name: "charset", Value: "utf-8"}}},
			expected:    "text/html; charset=utf-8",
			description: "token values print unquoted",
		},
		{
			name: "value needing quotes",
			mt: MediaType{Type: "application", Subtype: "json",
				Params: []Param{{Name: "profile", Value: "https://example.com/s"}}},
			expected:    `application/json; profile="https://example.com/s"`,
			description: "non-token values print quoted",
		},
		{
			name: "value needing escapes",
			mt: MediaType{Type: "text", Subtype: "plain",
				Params: []Param{{Name: "note", Value: `say "hi"`}}},
			expected:    `text/plain; note="say \"hi\""`,
			description: "quotes inside values are escaped",
		},
		{
			name: "empty value prints as empty quotes",
			mt: MediaType{Type: "text", Subtype: "plain",
				Params: []Param{{Name: "pad", Value: ""}}},
			expected:    `text/plain; pad=""`,
			description: "empty values stay representable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.mt.String(), "MediaType.String()\nDescription: %s", tt.description)
		})
	}
}

func TestMediaType_StringRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"text/html",
		"text/html; charset=utf-8",
		`application/json; profile="https://example.com/s"`,
		`text/plain; note="say \"hi\" \\ ok"`,
		"*/*;q=0.8",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			first, err := ParseMediaType(input)
			require.NoError(t, err)

			second, err := ParseMediaType(first.String())
			require.NoError(t, err, "String() output must parse strictly: %q", first.String())
			assert.Equal(t, first, second, "parse/print/parse must be stable")
		})
	}
}
