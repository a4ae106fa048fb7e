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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	t.Parallel()

	err := &ParseError{Input: "text", Position: 4, Reason: "missing subtype"}

	assert.Equal(t, `invalid media type "text" at offset 4: missing subtype`, err.Error())
	assert.ErrorIs(t, err, ErrInvalidMediaType)
	assert.Equal(t, 400, err.HTTPStatus())
	assert.Equal(t, "invalid_media_type", err.Code())
}

func TestParseError_FromParser(t *testing.T) {
	t.Parallel()

	_, err := ParseMediaType("text")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "invalid media type")
	assert.Contains(t, err.Error(), `"text"`)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr), "parser failures are *ParseError")
	assert.Equal(t, "text", parseErr.Input)
	assert.NotEmpty(t, parseErr.Reason)
}

func TestParseError_WrappedByNew(t *testing.T) {
	t.Parallel()

	_, err := New([]string{"nope"})
	require.Error(t, err)

	// The construction wrapper adds context without hiding the cause.
	assert.ErrorIs(t, err, ErrInvalidMediaType)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "nope", parseErr.Input)
}
