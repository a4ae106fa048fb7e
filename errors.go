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
	"strconv"
)

// Static errors for negotiation operations.
var (
	ErrInvalidMediaType = errors.New("invalid media type")
)

// ParseError reports input that does not satisfy the media-type grammar.
// It carries enough context to point at the offending byte.
//
// Use [errors.As] to check for ParseError:
//
//	var parseErr *negotiation.ParseError
//	if errors.As(err, &parseErr) {
//	    fmt.Printf("bad media type %q at %d\n", parseErr.Input, parseErr.Position)
//	}
//
// All ParseError values match [ErrInvalidMediaType] with [errors.Is].
type ParseError struct {
	Input    string // The full string handed to the parser
	Position int    // Byte offset of the offending character; len(Input) means end of input
	Reason   string // Human-readable reason for failure
}

// Error returns a formatted error message.
func (e *ParseError) Error() string {
	return "invalid media type " + strconv.Quote(e.Input) + " at offset " +
		strconv.Itoa(e.Position) + ": " + e.Reason
}

// Unwrap returns the sentinel for errors.Is/As compatibility.
func (e *ParseError) Unwrap() error {
	return ErrInvalidMediaType
}

// HTTPStatus implements rivaas.dev/errors.ErrorType.
func (e *ParseError) HTTPStatus() int {
	return 400 // Bad Request
}

// Code implements rivaas.dev/errors.ErrorCode.
func (e *ParseError) Code() string {
	return "invalid_media_type"
}
