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

// Package toml provides a TOML response encoder for the respond package.
//
// This package extends rivaas.dev/negotiation/respond with TOML output,
// using github.com/BurntSushi/toml for serialization. TOML documents need a
// table at the top level, so payloads must be structs or maps.
//
// Example:
//
//	responder := respond.MustNew(respond.JSON(), toml.New())
package toml

import (
	"io"

	"github.com/BurntSushi/toml"

	"rivaas.dev/negotiation/respond"
)

// Option configures the TOML encoder.
type Option func(*config)

// config holds TOML-specific encoder configuration.
type config struct {
	mediaType string
	indent    string
}

// WithMediaType overrides the media type the encoder is registered under.
// The default is "application/toml".
func WithMediaType(mediaType string) Option {
	return func(c *config) {
		c.mediaType = mediaType
	}
}

// WithIndent sets the string prefixed to each level of nesting. The
// github.com/BurntSushi/toml default is two spaces.
func WithIndent(indent string) Option {
	return func(c *config) {
		c.indent = indent
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{mediaType: "application/toml", indent: "  "}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// New returns a TOML encoder for use with respond.New.
func New(opts ...Option) respond.Encoder {
	return encoder{cfg: applyOptions(opts)}
}

type encoder struct {
	cfg *config
}

func (e encoder) MediaType() string {
	return e.cfg.mediaType
}

func (e encoder) ContentType() string {
	return e.cfg.mediaType
}

func (e encoder) Encode(w io.Writer, v any) error {
	enc := toml.NewEncoder(w)
	enc.Indent = e.cfg.indent

	return enc.Encode(v)
}
