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

// Package yaml provides a YAML response encoder for the respond package.
//
// This package extends rivaas.dev/negotiation/respond with YAML output,
// using gopkg.in/yaml.v3 for serialization.
//
// Example:
//
//	responder := respond.MustNew(respond.JSON(), yaml.New())
package yaml

import (
	"io"

	"gopkg.in/yaml.v3"

	"rivaas.dev/negotiation/respond"
)

// Option configures the YAML encoder.
type Option func(*config)

// config holds YAML-specific encoder configuration.
type config struct {
	mediaType string
	indent    int
}

// WithMediaType overrides the media type the encoder is registered under.
// The default is "application/yaml"; some APIs prefer "text/yaml".
func WithMediaType(mediaType string) Option {
	return func(c *config) {
		c.mediaType = mediaType
	}
}

// WithIndent sets the number of spaces used for nested mappings.
// The gopkg.in/yaml.v3 default is four.
func WithIndent(spaces int) Option {
	return func(c *config) {
		c.indent = spaces
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{mediaType: "application/yaml"}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// New returns a YAML encoder for use with respond.New.
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
	enc := yaml.NewEncoder(w)
	if e.cfg.indent > 0 {
		enc.SetIndent(e.cfg.indent)
	}
	if err := enc.Encode(v); err != nil {
		_ = enc.Close()

		return err
	}

	return enc.Close()
}
