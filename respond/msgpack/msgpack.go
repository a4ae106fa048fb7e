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

// Package msgpack provides a MessagePack response encoder for the respond
// package.
//
// This package extends rivaas.dev/negotiation/respond with MessagePack
// output, using github.com/vmihailenco/msgpack for serialization.
//
// Example:
//
//	responder := respond.MustNew(respond.JSON(), msgpack.New())
package msgpack

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"rivaas.dev/negotiation/respond"
)

// Option configures the MessagePack encoder.
type Option func(*config)

// config holds MessagePack-specific encoder configuration.
type config struct {
	mediaType   string
	sortMapKeys bool
}

// WithMediaType overrides the media type the encoder is registered under.
// The default is "application/msgpack"; "application/x-msgpack" is a common
// legacy spelling.
func WithMediaType(mediaType string) Option {
	return func(c *config) {
		c.mediaType = mediaType
	}
}

// WithSortedMapKeys encodes map keys in sorted order, making output
// deterministic at some encoding cost.
func WithSortedMapKeys() Option {
	return func(c *config) {
		c.sortMapKeys = true
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{mediaType: "application/msgpack"}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// New returns a MessagePack encoder for use with respond.New.
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
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(e.cfg.sortMapKeys)

	return enc.Encode(v)
}
