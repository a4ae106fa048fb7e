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

// Package proto provides a Protocol Buffers response encoder for the
// respond package.
//
// This package extends rivaas.dev/negotiation/respond with Protocol Buffers
// output, using google.golang.org/protobuf for serialization. Payloads must
// implement proto.Message.
//
// Example:
//
//	responder := respond.MustNew(respond.JSON(), proto.New())
package proto

import (
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/proto"

	"rivaas.dev/negotiation/respond"
)

// ErrNotMessage is returned when a payload does not implement
// proto.Message.
var ErrNotMessage = errors.New("payload does not implement proto.Message")

// Message is an alias for proto.Message to simplify imports.
type Message = proto.Message

// Option configures the Protocol Buffers encoder.
type Option func(*config)

// config holds Proto-specific encoder configuration.
type config struct {
	mediaType     string
	deterministic bool
	allowPartial  bool
}

// WithMediaType overrides the media type the encoder is registered under.
// The default is "application/x-protobuf".
func WithMediaType(mediaType string) Option {
	return func(c *config) {
		c.mediaType = mediaType
	}
}

// WithDeterministic makes marshaling deterministic: maps are encoded in
// sorted key order.
func WithDeterministic() Option {
	return func(c *config) {
		c.deterministic = true
	}
}

// WithAllowPartial allows messages with missing required fields to marshal
// without returning an error.
func WithAllowPartial() Option {
	return func(c *config) {
		c.allowPartial = true
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{mediaType: "application/x-protobuf"}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// New returns a Protocol Buffers encoder for use with respond.New.
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
	msg, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotMessage, v)
	}

	opts := proto.MarshalOptions{
		Deterministic: e.cfg.deterministic,
		AllowPartial:  e.cfg.allowPartial,
	}
	b, err := opts.Marshal(msg)
	if err != nil {
		return err
	}
	_, err = w.Write(b)

	return err
}
