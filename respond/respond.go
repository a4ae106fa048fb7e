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

// Package respond writes content-negotiated HTTP responses.
//
// A [Responder] owns one encoder per media type and uses
// rivaas.dev/negotiation to pick the encoder a request's Accept header
// prefers. JSON and XML encoders are built in; YAML, TOML, MessagePack and
// Protocol Buffers encoders live in subpackages so their dependencies stay
// opt-in.
//
// Example:
//
//	responder := respond.MustNew(respond.JSON(), respond.XML())
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    _ = responder.Respond(w, r, http.StatusOK, payload)
//	}
//
// Requests that accept none of the registered types receive a 406 response
// with a small JSON problem body.
package respond

import (
	"fmt"
	"io"
	"net/http"

	"rivaas.dev/negotiation"
)

// Encoder turns a response payload into one media type's wire form.
type Encoder interface {
	// MediaType returns the media type the encoder is registered under,
	// such as "application/json". It must parse as a valid media type and
	// is matched against Accept headers.
	MediaType() string

	// ContentType returns the Content-Type header value written with the
	// response, typically the media type plus a charset parameter.
	ContentType() string

	// Encode writes v to w in the encoder's format.
	Encode(w io.Writer, v any) error
}

// Responder negotiates among registered encoders and writes responses.
// Registration order is server preference order: the first encoder wins
// when a client has no preference.
//
// A Responder is immutable after construction and safe for concurrent use.
type Responder struct {
	negotiator *negotiation.Negotiator
	encoders   map[string]Encoder
}

// New builds a Responder from encoders in server preference order.
// Each encoder's media type must be valid and distinct.
func New(encoders ...Encoder) (*Responder, error) {
	if len(encoders) == 0 {
		return nil, ErrNoEncoders
	}

	types := make([]string, len(encoders))
	index := make(map[string]Encoder, len(encoders))
	for i, enc := range encoders {
		mt := enc.MediaType()
		if _, dup := index[mt]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEncoder, mt)
		}
		types[i] = mt
		index[mt] = enc
	}

	neg, err := negotiation.New(types)
	if err != nil {
		return nil, err
	}

	return &Responder{negotiator: neg, encoders: index}, nil
}

// MustNew is like [New] but panics on error. Use it for responders built
// from literals at startup.
func MustNew(encoders ...Encoder) *Responder {
	r, err := New(encoders...)
	if err != nil {
		panic("respond: " + err.Error())
	}

	return r
}

// Negotiate returns the encoder the request's Accept header prefers. The
// boolean is false when the client accepts none of the registered types.
//
// Headers are parsed permissively; a request without an Accept header gets
// the first registered encoder.
func (r *Responder) Negotiate(req *http.Request) (Encoder, bool) {
	mt := r.negotiator.Negotiate(req.Header.Get("Accept"), negotiation.WithPermissive())
	if mt == "" {
		return nil, false
	}

	return r.encoders[mt], true
}

// Respond encodes v for the request's preferred media type and writes it
// with the given status. When nothing is acceptable it writes a 406 problem
// response and returns [ErrNotAcceptable].
//
// Respond sets Content-Type and Vary headers. Encoding errors after the
// header is written are returned but cannot reach the client anymore.
func (r *Responder) Respond(w http.ResponseWriter, req *http.Request, status int, v any) error {
	w.Header().Add("Vary", "Accept")

	enc, ok := r.Negotiate(req)
	if !ok {
		writeNotAcceptable(w)

		return ErrNotAcceptable
	}

	w.Header().Set("Content-Type", enc.ContentType())
	w.WriteHeader(status)

	return enc.Encode(w, v)
}

// writeNotAcceptable writes the 406 problem body. The body is fixed JSON:
// clients that sent an unsatisfiable Accept header get a readable answer
// even though it is not a type they asked for.
func writeNotAcceptable(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusNotAcceptable)
	_, _ = io.WriteString(w, `{"error":{"code":"not_acceptable","message":"no acceptable representation"}}`+"\n")
}
