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

package respond

import (
	"context"
	"net/http"
)

// encoderKey is the context key for the negotiated encoder. A private type
// keeps it collision-free.
type encoderKey struct{}

// Middleware negotiates once per request and stores the chosen encoder in
// the request context for [FromContext]. Requests that accept none of the
// responder's types are rejected with 406 before the handler runs.
func Middleware(r *Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Add("Vary", "Accept")

			enc, ok := r.Negotiate(req)
			if !ok {
				writeNotAcceptable(w)

				return
			}

			next.ServeHTTP(w, req.WithContext(NewContext(req.Context(), enc)))
		})
	}
}

// NewContext returns a copy of ctx carrying enc for [FromContext]. It is
// what [Middleware] uses and is exported for tests and custom middleware.
func NewContext(ctx context.Context, enc Encoder) context.Context {
	return context.WithValue(ctx, encoderKey{}, enc)
}

// FromContext returns the encoder chosen by [Middleware], or false when the
// request did not pass through it.
func FromContext(ctx context.Context) (Encoder, bool) {
	enc, ok := ctx.Value(encoderKey{}).(Encoder)

	return enc, ok
}
