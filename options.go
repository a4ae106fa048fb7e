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

// Events provides hooks for observability without coupling.
type Events struct {
	// RangeDropped is called when negotiation discards an Accept header
	// entry that could not be parsed as a media range. The token is the
	// entry as it appeared in the header.
	RangeDropped func(token string, err error)
}

// Options configures parsing and negotiation behavior.
//
// Options are applied per-call via functional options. Option functions are
// safe to reuse across goroutines.
type Options struct {
	// Permissive tolerates common malformed patterns instead of failing:
	// whitespace before ";" and around "=", parameters without a value,
	// empty values, trailing semicolons, and quoted strings left open at
	// the end of input. Off by default.
	Permissive bool

	// TypesOnly makes [ParseAcceptHeader] return only the type/subtype
	// part of each entry, with parameters stripped.
	TypesOnly bool

	// Events holds observability hooks.
	Events Events
}

// Option configures parsing and negotiation behavior.
type Option func(*Options)

// WithPermissive enables tolerant parsing of real-world malformed input.
// Strict parsing is the default and is the right choice for server-side
// configuration; permissive mode suits client-supplied headers.
//
// Example:
//
//	mt, err := negotiation.ParseMediaType("text/html ; charset=utf-8",
//		negotiation.WithPermissive())
func WithPermissive() Option {
	return func(o *Options) {
		o.Permissive = true
	}
}

// WithTypesOnly strips parameters from [ParseAcceptHeader] results, leaving
// just the type/subtype of each entry.
//
// Example:
//
//	types := negotiation.ParseAcceptHeader("text/html;q=0.9, */*;q=0.8",
//		negotiation.WithTypesOnly())
//	// ["text/html", "*/*"]
func WithTypesOnly() Option {
	return func(o *Options) {
		o.TypesOnly = true
	}
}

// WithEvents sets observability hooks.
//
// Example:
//
//	neg.Negotiate(accept, negotiation.WithEvents(negotiation.Events{
//		RangeDropped: func(token string, err error) {
//			log.Printf("dropped accept range %q: %v", token, err)
//		},
//	}))
func WithEvents(events Events) Option {
	return func(o *Options) {
		o.Events = events
	}
}

func defaultOptions() *Options {
	return &Options{}
}

func applyOptions(opts []Option) *Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return o
}
