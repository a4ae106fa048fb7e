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

// Package negotiation implements HTTP proactive content negotiation:
// parsing media types and Accept headers, and selecting the best server
// representation for a client's stated preferences.
//
// The package provides three layers that build on each other:
//
//   - [ParseMediaType] parses a single media type or media range such as
//     "text/html; charset=utf-8" into a structured [MediaType].
//   - [ParseAcceptHeader] splits an Accept header value into its individual
//     media-range substrings, dropping malformed entries.
//   - [Negotiator] matches client preferences against a fixed list of
//     available representations following RFC 9110 semantics.
//
// # Quick Start
//
// Construct a [Negotiator] once with the representations a handler can
// produce, then call [Negotiator.Negotiate] per request:
//
//	neg := negotiation.MustNew([]string{"application/json", "text/html"})
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    switch neg.Negotiate(r.Header.Get("Accept"), negotiation.WithPermissive()) {
//	    case "application/json":
//	        // write JSON
//	    case "text/html":
//	        // write HTML
//	    case "":
//	        http.Error(w, "not acceptable", http.StatusNotAcceptable)
//	    }
//	}
//
// For one-off calls, the package-level [Negotiate] does both steps at once.
//
// # Parsing Modes
//
// Parsing is strict by default: input must satisfy the RFC 9110 media-type
// grammar exactly, apart from ignored leading and trailing whitespace.
// [WithPermissive] additionally tolerates patterns that are common in real
// traffic but technically malformed, such as whitespace before ";", bare
// parameters without "=value", trailing semicolons, and unterminated quoted
// strings at end of input.
//
// Use strict mode for server-side configuration (it surfaces typos early)
// and permissive mode for client-supplied headers. [Negotiator.Negotiate]
// never fails: Accept entries that cannot be parsed even permissively are
// skipped rather than rejecting the whole header.
//
// # Selection Rules
//
// Negotiation follows RFC 9110 section 12.5.1. Each Accept entry is weighted
// by its q parameter (scaled to integer thousandths, so "q=0.8" is 800).
// Entries with q=0 are refusals and never match. Among entries with the
// highest weight that overlap an available type, ties break by range
// specificity (concrete beats type/* beats */*), then by the number of
// parameters shared with the available type, then by the server's order of
// the available list, which expresses server preference.
//
// # Performance
//
// The hot path is allocation-conscious: tokenizing returns substrings of the
// input, scratch buffers for typical headers come from a [sync.Pool], and
// quality weights are integer arithmetic. A negotiation over a browser-sized
// Accept header performs no allocations beyond parsed parameter slices.
//
// # Subpackages
//
// The respond subpackage builds on this package to write negotiated HTTP
// responses, with encoders for JSON and XML built in and YAML, TOML,
// MessagePack and Protocol Buffers encoders in its own subpackages.
package negotiation
