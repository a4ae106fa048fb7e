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
	"fmt"
	"slices"
	"strings"
)

// acceptEntry is one media range that survived parsing: its comparison
// form, its quality weight in thousandths, and after the overlap pass the
// index of the available type it matched.
type acceptEntry struct {
	norm      NormalizedMediaType
	weight    int
	available int
}

// availableType pairs a server representation string with its comparison
// form. The original spelling is what Negotiate returns.
type availableType struct {
	original string
	norm     NormalizedMediaType
}

// Negotiator selects the best of a fixed set of server representations for
// a client's Accept header. The available list is ordered by server
// preference: earlier entries win ties.
//
// A Negotiator is immutable after construction and safe for concurrent use.
// Construct it once per handler rather than per request; the one-shot
// [Negotiate] function exists for callers that cannot.
type Negotiator struct {
	available []availableType
}

// New parses the available representations and returns a Negotiator.
// Parsing is strict: an entry that does not satisfy the media-type grammar
// is a configuration defect and fails construction with the offending
// entry's [*ParseError].
func New(availableTypes []string) (*Negotiator, error) {
	n := &Negotiator{}
	if len(availableTypes) > 0 {
		n.available = make([]availableType, 0, len(availableTypes))
	}
	for _, raw := range availableTypes {
		mt, err := parseMediaType(raw, false)
		if err != nil {
			return nil, fmt.Errorf("available type %q: %w", raw, err)
		}
		n.available = append(n.available, availableType{original: raw, norm: mt.Normalize()})
	}

	return n, nil
}

// MustNew is like [New] but panics on error. Use it for negotiators built
// from literals at startup.
func MustNew(availableTypes []string) *Negotiator {
	n, err := New(availableTypes)
	if err != nil {
		panic("negotiation: " + err.Error())
	}

	return n
}

// Negotiate returns the available representation, in its original spelling,
// that best satisfies the Accept header value, or "" when none is
// acceptable.
//
// An empty accept string means the client states no preference and yields
// the first available type. Malformed entries and entries weighted q=0 are
// skipped; if nothing overlaps the available list the result is "".
//
// Selection follows RFC 9110: highest quality weight wins, and equal
// weights break by range specificity, then by the number of parameters
// shared with the matched available type, then by server preference order.
func (n *Negotiator) Negotiate(accept string, opts ...Option) string {
	o := applyOptions(opts)

	return n.negotiate(accept, o)
}

func (n *Negotiator) negotiate(accept string, o *Options) string {
	if len(n.available) == 0 {
		return ""
	}
	if accept == "" {
		return n.available[0].original
	}

	arena, ok := arenaPool.Get().(*negotiateArena)
	if !ok {
		panic("negotiation: arenaPool corruption - expected *negotiateArena")
	}
	defer func() {
		arena.reset()
		arenaPool.Put(arena)
	}()

	tokens := tokenizeAccept(accept, false, o.Permissive,
		arena.getTokens(strings.Count(accept, ",")+1))

	entries := arena.getEntries(len(tokens))
	for _, tok := range tokens {
		mt, err := parseMediaType(tok, o.Permissive)
		if err != nil {
			if o.Events.RangeDropped != nil {
				o.Events.RangeDropped(tok, err)
			}

			continue
		}
		norm := mt.Normalize()
		w := weightOf(norm)
		if w == 0 {
			// q=0 is an explicit refusal, not a low preference.
			continue
		}
		entries = append(entries, acceptEntry{norm: norm, weight: w, available: -1})
	}

	// Highest weight first; the stable sort keeps header order within a
	// weight class.
	slices.SortStableFunc(entries, func(a, b acceptEntry) int {
		return b.weight - a.weight
	})

	// Keep only ranges that overlap the available list, each associated
	// with the first available type it matches.
	kept := entries[:0]
	for _, e := range entries {
		if idx, ok := n.match(e.norm); ok {
			e.available = idx
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		return ""
	}

	// Only the top weight class competes for the tie-break.
	for i, e := range kept {
		if e.weight < kept[0].weight {
			kept = kept[:i]

			break
		}
	}

	best := kept[0]
	for _, e := range kept[1:] {
		if n.better(e, best) {
			best = e
		}
	}

	return n.available[best.available].original
}

// match returns the index of the first available type the range overlaps:
// exact type/subtype equality, a type/* wildcard, or the full wildcard.
func (n *Negotiator) match(r NormalizedMediaType) (int, bool) {
	for i := range n.available {
		a := &n.available[i]
		switch {
		case r.Type == "*":
			return i, true
		case r.Type != a.norm.Type:
		case r.Subtype == "*" || r.Subtype == a.norm.Subtype:
			return i, true
		}
	}

	return 0, false
}

// better reports whether e outranks cur within the same weight class:
// more specific range first, then more parameters shared with the matched
// available type, then the earlier available type.
func (n *Negotiator) better(e, cur acceptEntry) bool {
	if s1, s2 := specificity(e.norm), specificity(cur.norm); s1 != s2 {
		return s1 > s2
	}
	if p1, p2 := n.sharedParams(e), n.sharedParams(cur); p1 != p2 {
		return p1 > p2
	}

	return e.available < cur.available
}

// specificity ranks a media range: a concrete type and subtype above a
// wildcard subtype, above the full wildcard.
func specificity(m NormalizedMediaType) int {
	switch {
	case m.Type == "*":
		return 0
	case m.Subtype == "*":
		return 1
	default:
		return 2
	}
}

// sharedParams counts the range's non-q parameters that appear on the
// matched available type with an identical value. Names compare after
// normalization; values compare case-sensitively.
func (n *Negotiator) sharedParams(e acceptEntry) int {
	avail := n.available[e.available].norm.Params
	if len(avail) == 0 || len(e.norm.Params) == 0 {
		return 0
	}

	count := 0
	for _, p := range e.norm.Params {
		if p.Name == "q" {
			continue
		}
		for _, ap := range avail {
			if ap.Name == p.Name && ap.Value == p.Value {
				count++

				break
			}
		}
	}

	return count
}

// Negotiate is the one-shot form: it builds a [Negotiator] for
// availableTypes and matches accept against it. It returns an error only
// for unparseable available types; an Accept header that matches nothing
// yields "" with a nil error.
//
// Handlers that negotiate on every request should construct a [Negotiator]
// once instead.
func Negotiate(availableTypes []string, accept string, opts ...Option) (string, error) {
	n, err := New(availableTypes)
	if err != nil {
		return "", err
	}

	return n.Negotiate(accept, opts...), nil
}
