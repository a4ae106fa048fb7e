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

import "sync"

// arenaSize covers the Accept headers real clients send; browser defaults
// carry four to six ranges.
const arenaSize = 16

// negotiateArena is pre-allocated scratch space for one negotiation call:
// the tokenized ranges and the entries that survive parsing. Arenas are
// pooled so negotiating a typical header does not allocate.
type negotiateArena struct {
	tokens  [arenaSize]string
	entries [arenaSize]acceptEntry
}

var arenaPool = sync.Pool{
	New: func() any {
		return &negotiateArena{}
	},
}

// getTokens returns a zero-length token slice backed by the arena when the
// capacity fits, falling back to the heap for unusually long headers.
func (a *negotiateArena) getTokens(capacity int) []string {
	if capacity <= len(a.tokens) {
		return a.tokens[:0]
	}

	return make([]string, 0, capacity)
}

// getEntries is the entry-slice counterpart of getTokens.
func (a *negotiateArena) getEntries(capacity int) []acceptEntry {
	if capacity <= len(a.entries) {
		return a.entries[:0]
	}

	return make([]acceptEntry, 0, capacity)
}

// reset clears header substrings and parsed parameter slices so pooled
// arenas do not pin request memory between calls.
func (a *negotiateArena) reset() {
	for i := range a.tokens {
		a.tokens[i] = ""
	}
	for i := range a.entries {
		a.entries[i] = acceptEntry{}
	}
}
