// Package sbom implements Set Backwards Oracle Matching (SBOM), a
// multi-pattern substring search algorithm due to Navarro and Raffinot.
//
// Given a document and a finite set of patterns, the engine answers a
// single question: does the document contain every pattern as a
// substring? It does this faster than one independent scan per pattern
// by building a factor oracle over the reversed pattern prefixes and
// sliding a window across the document backwards through that
// automaton, skipping whole blocks of the document whenever the window
// cannot possibly contain the start of any pattern.
//
// The package fixes its alphabet at the byte level: patterns and
// documents are []byte/string, compared byte for byte. This matches
// build and search identically and performs no Unicode normalisation,
// case folding, or multi-byte rune handling. Callers that need
// rune-aware matching should normalise their inputs before calling in.
//
// The engine reports only a boolean verdict. It does not report match
// positions, counts, or which patterns matched; it does not stream
// (the document is a finite in-memory byte sequence); it performs no
// I/O and holds no state beyond a call's lifetime.
package sbom

import "sort"

// Oracle is an immutable automaton built from a PatternSet, reusable
// across many searches so construction cost is paid once. The zero
// value is not usable; construct with New.
type Oracle struct {
	patterns   [][]byte
	prefixLen  int
	transition transitionTable
}

// New builds an Oracle from patterns. Patterns is treated as a set:
// duplicates are coalesced. It returns a *ValidationError if patterns
// is empty or contains an empty pattern.
func New(patterns [][]byte) (*Oracle, error) {
	set, err := newPatternSet(patterns)
	if err != nil {
		return nil, err
	}
	root := buildTrie(set)
	tbl := buildOracle(root)
	return &Oracle{
		patterns:   set.patterns,
		prefixLen:  set.prefixLen,
		transition: tbl,
	}, nil
}

// Contains reports whether document contains every pattern the Oracle
// was built from as a substring. It is safe to call concurrently from
// multiple goroutines against the same Oracle: New returns a value
// that is never mutated afterwards.
func (o *Oracle) Contains(document []byte) bool {
	return search(document, o.patterns, o.transition, o.prefixLen)
}

// Search builds a one-shot Oracle from patterns and reports whether
// document contains every one of them as a substring. Equivalent to
// search_sbom in the specification. Prefer New+Contains when searching
// many documents against the same pattern set.
func Search(document []byte, patterns [][]byte) (bool, error) {
	o, err := New(patterns)
	if err != nil {
		return false, err
	}
	return o.Contains(document), nil
}

// DumpTransitions returns a read-only, sorted snapshot of the Oracle's
// transition table, for consumption by debug collaborators such as
// internal/dot. It is not on the hot path and allocates fresh slices
// on every call.
func (o *Oracle) DumpTransitions() []TransitionEntry {
	entries := make([]TransitionEntry, 0, o.transition.size())
	for state, edges := range o.transition.states {
		for sym, next := range edges {
			entries = append(entries, TransitionEntry{
				From:   state,
				Symbol: sym,
				To:     next,
			})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].From != entries[j].From {
			return entries[i].From < entries[j].From
		}
		return entries[i].Symbol < entries[j].Symbol
	})
	return entries
}

// TransitionEntry is one (state, symbol) -> state edge of an Oracle's
// transition table, exposed read-only for debug visualisation.
type TransitionEntry struct {
	From   int
	Symbol byte
	To     int
}

// Terms returns, for a given state id, the patterns terminating there.
// Returns nil if the state carries no terms. Exposed read-only for
// debug visualisation.
func (o *Oracle) Terms(stateID int) [][]byte {
	node := o.transition.nodeByID(stateID)
	if node == nil || len(node.terms) == 0 {
		return nil
	}
	out := make([][]byte, 0, len(node.terms))
	for _, t := range node.terms {
		out = append(out, t)
	}
	return out
}

// IsPrimaryEdge reports whether entry is a primary trie edge (parent
// to child) as opposed to a supplementary transition added by the
// oracle builder. Used only by debug visualisation.
func (o *Oracle) IsPrimaryEdge(entry TransitionEntry) bool {
	node := o.transition.nodeByID(entry.To)
	return node != nil && node.parent == entry.From && node.parentSymbol == entry.Symbol
}

// StateCount returns the number of states in the Oracle's automaton.
func (o *Oracle) StateCount() int {
	return o.transition.size()
}

// PrefixLen returns ℓ, the minimum pattern length and window size.
func (o *Oracle) PrefixLen() int {
	return o.prefixLen
}
