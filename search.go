package sbom

// search walks a sliding window of size prefixLen backwards through
// the oracle, skipping ahead by however many symbols the walk proves
// cannot start a pattern, and confirms candidates by direct comparison
// at the cursor. Returns whether every pattern was eventually found.
func search(document []byte, patterns [][]byte, tbl transitionTable, prefixLen int) bool {
	remaining := make(map[string]struct{}, len(patterns))
	for _, p := range patterns {
		remaining[string(p)] = struct{}{}
	}

	rest := document
	for len(rest) >= prefixLen && len(remaining) > 0 {
		window := rest[:prefixLen]

		state := 0
		advance := prefixLen
		for i := prefixLen - 1; i >= 0; i-- {
			next, ok := tbl.get(state, window[i])
			if !ok {
				break // dead walk: state holds the last symbol-bearing-no-terms state reached
			}
			state = next
			advance--
			if node := tbl.nodeByID(state); node != nil && len(node.terms) > 0 {
				break // candidate prefix match located
			}
		}

		rest = rest[advance:]

		if node := tbl.nodeByID(state); node != nil && len(node.terms) > 0 {
			for _, term := range node.terms {
				key := string(term)
				if _, stillWanted := remaining[key]; !stillWanted {
					continue
				}
				if hasPrefixBytes(rest, term) {
					delete(remaining, key)
				}
			}
		}

		if advance == 0 {
			// The walk reached a stopping state without the cursor
			// having moved; nudge forward to guarantee progress. A
			// terminal state reached on the window's first symbol
			// would otherwise leave the cursor fixed and loop forever.
			rest = rest[1:]
		}
	}

	return len(remaining) == 0
}

func hasPrefixBytes(s, prefix []byte) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}
