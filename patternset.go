package sbom

// patternSet is the validated, deduplicated form of a caller-supplied
// pattern slice, plus its derived ℓ = min |pᵢ|.
type patternSet struct {
	patterns  [][]byte
	prefixLen int
}

// newPatternSet validates and deduplicates patterns, rejecting an
// empty set or any empty pattern. Pattern identity for deduplication
// purposes is byte-for-byte equality.
//
// Every retained pattern is copied out of the caller's backing array:
// an Oracle built from patterns must stay correct even if the caller
// later mutates the slices it passed in.
func newPatternSet(patterns [][]byte) (*patternSet, error) {
	if len(patterns) == 0 {
		return nil, &ValidationError{Kind: ErrEmptyPatternSet, Index: -1}
	}

	seen := make(map[string]struct{}, len(patterns))
	dedup := make([][]byte, 0, len(patterns))
	for i, p := range patterns {
		if len(p) == 0 {
			return nil, &ValidationError{Kind: ErrEmptyPattern, Index: i}
		}
		key := string(p)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		dedup = append(dedup, append([]byte(nil), p...))
	}

	minLen := len(dedup[0])
	for _, p := range dedup[1:] {
		if len(p) < minLen {
			minLen = len(p)
		}
	}

	return &patternSet{patterns: dedup, prefixLen: minLen}, nil
}
