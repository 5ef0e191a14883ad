package sbom

// SearchNaive is the reference implementation: it scans document once
// per pattern with a direct substring search, with no use of the trie
// or factor-oracle machinery. It exists to serve as a testing oracle
// for Search, not for production use.
func SearchNaive(document []byte, patterns [][]byte) (bool, error) {
	set, err := newPatternSet(patterns)
	if err != nil {
		return false, err
	}
	for _, p := range set.patterns {
		if !containsSubslice(document, p) {
			return false, nil
		}
	}
	return true, nil
}

func containsSubslice(haystack, needle []byte) bool {
	if len(needle) > len(haystack) {
		return false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if hasPrefixBytes(haystack[i:], needle) {
			return true
		}
	}
	return false
}
