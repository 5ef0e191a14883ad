package sbom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchScenarios(t *testing.T) {
	tests := []struct {
		name     string
		document string
		patterns []string
		want     bool
	}{
		// Not every pattern is present: "mood" and "twelve" are missing.
		{"partial match", "food products", []string{"food", "mood", "twelve"}, false},
		{"single present pattern", "food products", []string{"food"}, true},
		// The root has no transition for any symbol of "abcdef", so every
		// window is skipped without ever reaching a terminal state.
		{"no transition from root", "abcdef", []string{"xyz"}, false},
		{"both short patterns confirmed in first windows", "abc", []string{"ab", "bc"}, true},
		// Document shorter than the window size: the search loop never runs.
		{"document shorter than prefix length", "a", []string{"aa"}, false},
		{"pattern equals document", "exact", []string{"exact"}, true},
		{"pattern longer than document", "hi", []string{"hithere"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patterns := toBytes(tt.patterns)
			got, err := Search([]byte(tt.document), patterns)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			naive, err := SearchNaive([]byte(tt.document), patterns)
			require.NoError(t, err)
			require.Equal(t, tt.want, naive)
		})
	}
}

func TestSearchSoundnessAndCompleteness(t *testing.T) {
	documents := []string{
		"the quick brown fox jumps over the lazy dog",
		"aabcaabcbacabcaabc",
		"mississippi river delta",
		"",
		"x",
	}
	patternGroups := [][]string{
		{"quick", "fox", "dog"},
		{"abc", "aab", "aabc", "bac"},
		{"mississippi", "river", "ocean"},
		{"miss", "sip"},
		{"quickbrown"},
	}

	for _, doc := range documents {
		for _, group := range patternGroups {
			patterns := toBytes(group)
			naive, err := SearchNaive([]byte(doc), patterns)
			require.NoError(t, err)
			oracle, err := Search([]byte(doc), patterns)
			require.NoError(t, err)
			require.Equal(t, naive, oracle, "doc=%q patterns=%v", doc, group)
		}
	}
}

func TestSearchOrderInsensitive(t *testing.T) {
	document := []byte("the quick brown fox jumps over the lazy dog")
	a := [][]byte{[]byte("quick"), []byte("fox"), []byte("dog")}
	b := [][]byte{[]byte("dog"), []byte("quick"), []byte("fox")}

	got1, err := Search(document, a)
	require.NoError(t, err)
	got2, err := Search(document, b)
	require.NoError(t, err)
	require.Equal(t, got1, got2)
}

func TestSearchIdempotent(t *testing.T) {
	oracle, err := New(toBytes([]string{"food", "mood", "twelve"}))
	require.NoError(t, err)

	doc := []byte("food products")
	first := oracle.Contains(doc)
	second := oracle.Contains(doc)
	require.Equal(t, first, second)
}

func TestSearchDuplicatePatternsCoalesce(t *testing.T) {
	got, err := Search([]byte("food products"), toBytes([]string{"food", "food", "food"}))
	require.NoError(t, err)
	require.True(t, got)
}

func TestRemovingPatternNeverConfirmsIt(t *testing.T) {
	doc := []byte("food products")
	withAll, err := Search(doc, toBytes([]string{"food", "mood"}))
	require.NoError(t, err)
	require.False(t, withAll) // "mood" absent

	withoutMood, err := Search(doc, toBytes([]string{"food"}))
	require.NoError(t, err)
	require.True(t, withoutMood)
}

// multi_string_search/tests/fixtures.py shape: three categories of
// pattern sets checked against one shared document.
func TestSearchCategorizedPatternSets(t *testing.T) {
	document := []byte("sample paragraph of text about factor oracle construction and online text search")

	complete := [][]string{
		{"sample paragraph", "text search"},
		{"factor oracle construction"},
		{"text"},
	}
	overlapping := [][]string{
		{"sample paragraph", "unrelated paragraph"},
		{"paragraph of text", "diagram of results"},
	}
	disjoint := [][]string{
		{"nonexistent term"},
		{"textual", "unrelated paragraph"},
	}

	for _, group := range complete {
		got, err := Search(document, toBytes(group))
		require.NoError(t, err)
		require.True(t, got, "expected complete match for %v", group)
	}
	for _, group := range overlapping {
		got, err := Search(document, toBytes(group))
		require.NoError(t, err)
		require.False(t, got, "expected overlapping (partial) match to be false for %v", group)
	}
	for _, group := range disjoint {
		got, err := Search(document, toBytes(group))
		require.NoError(t, err)
		require.False(t, got, "expected disjoint match to be false for %v", group)
	}
}

func toBytes(ss []string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}
