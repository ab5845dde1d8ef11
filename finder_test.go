package fuzzy

import (
	"reflect"
	"testing"
)

func TestFindMatchesDegenerateInputs(t *testing.T) {
	cfg := DefaultConfig()

	if got := findMatches(cfg, nil, []rune("anything")); got != nil {
		t.Errorf("findMatches with empty needle = %v, expected nil", got)
	}
	if got := findMatches(cfg, []rune("abc"), nil); got != nil {
		t.Errorf("findMatches with empty haystack = %v, expected nil", got)
	}
	if got := findMatches(cfg, []rune("xyz"), []rune("abc")); len(got) != 0 {
		t.Errorf("findMatches with no overlap = %v, expected no candidates", got)
	}
}

func TestFindMatchesCandidateOrder(t *testing.T) {
	// Primary continuations come first, alternatives after; partial
	// sequences are kept when the haystack runs out mid-needle.
	got := findMatches(DefaultConfig(), []rune("ab"), []rune("abab"))
	want := [][]int{{0, 1}, {0, 3}, {0}, {2, 3}, {2}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("findMatches(ab, abab) = %v, expected %v", got, want)
	}
}

func TestFindMatchesDepthCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRecursionDepth = 1

	// With a single unit of depth the skip branch terminates immediately,
	// leaving only the greedy scan and its truncations.
	got := findMatches(cfg, []rune("ab"), []rune("abab"))
	want := [][]int{{0, 1}, {0}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("findMatches(ab, abab) with depth 1 = %v, expected %v", got, want)
	}
}

func TestFindMatchesSequenceInvariants(t *testing.T) {
	tests := []struct {
		needle   string
		haystack string
	}{
		{"cars", "classic cars"},
		{"abc", "abc"},
		{"aaa", "aaaaaa"},
		{"kitten", "sitting"},
		{"an", "banana"},
		{"ab", "ba"},
	}

	for _, tt := range tests {
		needle := []rune(tt.needle)
		haystack := []rune(tt.haystack)
		for _, seq := range findMatches(DefaultConfig(), needle, haystack) {
			if len(seq) == 0 {
				t.Errorf("findMatches(%q, %q) produced an empty sequence", tt.needle, tt.haystack)
			}
			if len(seq) > len(needle) || len(seq) > len(haystack) {
				t.Errorf("findMatches(%q, %q) sequence %v longer than min(needle, haystack)", tt.needle, tt.haystack, seq)
			}
			for i := 1; i < len(seq); i++ {
				if seq[i] <= seq[i-1] {
					t.Errorf("findMatches(%q, %q) sequence %v not strictly increasing", tt.needle, tt.haystack, seq)
				}
			}
		}
	}
}
