/*
Package fuzzy ranks how well a short query string (the needle) matches a
longer candidate string (the haystack), in the style of search-as-you-type
pickers. Matching is a bounded backtracking search over case-folded copies
of both strings; scoring favors contiguous runs, word starts and camelCase
boundaries while penalizing leading and unmatched characters.

All positions are Unicode code point (rune) indexes into the haystack.
Every function is pure: no shared state, no errors, bounded run time.
*/
package fuzzy

import (
	"sort"
	"unicode"
)

// Result is the outcome of matching one needle against one haystack: the
// best alignment found and its score. Matches holds the rune positions of
// the matched haystack characters, strictly increasing; it is empty when
// the needle is empty or nothing matched, and the score is then 0.
type Result struct {
	Score   int
	Matches []int
}

type scoredCandidate struct {
	seq   []int
	score int
}

// Match scores needle against haystack using DefaultConfig.
func Match(needle, haystack string) Result {
	return MatchWithConfig(DefaultConfig(), needle, haystack)
}

// MatchWithConfig runs the alignment search with cfg and returns the best
// candidate. cfg steers the search only; scoring always uses the
// DefaultConfig weights. Among equally scored candidates the one generated
// last wins.
func MatchWithConfig(cfg Config, needle, haystack string) Result {
	original := []rune(haystack)
	candidates := findMatches(cfg, foldRunes(needle), foldRunes(haystack))
	if len(candidates) == 0 {
		return Result{}
	}

	def := DefaultConfig()
	scored := make([]scoredCandidate, len(candidates))
	for i, seq := range candidates {
		scored[i] = scoredCandidate{seq: seq, score: scoreSequence(def, original, seq)}
	}

	// Ascending stable sort plus a full reversal: among equal scores this
	// selects the candidate generated last, not first.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score < scored[j].score })
	reverse(scored)

	return Result{Score: scored[0].score, Matches: scored[0].seq}
}

// Sort ranks haystacks by descending Match score against needle. Equal
// scores keep the reverse of their input order.
func Sort(haystacks []string, needle string) []string {
	scores := make([]int, len(haystacks))
	for i, h := range haystacks {
		scores[i] = Match(needle, h).Score
	}
	return sortByScore(haystacks, scores)
}

func sortByScore(haystacks []string, scores []int) []string {
	type entry struct {
		str   string
		score int
	}
	entries := make([]entry, len(haystacks))
	for i, h := range haystacks {
		entries[i] = entry{str: h, score: scores[i]}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].score < entries[j].score })
	reverse(entries)

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.str
	}
	return out
}

// foldRunes lowercases s rune by rune, keeping indexes aligned with the
// original string's code points.
func foldRunes(s string) []rune {
	rs := []rune(s)
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
	return rs
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
