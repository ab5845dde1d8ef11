package fuzzy

import (
	"runtime"
	"sort"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// Ranked is one element of a Rank result. Index is the element's position
// in the input slice; Matches are the matched haystack positions, useful
// for highlighting.
type Ranked struct {
	Str     string
	Index   int
	Score   int
	Matches []int
}

// Rank matches needle against every haystack and returns, best first, the
// elements whose best alignment covers the whole needle. Ties order the
// same way as Sort. An empty needle yields nil.
func Rank(haystacks []string, needle string) []Ranked {
	want := utf8.RuneCountInString(needle)
	if want == 0 {
		return nil
	}

	var ranked []Ranked
	for i, h := range haystacks {
		res := Match(needle, h)
		if len(res.Matches) != want {
			continue
		}
		ranked = append(ranked, Ranked{Str: h, Index: i, Score: res.Score, Matches: res.Matches})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score < ranked[j].Score })
	reverse(ranked)
	return ranked
}

// SortConcurrent is Sort with the per-haystack scoring spread over up to
// GOMAXPROCS goroutines. Each needle/haystack pair is independent, so only
// the final ordering step is sequential; the result, ties included, is
// identical to Sort.
func SortConcurrent(haystacks []string, needle string) []string {
	scores := make([]int, len(haystacks))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, h := range haystacks {
		i, h := i, h
		g.Go(func() error {
			scores[i] = Match(needle, h).Score
			return nil
		})
	}
	// The workers never return an error.
	_ = g.Wait()

	return sortByScore(haystacks, scores)
}
