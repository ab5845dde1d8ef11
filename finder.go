package fuzzy

// findMatches enumerates candidate alignments of needle inside haystack.
// Both inputs must already be case folded. Every returned sequence is a
// strictly increasing list of haystack positions, one per needle character
// matched in order; a sequence may be shorter than the needle when the
// haystack or the recursion budget ran out first.
func findMatches(cfg Config, needle, haystack []rune) [][]int {
	if len(needle) == 0 {
		return nil
	}
	return search(cfg, needle, haystack, 0, 0, 0, nil)
}

// search walks needleIdx and haystackIdx forward until either string is
// exhausted or the depth budget is spent. On a character match it explores
// two continuations: keep the position and advance both cursors, or skip it
// and look for the same needle character further on. Only the skip branch
// consumes depth, so the plain scan stays linear and a repeated-character
// worst case cannot blow up exponentially. Alternative results are appended
// after primary results, which fixes the generation order ties are broken
// on.
func search(cfg Config, needle, haystack []rune, needleIdx, haystackIdx, depth int, current []int) [][]int {
	for needleIdx < len(needle) && haystackIdx < len(haystack) && depth < cfg.MaxRecursionDepth {
		if needle[needleIdx] != haystack[haystackIdx] {
			haystackIdx++
			continue
		}

		taken := make([]int, len(current), len(current)+1)
		copy(taken, current)
		taken = append(taken, haystackIdx)

		primary := search(cfg, needle, haystack, needleIdx+1, haystackIdx+1, depth, taken)
		alternative := search(cfg, needle, haystack, needleIdx, haystackIdx+1, depth+1, current)
		return append(primary, alternative...)
	}

	if len(current) == 0 {
		return nil
	}
	return [][]int{current}
}
