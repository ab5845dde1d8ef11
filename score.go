package fuzzy

import "unicode"

// scoreSequence rates one candidate alignment against the original-case
// haystack. The result is the sum of six independent terms: a capped
// penalty for leading characters before the first match, a penalty per
// unmatched haystack character, and bonuses for starting at position 0,
// for contiguous runs, for characters following a space, and for
// lower-to-upper case transitions.
func scoreSequence(cfg Config, haystack []rune, seq []int) int {
	first := 0
	if len(seq) > 0 {
		first = seq[0]
	}
	score := max(cfg.MaxLeadingLetterPenalty, cfg.LeadingLetterPenalty*first)

	score += cfg.UnmatchedLetterPenalty * (len(haystack) - len(seq))

	if len(seq) > 0 && seq[0] == 0 {
		score += cfg.FirstLetterBonus
	}

	for i, pos := range seq {
		if i > 0 && seq[i-1]+1 == pos {
			score += cfg.SequentialBonus
		}
		if pos > 0 {
			prev := haystack[pos-1]
			if prev == ' ' {
				score += cfg.SeparatorBonus
			}
			if unicode.IsLower(prev) && unicode.IsUpper(haystack[pos]) {
				score += cfg.CamelCaseBonus
			}
		}
	}

	return score
}
