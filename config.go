package fuzzy

// Config holds the tunable weights and penalties used while matching and
// scoring. It is passed by value; callers may start from DefaultConfig and
// adjust fields without affecting anyone else.
type Config struct {
	// MaxRecursionDepth bounds how many times the finder may fork to look
	// for an alternative alignment further into the haystack. The plain
	// character-by-character scan is not counted against it.
	MaxRecursionDepth int

	// UnmatchedLetterPenalty is applied once per haystack character that is
	// not part of the match.
	UnmatchedLetterPenalty int

	// SequentialBonus is awarded for every pair of adjacent matched
	// haystack positions.
	SequentialBonus int

	// SeparatorBonus is awarded for a matched character that directly
	// follows a space.
	SeparatorBonus int

	// CamelCaseBonus is awarded for a matched upper-case character that
	// directly follows a lower-case one.
	CamelCaseBonus int

	// FirstLetterBonus is awarded when the match starts at position 0.
	FirstLetterBonus int

	// LeadingLetterPenalty is applied per haystack character before the
	// first matched position, down to MaxLeadingLetterPenalty.
	LeadingLetterPenalty int

	// MaxLeadingLetterPenalty is the floor for the leading penalty.
	MaxLeadingLetterPenalty int
}

// DefaultConfig returns the weights used by Match and by all scoring.
func DefaultConfig() Config {
	return Config{
		MaxRecursionDepth:       10,
		UnmatchedLetterPenalty:  -1,
		SequentialBonus:         30,
		SeparatorBonus:          30,
		CamelCaseBonus:          30,
		FirstLetterBonus:        15,
		LeadingLetterPenalty:    -5,
		MaxLeadingLetterPenalty: -15,
	}
}
