package matcher

import (
	"fmt"
	"regexp"
)

// Matcher reports where a pattern matches within a single line.
type Matcher interface {
	// Find returns the start/end byte offsets of every match within line,
	// or nil if the line does not match. An error means the underlying
	// engine rejected the input; callers treat the file as unscannable.
	// Find must not mutate line.
	Find(line []byte) ([][2]int, error)
}

// Options controls pattern compilation.
// Case sensitivity is fixed at compile time, not per call.
type Options struct {
	IgnoreCase bool
	Fixed      bool // treat the pattern as a literal string
	PCRE       bool // use the PCRE2 engine instead of RE2
}

// Compile builds a Matcher for the given pattern.
// Selection logic:
//   - PCRE flag -> pcreMatcher (PCRE2 via pure Go port)
//   - Fixed flag -> regexMatcher over a quoted pattern
//   - Otherwise  -> regexMatcher (RE2)
func Compile(pattern string, opts Options) (Matcher, error) {
	if opts.Fixed && opts.PCRE {
		return nil, fmt.Errorf("cannot combine fixed-string and pcre matching")
	}
	if opts.PCRE {
		return newPCREMatcher(pattern, opts.IgnoreCase)
	}
	if opts.Fixed {
		pattern = regexp.QuoteMeta(pattern)
	}
	return newRegexMatcher(pattern, opts.IgnoreCase)
}
