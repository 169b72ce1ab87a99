package matcher

import (
	"fmt"

	"go.elara.ws/pcre"
)

// pcreMatcher matches using PCRE2-compatible regexes via the pure Go pcre
// package. Supports lookahead, lookbehind, backreferences, and atomic groups.
type pcreMatcher struct {
	re *pcre.Regexp
}

func newPCREMatcher(pattern string, ignoreCase bool) (*pcreMatcher, error) {
	var opts pcre.CompileOption
	if ignoreCase {
		opts |= pcre.Caseless
	}
	re, err := pcre.CompileOpts(pattern, opts)
	if err != nil {
		return nil, err
	}
	return &pcreMatcher{re: re}, nil
}

// Find recovers from engine panics: the translated PCRE2 code can fault on
// pathological byte sequences, and a single bad line must surface as an
// engine error rather than crash the run.
func (m *pcreMatcher) Find(line []byte) (spans [][2]int, err error) {
	defer func() {
		if r := recover(); r != nil {
			spans = nil
			err = fmt.Errorf("pcre engine: %v", r)
		}
	}()

	locs := m.re.FindAllIndex(line, -1)
	if len(locs) == 0 {
		return nil, nil
	}
	spans = make([][2]int, len(locs))
	for i, loc := range locs {
		spans[i] = [2]int{loc[0], loc[1]}
	}
	return spans, nil
}
