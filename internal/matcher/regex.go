package matcher

import "regexp"

// regexMatcher uses Go's RE2 regexp engine.
type regexMatcher struct {
	re *regexp.Regexp
}

func newRegexMatcher(pattern string, ignoreCase bool) (*regexMatcher, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &regexMatcher{re: re}, nil
}

func (m *regexMatcher) Find(line []byte) ([][2]int, error) {
	locs := m.re.FindAllIndex(line, -1)
	if len(locs) == 0 {
		return nil, nil
	}
	spans := make([][2]int, len(locs))
	for i, loc := range locs {
		spans[i] = [2]int{loc[0], loc[1]}
	}
	return spans, nil
}
