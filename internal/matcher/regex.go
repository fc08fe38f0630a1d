package matcher

import "regexp"

// RegexMatcher uses Go's RE2 regexp engine, skipping lines that lack the
// pattern's required literal.
type RegexMatcher struct {
	re     *regexp.Regexp
	pre    *prefilter
	invert bool
}

// NewRegexMatcher creates a RegexMatcher for the given pattern.
func NewRegexMatcher(pattern string, ignoreCase bool, invert bool) (*RegexMatcher, error) {
	expr := pattern
	if ignoreCase {
		expr = "(?i)" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &RegexMatcher{re: re, pre: newPrefilter(pattern, ignoreCase), invert: invert}, nil
}

func (m *RegexMatcher) Match(line []byte) bool {
	if !m.pre.candidate(line) {
		return m.invert
	}
	return m.re.Match(line) != m.invert
}
