package matcher

import (
	"go.elara.ws/pcre"
)

// PCREMatcher matches using PCRE2-compatible regexes via the pure Go pcre package.
// Supports lookahead, lookbehind, backreferences, atomic groups, and all PCRE2 features.
type PCREMatcher struct {
	re     *pcre.Regexp
	invert bool
}

// NewPCREMatcher creates a PCREMatcher from a PCRE2 pattern string.
func NewPCREMatcher(pattern string, ignoreCase bool, invert bool) (*PCREMatcher, error) {
	var opts pcre.CompileOption
	if ignoreCase {
		opts |= pcre.Caseless
	}

	re, err := pcre.CompileOpts(pattern, opts)
	if err != nil {
		return nil, err
	}

	return &PCREMatcher{re: re, invert: invert}, nil
}

func (m *PCREMatcher) Match(line []byte) bool {
	return m.re.Match(line) != m.invert
}

// Close releases the compiled PCRE regex resources.
func (m *PCREMatcher) Close() {
	if m.re != nil {
		m.re.Close()
		m.re = nil
	}
}
