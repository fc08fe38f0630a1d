package matcher

import (
	"fmt"
	"regexp"
	"strings"
)

// MaskMatcher matches shell-style masks anywhere in a line: '*' matches any
// run of bytes, '?' matches exactly one character, and everything else is
// literal.
type MaskMatcher struct {
	re     *regexp.Regexp
	pre    *prefilter
	invert bool
}

// NewMaskMatcher compiles mask into an unanchored RE2 expression.
func NewMaskMatcher(mask string, ignoreCase bool, invert bool) (*MaskMatcher, error) {
	expr := maskToRegex(mask, ignoreCase)
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile mask %q: %w", mask, err)
	}
	return &MaskMatcher{re: re, pre: newPrefilter(expr, false), invert: invert}, nil
}

func (m *MaskMatcher) Match(line []byte) bool {
	if !m.pre.candidate(line) {
		return m.invert
	}
	return m.re.Match(line) != m.invert
}

func maskToRegex(mask string, ignoreCase bool) string {
	var sb strings.Builder
	sb.WriteString("(?s)")
	if ignoreCase {
		sb.WriteString("(?i)")
	}
	for {
		i := strings.IndexAny(mask, "*?")
		if i < 0 {
			sb.WriteString(regexp.QuoteMeta(mask))
			return sb.String()
		}
		sb.WriteString(regexp.QuoteMeta(mask[:i]))
		if mask[i] == '*' {
			sb.WriteString(".*")
		} else {
			sb.WriteByte('.')
		}
		mask = mask[i+1:]
	}
}
