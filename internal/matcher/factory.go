package matcher

import (
	"fmt"
	"strings"
)

// NewMatcher creates the appropriate Matcher for pattern.
// Selection logic:
//   - ModePCRE -> PCREMatcher (PCRE2 via pure Go port)
//   - ModeMask -> MaskMatcher (wildcards compiled to RE2)
//   - ModeFixed -> FixedMatcher
//   - ModeRegex -> RegexMatcher (RE2)
//   - ModeAuto -> FixedMatcher for literal patterns, RegexMatcher otherwise
func NewMatcher(pattern string, mode Mode, ignoreCase bool, invert bool) (Matcher, error) {
	switch mode {
	case ModePCRE:
		return NewPCREMatcher(pattern, ignoreCase, invert)
	case ModeMask:
		return NewMaskMatcher(pattern, ignoreCase, invert)
	case ModeFixed:
		return NewFixedMatcher(pattern, ignoreCase, invert), nil
	case ModeRegex:
		return NewRegexMatcher(pattern, ignoreCase, invert)
	case ModeAuto:
		// Literal patterns skip the regex engine entirely, as ripgrep does.
		if isLiteral(pattern) {
			return NewFixedMatcher(pattern, ignoreCase, invert), nil
		}
		return NewRegexMatcher(pattern, ignoreCase, invert)
	}
	return nil, fmt.Errorf("unknown match mode %d", int(mode))
}

// isLiteral returns true if the pattern contains no regex metacharacters
// and can be treated as a fixed string.
func isLiteral(pattern string) bool {
	return !strings.ContainsAny(pattern, `\.+*?()|[]{}^$`)
}
