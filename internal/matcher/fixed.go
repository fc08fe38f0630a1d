package matcher

import "bytes"

// FixedMatcher does literal substring matching. Case folding is ASCII only.
type FixedMatcher struct {
	pattern    []byte // lowercased when ignoreCase
	ignoreCase bool
	invert     bool
	scratch    []byte // lowered copy of the current line
}

// NewFixedMatcher creates a FixedMatcher for a single fixed pattern.
func NewFixedMatcher(pattern string, ignoreCase bool, invert bool) *FixedMatcher {
	p := []byte(pattern)
	if ignoreCase {
		toLowerASCII(p, p)
	}
	return &FixedMatcher{
		pattern:    p,
		ignoreCase: ignoreCase,
		invert:     invert,
	}
}

func (m *FixedMatcher) Match(line []byte) bool {
	search := line
	if m.ignoreCase {
		if cap(m.scratch) < len(line) {
			m.scratch = make([]byte, len(line))
		}
		search = m.scratch[:len(line)]
		toLowerASCII(search, line)
	}
	return bytes.Contains(search, m.pattern) != m.invert
}

// toLowerASCII lowercases ASCII bytes from src into dst.
// dst must be at least len(src) bytes. Non-ASCII bytes are copied unchanged.
func toLowerASCII(dst, src []byte) {
	for i, b := range src {
		if b >= 'A' && b <= 'Z' {
			b += 0x20
		}
		dst[i] = b
	}
}
