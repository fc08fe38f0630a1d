package matcher

import (
	"bytes"
	"regexp/syntax"
	"strings"
	"unicode"
)

const minPrefilterLen = 3

// prefilter rejects lines that lack a literal every match must contain,
// so the regex engine only runs on candidate lines.
type prefilter struct {
	literal    []byte // lowercased when ignoreCase
	ignoreCase bool
	scratch    []byte
}

// newPrefilter returns nil when pattern has no usable required literal.
func newPrefilter(pattern string, ignoreCase bool) *prefilter {
	info, ok := extractLiteral(pattern, ignoreCase)
	if !ok {
		return nil
	}
	return &prefilter{literal: []byte(info.literal), ignoreCase: info.ignoreCase}
}

// candidate reports whether line may match. A nil prefilter accepts everything.
func (p *prefilter) candidate(line []byte) bool {
	if p == nil {
		return true
	}
	if !p.ignoreCase {
		return bytes.Contains(line, p.literal)
	}
	if cap(p.scratch) < len(line) {
		p.scratch = make([]byte, len(line))
	}
	s := p.scratch[:len(line)]
	toLowerASCII(s, line)
	return bytes.Contains(s, p.literal)
}

// literalInfo holds a literal substring extracted from a regex AST that is
// guaranteed to appear in any match of the regex.
type literalInfo struct {
	literal    string
	ignoreCase bool
}

// extractLiteral parses a regex pattern and extracts the longest required
// literal substring that must appear in any match. Returns the literal info
// and true if a usable literal was found (length >= minPrefilterLen).
func extractLiteral(pattern string, ignoreCase bool) (literalInfo, bool) {
	flags := syntax.Perl
	if ignoreCase {
		flags |= syntax.FoldCase
	}

	re, err := syntax.Parse(pattern, flags)
	if err != nil {
		return literalInfo{}, false
	}
	re = re.Simplify()

	candidates := extractFromNode(re)
	if len(candidates) == 0 {
		return literalInfo{}, false
	}

	// Longest all-ASCII candidate. Folded candidates containing k or s are
	// skipped: RE2 folds them to U+212A and U+017F, which ASCII lowering misses.
	var best candidate
	for _, c := range candidates {
		if len(c.runes) <= len(best.runes) || !isASCIIRunes(c.runes) {
			continue
		}
		if (c.foldCase || ignoreCase) && hasUnicodeFold(c.runes) {
			continue
		}
		best = c
	}

	lit := string(best.runes)
	if len(lit) < minPrefilterLen {
		return literalInfo{}, false
	}

	ci := best.foldCase || ignoreCase
	if ci {
		lit = strings.ToLower(lit)
	}

	return literalInfo{literal: lit, ignoreCase: ci}, true
}

// candidate is a literal substring found in the regex AST.
type candidate struct {
	runes    []rune
	foldCase bool
}

// extractFromNode walks the AST and returns all required literal substrings.
func extractFromNode(re *syntax.Regexp) []candidate {
	switch re.Op {
	case syntax.OpLiteral:
		if len(re.Rune) == 0 {
			return nil
		}
		return []candidate{{
			runes:    re.Rune,
			foldCase: re.Flags&syntax.FoldCase != 0,
		}}

	case syntax.OpConcat:
		return extractFromConcat(re.Sub)

	case syntax.OpCapture, syntax.OpPlus:
		if len(re.Sub) > 0 {
			return extractFromNode(re.Sub[0])
		}
		return nil

	case syntax.OpRepeat:
		if re.Min >= 1 && len(re.Sub) > 0 {
			return extractFromNode(re.Sub[0])
		}
		return nil

	default:
		// Star, quest, alternation, classes and anchors require nothing.
		return nil
	}
}

// extractFromConcat collects candidates from children, merging adjacent
// literal nodes with the same fold flag into longer candidates.
func extractFromConcat(subs []*syntax.Regexp) []candidate {
	var results []candidate

	var run []rune
	var runFold bool
	flush := func() {
		if len(run) > 0 {
			results = append(results, candidate{runes: run, foldCase: runFold})
			run = nil
		}
	}

	for _, sub := range subs {
		if sub.Op == syntax.OpLiteral && len(sub.Rune) > 0 {
			fc := sub.Flags&syntax.FoldCase != 0
			if len(run) > 0 && fc != runFold {
				flush()
			}
			runFold = fc
			run = append(run, sub.Rune...)
		} else {
			flush()
			results = append(results, extractFromNode(sub)...)
		}
	}
	flush()

	return results
}

func isASCIIRunes(runes []rune) bool {
	for _, r := range runes {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

func hasUnicodeFold(runes []rune) bool {
	for _, r := range runes {
		switch r {
		case 'k', 'K', 's', 'S':
			return true
		}
	}
	return false
}
