// Package matcher decides which lines a search keeps.
package matcher

// Matcher reports whether a single line, without its newline, is kept.
// Implementations are not safe for concurrent use.
type Matcher interface {
	Match(line []byte) bool
}

// Mode selects the pattern syntax.
type Mode int

const (
	ModeAuto  Mode = iota // literal if the pattern has no metacharacters, RE2 otherwise
	ModeFixed             // literal bytes
	ModeRegex             // RE2
	ModePCRE              // PCRE2
	ModeMask              // shell-style wildcards: * and ?
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeFixed:
		return "fixed"
	case ModeRegex:
		return "regex"
	case ModePCRE:
		return "pcre"
	case ModeMask:
		return "mask"
	}
	return "unknown"
}
