package cli

import (
	"fmt"

	"github.com/dl/perg/internal/matcher"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0 // search completed, with or without matches
	ExitUsage = 1 // invalid invocation
	ExitError = 2 // bad pattern, unreadable input, failed output
)

// Config holds all configuration for a perg search.
type Config struct {
	Pattern       string
	Fixed         bool
	Regex         bool
	PCRE          bool
	Mask          bool
	IgnoreCase    bool
	Invert        bool
	Reverse       bool
	Path          string // empty reads stdin
	MaxCount      int    // negative means unbounded
	Separator     string // one byte or escape; empty disables
	MmapThreshold int64
	Stats         bool
	LogLevel      string
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		MaxCount:  -1,
		Separator: `\n`,
		LogLevel:  "warn",
	}
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Pattern == "" {
		return fmt.Errorf("no pattern specified")
	}
	modes := 0
	for _, set := range []bool{c.Fixed, c.Regex, c.PCRE, c.Mask} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		return fmt.Errorf("only one of -F (fixed), -E (regex), -P (pcre) and -G (glob mask) may be used")
	}
	if c.MmapThreshold < 0 {
		return fmt.Errorf("invalid mmap threshold: %d", c.MmapThreshold)
	}
	if _, _, err := c.SeparatorByte(); err != nil {
		return err
	}
	return nil
}

// MatchMode maps the mode flags to a matcher mode.
func (c *Config) MatchMode() matcher.Mode {
	switch {
	case c.Fixed:
		return matcher.ModeFixed
	case c.Regex:
		return matcher.ModeRegex
	case c.PCRE:
		return matcher.ModePCRE
	case c.Mask:
		return matcher.ModeMask
	}
	return matcher.ModeAuto
}

// SeparatorByte decodes Separator. ok is false when no separator is wanted.
// Accepted escapes: \n, \t, \r, \0 and \\.
func (c *Config) SeparatorByte() (sep byte, ok bool, err error) {
	s := c.Separator
	switch {
	case s == "":
		return 0, false, nil
	case len(s) == 1:
		return s[0], true, nil
	case len(s) == 2 && s[0] == '\\':
		switch s[1] {
		case 'n':
			return '\n', true, nil
		case 't':
			return '\t', true, nil
		case 'r':
			return '\r', true, nil
		case '0':
			return 0, true, nil
		case '\\':
			return '\\', true, nil
		}
	}
	return 0, false, fmt.Errorf("separator must be a single byte, got %q", s)
}
