package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigPathEnv names the variable that overrides the config file location.
const ConfigPathEnv = "PERG_CONFIG_PATH"

var errUnterminatedQuote = errors.New("unterminated quote")

// LoadConfigArgs reads the perg config file, $PERG_CONFIG_PATH or ~/.perg,
// and returns its arguments for prepending to the command line. A missing
// file yields no arguments and no error.
//
// Each line holds one or more arguments split like a shell word list:
// single quotes are literal, double quotes allow \" and \\, and outside
// quotes a backslash escapes a space, quote, # or backslash. Any other
// backslash is kept, so -s \t reaches the separator decoder intact. An
// unquoted # starts a comment.
func LoadConfigArgs() ([]string, error) {
	path := os.Getenv(ConfigPathEnv)
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil
		}
		path = filepath.Join(home, ".perg")
	}
	return loadConfigArgs(path)
}

func loadConfigArgs(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	defer f.Close()

	var args []string
	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		words, err := splitArgs(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("config %s:%d: %w", path, n, err)
		}
		args = append(args, words...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return args, nil
}

// splitArgs splits one config line into arguments.
func splitArgs(line string) ([]string, error) {
	var (
		args  []string
		word  strings.Builder
		inArg bool
		quote byte
	)
	flush := func() {
		if inArg {
			args = append(args, word.String())
			word.Reset()
			inArg = false
		}
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch quote {
		case '\'':
			if c == '\'' {
				quote = 0
			} else {
				word.WriteByte(c)
			}
			continue
		case '"':
			switch {
			case c == '"':
				quote = 0
			case c == '\\' && i+1 < len(line) && (line[i+1] == '"' || line[i+1] == '\\'):
				i++
				word.WriteByte(line[i])
			default:
				word.WriteByte(c)
			}
			continue
		}

		switch c {
		case ' ', '\t', '\r':
			flush()
		case '#':
			if !inArg {
				return args, nil
			}
			word.WriteByte(c)
		case '\'', '"':
			quote = c
			inArg = true
		case '\\':
			inArg = true
			if i+1 < len(line) && strings.IndexByte(" \t'\"#\\", line[i+1]) >= 0 {
				i++
			}
			word.WriteByte(line[i])
		default:
			inArg = true
			word.WriteByte(c)
		}
	}
	if quote != 0 {
		return nil, errUnterminatedQuote
	}
	flush()
	return args, nil
}
