package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dl/perg/internal/cli"
)

type runFunc func(cli.Config) int

// newRootCmd builds the perg command. Every flag can also be set through a
// PERG_* environment variable, e.g. PERG_MAX_COUNT=10; explicit flags win.
func newRootCmd(run runFunc, code *int) *cobra.Command {
	v := viper.New()
	defaults := cli.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "perg [flags] [pattern] [file]",
		Short: "search a file or standard input for matching lines",
		Long: `perg prints the lines of a file, or of standard input, that match a pattern.

With -r the input is scanned from the last line to the first. Files are
memory-mapped; standard input is read in full before a reverse scan starts.

Examples:
  perg error /var/log/app.log
  perg -r -n 10 -m 'conn*timeout' -i /var/log/app.log
  dmesg | perg -r -G 'usb*connect'
`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromViper(v, args)
			if err != nil {
				return err
			}
			// Config validation belongs to run, which maps it to ExitUsage.
			*code = run(cfg)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP("mask", "m", "", "wildcard mask to search for (* and ?); with -F, -E or -P it is read in that syntax instead")
	flags.StringP("input", "i", "", "file to search (default: standard input)")
	flags.BoolP("reverse", "r", false, "scan from the last line to the first")
	flags.BoolP("fixed-strings", "F", false, "treat the pattern as a literal string")
	flags.BoolP("extended-regexp", "E", false, "treat the pattern as an RE2 regular expression")
	flags.BoolP("perl-regexp", "P", false, "treat the pattern as a PCRE2 regular expression")
	flags.BoolP("glob", "G", false, "treat the pattern as a wildcard mask (* and ?)")
	flags.BoolP("ignore-case", "y", false, "ignore ASCII case distinctions")
	flags.BoolP("invert-match", "v", false, "select non-matching lines")
	flags.IntP("max-count", "n", defaults.MaxCount, "stop after this many lines (negative: no limit)")
	flags.StringP("separator", "s", defaults.Separator, `byte written after each line; escapes \n \t \r \0 \\; empty for none`)
	flags.Int64("mmap-threshold", defaults.MmapThreshold, "read files smaller than this many bytes instead of mapping them")
	flags.Bool("stats", defaults.Stats, "print a run summary to standard error")
	flags.String("log-level", defaults.LogLevel, "log level: debug, info, warn, error")

	v.SetEnvPrefix("PERG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("bind flags: %v", err))
	}

	return cmd
}

// configFromViper resolves flags, environment and positional arguments.
// Positional arguments fill the pattern first, then the input path, skipping
// whichever was already given as a flag. A pattern given through --mask is a
// wildcard mask unless -F, -E or -P names another syntax; a positional
// pattern keeps auto detection.
func configFromViper(v *viper.Viper, args []string) (cli.Config, error) {
	cfg := cli.Config{
		Pattern:       v.GetString("mask"),
		Path:          v.GetString("input"),
		Reverse:       v.GetBool("reverse"),
		Fixed:         v.GetBool("fixed-strings"),
		Regex:         v.GetBool("extended-regexp"),
		PCRE:          v.GetBool("perl-regexp"),
		Mask:          v.GetBool("glob"),
		IgnoreCase:    v.GetBool("ignore-case"),
		Invert:        v.GetBool("invert-match"),
		MaxCount:      v.GetInt("max-count"),
		Separator:     v.GetString("separator"),
		MmapThreshold: v.GetInt64("mmap-threshold"),
		Stats:         v.GetBool("stats"),
		LogLevel:      v.GetString("log-level"),
	}
	if cfg.Pattern != "" && !cfg.Fixed && !cfg.Regex && !cfg.PCRE {
		cfg.Mask = true
	}

	for _, arg := range args {
		switch {
		case cfg.Pattern == "":
			cfg.Pattern = arg
		case cfg.Path == "":
			cfg.Path = arg
		default:
			return cfg, fmt.Errorf("unexpected argument %q: pattern and input are already set", arg)
		}
	}
	return cfg, nil
}
