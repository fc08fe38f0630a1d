package cli

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dl/perg/internal/input"
	"github.com/dl/perg/internal/matcher"
	"github.com/dl/perg/internal/output"
	"github.com/dl/perg/internal/pipeline"
)

// Run validates cfg and executes the search against the process's standard
// streams. Returns an exit code: ExitOK, ExitUsage for an invalid config, or
// ExitError. Callers do not need to call Validate first.
func Run(cfg Config) int {
	logger := NewLogger(os.Stderr, cfg.LogLevel)
	return run(cfg, os.Stdin, output.NewWriter(), os.Stderr, logger)
}

// NewLogger builds the stderr logger. Unknown levels fall back to warn.
func NewLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Level:  log.WarnLevel,
		Prefix: "perg",
	})
	if level == "" {
		return logger
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", level)
		return logger
	}
	logger.SetLevel(lvl)
	return logger
}

func run(cfg Config, stdin io.Reader, stdout io.Writer, stderr io.Writer, logger *log.Logger) int {
	start := time.Now()

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		return ExitUsage
	}
	sep, separate, _ := cfg.SeparatorByte()

	m, err := matcher.NewMatcher(cfg.Pattern, cfg.MatchMode(), cfg.IgnoreCase, cfg.Invert)
	if err != nil {
		logger.Error("invalid pattern", "pattern", cfg.Pattern, "err", err)
		return ExitError
	}
	filter := matcher.NewFilter(m)
	defer filter.Close()

	src, err := input.Open(cfg.Path, cfg.Reverse, stdin, cfg.MmapThreshold)
	if err != nil {
		logger.Error("cannot open input", "path", cfg.Path, "err", err)
		return ExitError
	}
	defer src.Close()

	sink := output.NewResultSink()
	sink.SetLimit(cfg.MaxCount)
	if separate {
		sink.SeparateBy(sep)
	}

	logger.Debug("search started",
		"path", inputName(cfg.Path),
		"reverse", cfg.Reverse,
		"mode", cfg.MatchMode(),
		"max", cfg.MaxCount,
	)

	stats := pipeline.Connect(src).Through(filter).Into(sink).Run()

	logger.Debug("search finished",
		"pulled", stats.Pulled,
		"dropped", stats.Dropped,
		"kept", sink.Count(),
		"stopped_by", stats.StoppedBy,
	)

	// A failed read ends the input early; the lines read before it still count.
	if err := src.Err(); err != nil {
		logger.Warn("input ended early", "path", inputName(cfg.Path), "err", err)
	}

	if err := sink.Dump(stdout); err != nil {
		logger.Error("write failed", "err", err)
		return ExitError
	}

	if cfg.Stats {
		styles := output.NoStyles()
		if f, ok := stderr.(*os.File); ok && output.IsTerminal(f.Fd()) {
			styles = output.NewStyles(stderr)
		}
		summary := output.Summary{
			Elapsed:   time.Since(start),
			Pulled:    stats.Pulled,
			Dropped:   stats.Dropped,
			Delivered: stats.Delivered,
			Kept:      sink.Count(),
		}
		if err := output.WriteSummary(stderr, summary, styles); err != nil {
			logger.Warn("cannot write summary", "err", err)
		}
	}

	return ExitOK
}

func inputName(path string) string {
	if path == "" {
		return "(standard input)"
	}
	return path
}
