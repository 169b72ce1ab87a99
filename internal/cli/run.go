package cli

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/dl/lgrep/internal/matcher"
	"github.com/dl/lgrep/internal/output"
	"github.com/dl/lgrep/internal/scan"
	"github.com/dl/lgrep/internal/walker"
)

// Run executes the search with the given config.
// Returns the process exit code: 0 = normal completion, 1 = bad invocation
// or pattern. Per-file problems never change the exit code.
func Run(cfg Config) int {
	return run(cfg, output.NewWriter())
}

// run is Run with an injectable output stream, for tests.
func run(cfg Config, out io.Writer) int {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: log.WarnLevel,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid arguments", "err", err)
		return 1
	}

	m, err := matcher.Compile(cfg.Pattern, matcher.Options{
		IgnoreCase: cfg.IgnoreCase,
		Fixed:      cfg.Fixed,
		PCRE:       cfg.PCRE,
	})
	if err != nil {
		logger.Error("invalid pattern", "pattern", cfg.Pattern, "err", err)
		return 1
	}

	styles := output.NoStyles()
	if cfg.Color {
		styles = output.NewStyles()
	}
	formatter := output.NewFormatter(out, styles, cfg.Color, cfg.NoHeading)
	scanner := scan.New(m, formatter, cfg.Before, cfg.After, cfg.NoHeading)

	paths := cfg.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}

	state := &scan.RunState{}
	walker.Walk(paths, walker.Options{
		Hidden:   cfg.Hidden,
		NoIgnore: cfg.NoIgnore,
	}, func(path string) {
		if err := scanner.File(path, state); err != nil {
			// Only permission problems are worth surfacing; anything else
			// that fails at open is skipped to keep the batch resilient.
			if errors.Is(err, fs.ErrPermission) {
				logger.Warn("permission denied", "path", path)
			}
		}
	}, func(err error) {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("path not found", "err", err)
			return
		}
		logger.Warn("walk error", "err", err)
	})

	return 0
}
