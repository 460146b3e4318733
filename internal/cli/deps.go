package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mhekkel/versionstring/internal/config"
	"github.com/mhekkel/versionstring/internal/extract"
	"github.com/mhekkel/versionstring/internal/gitcmd"
	"github.com/mhekkel/versionstring/internal/output"
)

// deps holds fully-resolved runtime dependencies for a subcommand.
type deps struct {
	logger *slog.Logger
	cfg    *config.Config
}

// buildDeps resolves config and logger and validates the output format.
func buildDeps(cmd *cobra.Command, stderr io.Writer) (*deps, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if !output.Format(cfg.Format).Valid() {
		return nil, fmt.Errorf("invalid output format %q: must be \"text\" or \"json\"", cfg.Format)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return &deps{logger: logger, cfg: cfg}, nil
}

// newGit returns a git runner rooted at the configured repository.
func (d *deps) newGit() gitcmd.Runner {
	return gitcmd.New(d.cfg.RepoRoot)
}

// extractOptions maps the resolved config onto extraction options.
func extractOptions(cfg *config.Config) extract.Options {
	return extract.Options{
		Version:   cfg.Version,
		Component: cfg.Component,
		Marker:    cfg.Marker,
	}
}
