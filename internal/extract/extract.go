// Package extract derives a version descriptor from git history. Extraction
// never fails: any query the repository cannot answer (no git, no repository,
// no reachable marker, shallow history) degrades the affected fields to their
// zero values, because version stamping must not be able to break a build.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/mhekkel/versionstring"
	"github.com/mhekkel/versionstring/internal/apperr"
	"github.com/mhekkel/versionstring/internal/gitcmd"
)

// DefaultMarker is the annotated tag name used as the zero point for build
// counting when the caller does not supply one.
const DefaultMarker = "build"

// dateLayout is the fixed sortable UTC layout for Descriptor.BuildDate.
const dateLayout = "2006-01-02T15:04:05Z"

// Options parameterize one extraction.
type Options struct {
	// Version is the human-supplied semantic version, passed through verbatim.
	Version string
	// Component labels the descriptor; may be empty.
	Component string
	// Marker is the annotated tag name to count commits from; empty means
	// DefaultMarker.
	Marker string
}

// Extract queries git for the current commit, its distance from the nearest
// reachable annotated marker, and the working-tree state, and assembles a
// descriptor. It always returns a usable descriptor; degradations are logged
// and never surfaced as errors.
func Extract(ctx context.Context, git gitcmd.Runner, logger *slog.Logger, opts Options) versionstring.Descriptor {
	marker := opts.Marker
	if marker == "" {
		marker = DefaultMarker
	}
	d := versionstring.Descriptor{
		Component: opts.Component,
		Version:   opts.Version,
	}

	hash, err := git.Run(ctx, "rev-parse", "--short", "HEAD")
	if err != nil {
		logger.Warn("version info degraded: cannot resolve HEAD", "error", err)
		return d
	}
	d.Commit = hash

	if ts, err := commitDate(ctx, git); err != nil {
		logger.Warn("version info degraded: no commit timestamp", "error", err)
	} else {
		d.BuildDate = ts
	}

	if n, err := markerDistance(ctx, git, marker); err != nil {
		if errors.Is(err, apperr.ErrNoMarker) {
			logger.Debug("no reachable annotated marker, build number is 0", "marker", marker)
		} else {
			logger.Warn("version info degraded: build number is 0", "marker", marker, "error", err)
		}
	} else {
		d.BuildNumber = n
	}

	if dirty, err := worktreeDirty(ctx, git); err != nil {
		logger.Warn("version info degraded: dirty state unknown", "error", err)
	} else {
		d.Dirty = dirty
	}

	return d
}

// commitDate returns HEAD's committer timestamp normalized to UTC.
func commitDate(ctx context.Context, git gitcmd.Runner) (string, error) {
	out, err := git.Run(ctx, "log", "-1", "--format=%cI", "HEAD")
	if err != nil {
		return "", err
	}
	t, err := time.Parse(time.RFC3339, out)
	if err != nil {
		return "", fmt.Errorf("parsing committer date %q: %w", out, err)
	}
	return t.UTC().Format(dateLayout), nil
}

// describeRE matches "marker-N-ghash" output of git describe. A bare marker
// name (distance zero) is handled separately.
var describeRE = regexp.MustCompile(`-(\d+)-g[0-9a-f]+$`)

// markerDistance returns the number of commits between the nearest reachable
// annotated tag named marker and HEAD. git describe without --tags only
// considers annotated tags, which is exactly the rule here: a lightweight tag
// of the same name counts as absent. With an exact --match pattern at most one
// tag can match, so the result is deterministic even when several tags point
// at the marker commit.
func markerDistance(ctx context.Context, git gitcmd.Runner, marker string) (int, error) {
	out, err := git.Run(ctx, "describe", "--match", marker, "HEAD")
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperr.ErrNoMarker, err)
	}
	if out == marker {
		return 0, nil
	}
	m := describeRE.FindStringSubmatch(out)
	if m == nil {
		return 0, fmt.Errorf("unexpected describe output %q", out)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("unexpected describe output %q: %w", out, err)
	}
	return n, nil
}

// worktreeDirty reports whether tracked files differ from HEAD. Untracked
// files are excluded: they are not part of the built commit's tree.
func worktreeDirty(ctx context.Context, git gitcmd.Runner) (bool, error) {
	out, err := git.Run(ctx, "status", "--porcelain", "--untracked-files=no")
	if err != nil {
		return false, err
	}
	return out != "", nil
}
