// Package testutil provides shared test helpers for versionstring unit tests.
package testutil

import (
	"context"
	"io"
	"log/slog"

	"github.com/mhekkel/versionstring/internal/gitcmd"
)

// MockGit implements gitcmd.Runner for testing. RunFn is a function field so
// tests can script exactly the git answers they need; Calls records every
// argument list for assertions on the queries issued.
type MockGit struct {
	RunFn func(ctx context.Context, args ...string) (string, error)
	Calls [][]string
}

var _ gitcmd.Runner = (*MockGit)(nil)

// Run implements gitcmd.Runner.
func (m *MockGit) Run(ctx context.Context, args ...string) (string, error) {
	m.Calls = append(m.Calls, args)
	if m.RunFn != nil {
		return m.RunFn(ctx, args...)
	}
	return "", nil
}

// NopLogger returns a logger that discards all output.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
