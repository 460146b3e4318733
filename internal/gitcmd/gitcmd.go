// Package gitcmd runs read-only queries against a local git repository by
// invoking the git executable. It is the only place that shells out; every
// consumer goes through the Runner interface so tests can substitute a mock
// and so any tool answering the same queries could replace git.
package gitcmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mhekkel/versionstring/internal/apperr"
)

// Runner executes one git subcommand and returns its trimmed stdout.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// Client runs git in a fixed working directory.
type Client struct {
	// Dir is the repository root (or any directory inside the working copy).
	Dir string
	// Path overrides the git executable; empty means "git" from PATH.
	Path string
}

var _ Runner = (*Client)(nil)

// New returns a Client querying the repository at dir.
func New(dir string) *Client {
	return &Client{Dir: dir}
}

// Run executes git with the given arguments and returns trimmed stdout.
// A missing executable is reported as apperr.ErrGitNotFound; any other failure
// carries git's stderr in the error message.
func (c *Client) Run(ctx context.Context, args ...string) (string, error) {
	path := c.Path
	if path == "" {
		path = "git"
	}
	resolved, err := exec.LookPath(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrGitNotFound, err)
	}

	cmd := exec.CommandContext(ctx, resolved, args...)
	cmd.Dir = c.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
	}
	return strings.TrimSpace(stdout.String()), nil
}
