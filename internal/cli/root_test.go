package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhekkel/versionstring"
	"github.com/mhekkel/versionstring/internal/cli"
)

// execute runs the CLI with args and returns stdout, stderr, and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := cli.Execute(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestGenerate_OutsideRepositoryStillWritesFile(t *testing.T) {
	repo := t.TempDir()
	out := filepath.Join(t.TempDir(), "version_info.go")

	_, _, err := execute(t, "generate",
		"--repo="+repo,
		"--version=1.2.0",
		"--component=hello",
		"--output="+out,
	)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	src := string(data)
	assert.Contains(t, src, "helloVersionInfo")
	assert.Contains(t, src, `Version:     "1.2.0"`)
	assert.Contains(t, src, "BuildNumber: 0")
}

func TestGenerate_Idempotent(t *testing.T) {
	repo := t.TempDir()
	out := filepath.Join(t.TempDir(), "version_info.go")
	args := []string{"generate", "--repo=" + repo, "--version=1.2.0", "--component=hello", "--output=" + out}

	_, _, err := execute(t, args...)
	require.NoError(t, err)
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	_, _, err = execute(t, args...)
	require.NoError(t, err)
	second, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_UnwritableOutputFails(t *testing.T) {
	_, _, err := execute(t, "generate",
		"--repo="+t.TempDir(),
		"--version=1.2.0",
		"--output="+filepath.Join(t.TempDir(), "missing", "version_info.go"),
	)
	assert.Error(t, err)
}

func TestShow_JSON(t *testing.T) {
	stdout, _, err := execute(t, "show",
		"--repo="+t.TempDir(),
		"--version=1.2.0",
		"--component=hello",
		"--format=json",
	)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "hello", got["component"])
	assert.Equal(t, "1.2.0", got["version"])
	assert.Equal(t, float64(0), got["build_number"])
	assert.Equal(t, "", got["commit"])
	assert.Equal(t, false, got["dirty"])
}

func TestShow_Text(t *testing.T) {
	stdout, _, err := execute(t, "show",
		"--repo="+t.TempDir(),
		"--version=1.2.0",
		"--component=hello",
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "hello version 1.2.0", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "build: 0"), "got %q", lines[1])
	assert.Equal(t, "git tag: ", lines[2])
}

func TestInvalidFormatRejected(t *testing.T) {
	_, _, err := execute(t, "show", "--repo="+t.TempDir(), "--format=xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestVersion_PrintsOwnChain(t *testing.T) {
	stdout, _, err := execute(t, "version", "--repo="+t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "versionstring version dev\n", stdout)
}

func TestVersion_Verbose(t *testing.T) {
	stdout, _, err := execute(t, "version", "--repo="+t.TempDir(), "--verbose")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "versionstring version dev", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "build: "), "got %q", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "git tag: "), "got %q", lines[2])
}

func TestVersion_JSON(t *testing.T) {
	stdout, _, err := execute(t, "version", "--repo="+t.TempDir(), "--format=json")
	require.NoError(t, err)

	var got []versionstring.Descriptor
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.NotEmpty(t, got)
	assert.Equal(t, "versionstring", got[0].Component)
}
