package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhekkel/versionstring/internal/config"
)

// newTestFlags registers all config flags on a fresh FlagSet, then parses args.
func newTestFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(newTestFlags(t, "--repo="+t.TempDir()))
	require.NoError(t, err)

	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.Version)
	assert.Empty(t, cfg.Component)
	assert.Equal(t, "build", cfg.Marker)
	assert.Equal(t, "main", cfg.Package)
	assert.Empty(t, cfg.Output)
	assert.Empty(t, cfg.ImportPath)
	assert.Equal(t, "text", cfg.Format)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := config.Load(newTestFlags(t,
		"--repo="+t.TempDir(),
		"--version=1.2.0",
		"--component=hello",
		"--marker=release",
		"--package=hello",
		"--output=hello_version.go",
		"--import-path=example.com/fork",
		"--format=json",
		"--verbose",
	))
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.Equal(t, "1.2.0", cfg.Version)
	assert.Equal(t, "hello", cfg.Component)
	assert.Equal(t, "release", cfg.Marker)
	assert.Equal(t, "hello", cfg.Package)
	assert.Equal(t, "hello_version.go", cfg.Output)
	assert.Equal(t, "example.com/fork", cfg.ImportPath)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_RepoConfigFile(t *testing.T) {
	repo := t.TempDir()
	cfgFile := filepath.Join(repo, ".versionstring.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("version: 9.9.9\nmarker: release\ncomponent: mylib\n"), 0o600))

	cfg, err := config.Load(newTestFlags(t, "--repo="+repo))
	require.NoError(t, err)

	assert.Equal(t, cfgFile, cfg.ConfigFile)
	assert.Equal(t, "9.9.9", cfg.Version)
	assert.Equal(t, "release", cfg.Marker)
	assert.Equal(t, "mylib", cfg.Component)
	// Unset keys keep their flag defaults.
	assert.Equal(t, "main", cfg.Package)
}

func TestLoad_FlagOverridesConfigFile(t *testing.T) {
	repo := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(repo, ".versionstring.yaml"), []byte("marker: filemarker\n"), 0o600))

	cfg, err := config.Load(newTestFlags(t, "--repo="+repo, "--marker=flagmarker"))
	require.NoError(t, err)

	assert.Equal(t, "flagmarker", cfg.Marker)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("version: 2.0.0\n"), 0o600))

	cfg, err := config.Load(newTestFlags(t, "--repo="+t.TempDir(), "--config="+cfgFile))
	require.NoError(t, err)

	assert.Equal(t, cfgFile, cfg.ConfigFile)
	assert.Equal(t, "2.0.0", cfg.Version)
}

func TestLoad_MissingConfigFileTolerated(t *testing.T) {
	cfg, err := config.Load(newTestFlags(t, "--repo="+t.TempDir(), "--config=/nonexistent/config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "build", cfg.Marker)
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	repo := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(repo, ".versionstring.yaml"), []byte(":\n\t- not yaml"), 0o600))

	_, err := config.Load(newTestFlags(t, "--repo="+repo))
	assert.Error(t, err)
}
