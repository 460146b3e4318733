package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Load resolves the configuration from flags layered over the config file.
// When no --config is given, <repo>/.versionstring.yaml is consulted so build
// scripts can invoke the generator with no arguments. A missing config file is
// not an error; a malformed one is.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	repo := v.GetString("repo")
	cfgFile := v.GetString("config")
	if cfgFile == "" {
		cfgFile = filepath.Join(repo, ".versionstring.yaml")
	}
	v.SetConfigFile(cfgFile)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	}

	return &Config{
		ConfigFile: cfgFile,
		Verbose:    v.GetBool("verbose"),
		RepoRoot:   v.GetString("repo"),
		Version:    v.GetString("version"),
		Component:  v.GetString("component"),
		Marker:     v.GetString("marker"),
		Package:    v.GetString("package"),
		Output:     v.GetString("output"),
		ImportPath: v.GetString("import-path"),
		Format:     v.GetString("format"),
	}, nil
}
