package config

import "github.com/spf13/pflag"

// Config holds the fully-resolved settings for one generator invocation.
// Values come from flags, layered over a per-repository config file, layered
// over defaults.
type Config struct {
	// ConfigFile is the resolved path of the config file that was consulted.
	ConfigFile string

	// Verbose enables debug-level logging, and verbose version output for the
	// version command.
	Verbose bool

	// RepoRoot is the repository (or any directory inside it) to inspect.
	RepoRoot string

	// Version is the declared semantic version embedded verbatim.
	Version string

	// Component labels the generated descriptor and derives its identifiers.
	Component string

	// Marker is the annotated tag name used as the build-count zero point.
	Marker string

	// Package is the package clause of the generated file.
	Package string

	// Output is the path of the generated file; empty derives a default.
	Output string

	// ImportPath overrides the runtime package import in generated code.
	ImportPath string

	// Format selects show's output format: text or json.
	Format string
}

// RegisterFlags registers every setting as a flag. Flag values take precedence
// over config-file values with the same key.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (default: <repo>/.versionstring.yaml)")
	flags.BoolP("verbose", "v", false, "enable verbose logging and verbose version output")
	flags.StringP("repo", "C", ".", "repository root to inspect")
	flags.String("version", "", "declared semantic version to embed (e.g. 1.2.0)")
	flags.String("component", "", "component label; empty falls back to the program name at report time")
	flags.String("marker", "build", "annotated tag used as the zero point for build counting")
	flags.String("package", "main", "package clause of the generated file")
	flags.StringP("output", "o", "", "path of the generated file (default: version_info.go)")
	flags.String("import-path", "", "import path of the runtime package in generated code")
	flags.String("format", "text", "output format for show: text, json")
}
