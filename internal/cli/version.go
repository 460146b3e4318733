package cli

import (
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhekkel/versionstring"
	"github.com/mhekkel/versionstring/internal/output"
)

// Build-time variables injected via ldflags:
//
//	-X github.com/mhekkel/versionstring/internal/cli.version=1.0.0
//	-X github.com/mhekkel/versionstring/internal/cli.commit=abc1234
//	-X github.com/mhekkel/versionstring/internal/cli.date=2024-01-01T00:00:00Z
//	-X github.com/mhekkel/versionstring/internal/cli.buildNumber=4
//	-X github.com/mhekkel/versionstring/internal/cli.dirty=false
var (
	version     = "dev"
	commit      = "none"
	date        = "unknown"
	buildNumber = "0"
	dirty       = "false"
)

// The generator registers its own descriptor the same way generated code does,
// so its version command exercises the chain path it produces for consumers.
func init() {
	if bi, ok := debug.ReadBuildInfo(); ok {
		applyBuildInfo(bi)
	}
	versionstring.Register(selfDescriptor())
}

// applyBuildInfo overwrites package vars from bi only when they still hold
// their default (ldflags-unset) values. ldflags always win.
func applyBuildInfo(bi *debug.BuildInfo) {
	if version == "dev" {
		v := bi.Main.Version
		if v != "" && v != "(devel)" {
			version = strings.TrimPrefix(v, "v")
		}
	}

	var revision, vcsTime, vcsModified string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			vcsTime = s.Value
		case "vcs.modified":
			vcsModified = s.Value
		}
	}

	if commit == "none" && revision != "" {
		if len(revision) > 7 {
			revision = revision[:7]
		}
		commit = revision
	}

	if date == "unknown" && vcsTime != "" {
		date = vcsTime
	}

	if dirty == "false" && vcsModified == "true" {
		dirty = "true"
	}
}

// selfDescriptor assembles the generator's own descriptor from the package vars.
func selfDescriptor() versionstring.Descriptor {
	n, err := strconv.Atoi(buildNumber)
	if err != nil {
		n = 0
	}
	return versionstring.Descriptor{
		Component:   "versionstring",
		Version:     version,
		BuildNumber: n,
		BuildDate:   date,
		Commit:      commit,
		Dirty:       dirty == "true",
	}
}

func newVersionCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version chain of this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output.Format(d.cfg.Format) == output.FormatJSON {
				return output.Write(cmd.OutOrStdout(), output.FormatJSON, versionstring.Default().All())
			}
			return versionstring.Write(cmd.OutOrStdout(), d.cfg.Verbose)
		},
	}
}
