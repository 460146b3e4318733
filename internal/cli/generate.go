package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhekkel/versionstring/internal/emit"
	"github.com/mhekkel/versionstring/internal/extract"
)

// defaultOutput is the generated filename when --output is not given.
const defaultOutput = "version_info.go"

func newGenerateCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write the generated version file for a component",
		Long: `Generate extracts build provenance from the repository and writes the
component's generated Go file. Extraction degrades rather than fails: outside a
repository, or without git, the file is still written with zeroed build fields.
Only failure to write the output file is an error, because a missing generated
file breaks compilation of dependents.

Regeneration is idempotent: unchanged repository state produces byte-identical
output and the file's mtime is left untouched, so it is safe to run on every
build.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			desc := extract.Extract(cmd.Context(), d.newGit(), d.logger, extractOptions(d.cfg))

			data, err := emit.Render(emit.Params{
				Package:    d.cfg.Package,
				Label:      d.cfg.Component,
				ImportPath: d.cfg.ImportPath,
				Descriptor: desc,
			})
			if err != nil {
				return fmt.Errorf("rendering version file: %w", err)
			}

			out := d.cfg.Output
			if out == "" {
				out = defaultOutput
			}
			if err := emit.WriteFile(out, data); err != nil {
				return err
			}

			d.logger.Debug("version file written",
				"path", out,
				"component", desc.Name(),
				"version", desc.Version,
				"build", desc.BuildNumber,
				"commit", desc.Commit,
				"dirty", desc.Dirty,
			)
			return nil
		},
	}
}
