package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mhekkel/versionstring"
	"github.com/mhekkel/versionstring/internal/extract"
	"github.com/mhekkel/versionstring/internal/output"
)

// showResult wraps a descriptor for output dispatch.
type showResult struct {
	versionstring.Descriptor
}

// WriteText writes the verbose three-line block.
func (r showResult) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, versionstring.FormatVerbose(r.Descriptor)+"\n")
	return err
}

func newShowCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Extract and print the descriptor without writing a file",
		Long: `Show runs the same extraction as generate and prints the resulting
descriptor to stdout, as text or JSON. Useful for checking what a build would
embed before wiring the generator into a build script.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			desc := extract.Extract(cmd.Context(), d.newGit(), d.logger, extractOptions(d.cfg))
			return output.Write(cmd.OutOrStdout(), output.Format(d.cfg.Format), showResult{desc})
		},
	}
}
