package versionstring

import (
	"fmt"
	"io"
	"strings"
)

// FormatLine renders the one-line form: "<name> version <version>".
func FormatLine(d Descriptor) string {
	return fmt.Sprintf("%s version %s", d.Name(), d.Version)
}

// FormatVerbose renders the three-line form: the FormatLine output, the build
// number with the build date, and the built commit. A trailing "*" on the
// commit line marks a dirty working tree at generation time.
func FormatVerbose(d Descriptor) string {
	var b strings.Builder
	b.WriteString(FormatLine(d))
	fmt.Fprintf(&b, "\nbuild: %d %s", d.BuildNumber, d.BuildDate)
	fmt.Fprintf(&b, "\ngit tag: %s", d.Commit)
	if d.Dirty {
		b.WriteByte('*')
	}
	return b.String()
}

// FormatChain renders every descriptor in order, separated by lines containing
// a single "-". An empty slice renders as an empty string.
func FormatChain(descs []Descriptor, verbose bool) string {
	blocks := make([]string, len(descs))
	for i, d := range descs {
		if verbose {
			blocks[i] = FormatVerbose(d)
		} else {
			blocks[i] = FormatLine(d)
		}
	}
	return strings.Join(blocks, "\n-\n")
}

// Write writes the chain of every registered descriptor to w, followed by a
// trailing newline. A write error is returned to the caller unmodified. An
// empty registry writes nothing.
func (r *Registry) Write(w io.Writer, verbose bool) error {
	descs := r.All()
	if len(descs) == 0 {
		return nil
	}
	_, err := io.WriteString(w, FormatChain(descs, verbose)+"\n")
	return err
}

// Write writes the default registry's chain to w.
func Write(w io.Writer, verbose bool) error {
	return Default().Write(w, verbose)
}
