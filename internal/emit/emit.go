// Package emit renders a descriptor into a generated Go source file whose
// package-level initializer registers the descriptor into the process-wide
// registry at link time. Rendering is deterministic: identical inputs produce
// byte-identical output, so incremental builds can skip recompilation.
package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
	"unicode"

	"github.com/mhekkel/versionstring"
)

// DefaultImportPath is the runtime package the generated file imports.
const DefaultImportPath = "github.com/mhekkel/versionstring"

// Params parameterize one rendered file.
type Params struct {
	// Package is the package clause of the generated file.
	Package string
	// Label names the component; the embedded identifiers derive from it so
	// that multiple components linked into one binary cannot collide.
	Label string
	// ImportPath overrides the runtime package import; empty means
	// DefaultImportPath.
	ImportPath string
	// Descriptor is the extracted build provenance to embed.
	Descriptor versionstring.Descriptor
}

var fileTemplate = template.Must(template.New("versionfile").Parse(
	`// Code generated by versionstring. DO NOT EDIT.

package {{.Package}}

import versionstring "{{.ImportPath}}"

// {{.Ident}}VersionInfo describes the build of component "{{.Label}}".
var {{.Ident}}VersionInfo = versionstring.Descriptor{
	Component:   {{printf "%q" .Descriptor.Component}},
	Version:     {{printf "%q" .Descriptor.Version}},
	BuildNumber: {{.Descriptor.BuildNumber}},
	BuildDate:   {{printf "%q" .Descriptor.BuildDate}},
	Commit:      {{printf "%q" .Descriptor.Commit}},
	Dirty:       {{.Descriptor.Dirty}},
}

// Registration runs during package initialization, before main. The binary
// must import this package for the registration to be linked at all.
var _ = versionstring.Register({{.Ident}}VersionInfo)
`))

// Render produces the generated file contents for p. Output depends only on p,
// never on any previously generated file.
func Render(p Params) ([]byte, error) {
	if p.Package == "" {
		return nil, fmt.Errorf("emit: package name is required")
	}
	if !validIdent(p.Package) {
		return nil, fmt.Errorf("emit: invalid package name %q", p.Package)
	}
	importPath := p.ImportPath
	if importPath == "" {
		importPath = DefaultImportPath
	}

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package    string
		Label      string
		ImportPath string
		Ident      string
		Descriptor versionstring.Descriptor
	}{
		Package:    p.Package,
		Label:      p.Label,
		ImportPath: importPath,
		Ident:      Ident(p.Label),
		Descriptor: p.Descriptor,
	})
	if err != nil {
		return nil, fmt.Errorf("emit: rendering template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("emit: formatting generated source: %w", err)
	}
	return src, nil
}

// WriteFile writes data to path. When the file already holds exactly data the
// write is skipped so the mtime stays put and incremental build systems do not
// recompile dependents. A failed write is a hard error: a missing generated
// file breaks compilation downstream.
func WriteFile(path string, data []byte) error {
	if prev, err := os.ReadFile(path); err == nil && bytes.Equal(prev, data) {
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing version file: %w", err)
	}
	return nil
}

// Ident derives a Go identifier prefix from a component label: non-alphanumeric
// runes split words, words after the first are title-cased, and a leading digit
// gets a "v" prefix. An empty or fully invalid label yields "component".
func Ident(label string) string {
	var b strings.Builder
	newWord := false
	for _, r := range label {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			newWord = b.Len() > 0
			continue
		}
		if newWord {
			b.WriteRune(unicode.ToUpper(r))
			newWord = false
		} else {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		return "component"
	}
	if unicode.IsDigit(rune(s[0])) {
		s = "v" + s
	}
	return s
}

// validIdent reports whether s is a plausible Go package identifier.
func validIdent(s string) bool {
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return s != ""
}
