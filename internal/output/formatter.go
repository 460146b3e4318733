// Package output dispatches command results to the requested output format.
package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// Format is the output format requested by the user.
type Format string

// Output format constants supported by the --format flag.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	return f == FormatText || f == FormatJSON
}

// TextFormattable results know how to render themselves as plain text.
type TextFormattable interface {
	WriteText(w io.Writer) error
}

// Write dispatches a command result to the appropriate formatter. JSON uses
// json.Encoder with indentation; text requires the result to implement
// TextFormattable.
func Write(w io.Writer, format Format, result any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatText:
		tf, ok := result.(TextFormattable)
		if !ok {
			return fmt.Errorf("result type %T does not support text output", result)
		}
		return tf.WriteText(w)
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}
