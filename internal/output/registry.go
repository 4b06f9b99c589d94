// Package output renders a finished run in one of the supported formats.
// Writers register themselves by format name; the CLI dispatches through
// Write so adding a format stays local to one file.
package output

import (
	"fmt"
	"io"
	"sort"

	"protcalc/pkg/api"
)

// Format names accepted on the command line.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTSV  = "tsv"
)

// Func renders one report. header only matters for tabular formats.
type Func func(w io.Writer, rep api.ReportV1, header bool) error

var writers = map[string]Func{}

// Register installs a writer for a format (last registration wins).
func Register(format string, fn Func) { writers[format] = fn }

// Known reports whether a writer exists for format.
func Known(format string) bool {
	_, ok := writers[format]
	return ok
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(writers))
	for f := range writers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write renders rep in the named format.
func Write(format string, w io.Writer, rep api.ReportV1, header bool) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, rep, header)
}
