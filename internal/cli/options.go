// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"protcalc-core/seq"
	"protcalc/internal/cliutil"
	"protcalc/internal/output"
	"protcalc/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Pipeline input
	Protein string
	Range   string
	Tag     string

	// Behavior
	Strict  bool
	Timeout float64 // seconds; 0 = use configured default
	EnvFile string

	// Output
	Output string
	Header bool // true unless --no-header
	Seq    bool // include the final sequence in the report
	Quiet  bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: protein physicochemical property calculator

Fetches a protein sequence from UniProtKB by accession or free-text name,
optionally truncates it and fuses an N-terminal tag, then reports molecular
weight, isoelectric point, extinction coefficient, instability index, and
GRAVY.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Pipeline input
	fs.StringVar(&opt.Protein, "protein", "", "UniProt accession or protein name (e.g. P01308 or Insulin) [*]")
	fs.StringVar(&opt.Range, "range", "", "truncation range, 1-based inclusive (e.g. 38-208) [none]")
	fs.StringVar(&opt.Tag, "tag", seq.TagNone, "N-terminal tag: "+strings.Join(seq.TagNames(), " | ")+" ["+seq.TagNone+"]")

	// Behavior
	fs.BoolVar(&opt.Strict, "strict", false, "treat unusable range/tag input as fatal instead of skipping [false]")
	fs.Float64Var(&opt.Timeout, "timeout", 0, "HTTP timeout in seconds (0 = configured default) [0]")
	fs.StringVar(&opt.EnvFile, "env-file", "", "path to a .env file with PROTCALC_* settings [none]")

	// Output
	fs.StringVar(&opt.Output, "output", output.FormatText, "output format: "+strings.Join(output.Formats(), " | ")+" ["+output.FormatText+"]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in TSV output [false]")
	fs.BoolVar(&opt.Seq, "seq", false, "include the final sequence in the report [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress logging [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	if opt.Protein == "" && len(posArgs) > 0 {
		// Allow the identifier as positional arguments, joined into one query.
		opt.Protein = strings.TrimSpace(strings.Join(posArgs, " "))
	}
	if opt.Protein == "" {
		return opt, errors.New("missing protein identifier: use --protein or a positional argument")
	}
	if !output.Known(opt.Output) {
		return opt, fmt.Errorf("invalid --output %q (valid: %s)", opt.Output, strings.Join(output.Formats(), ", "))
	}
	if opt.Timeout < 0 {
		return opt, errors.New("--timeout must be >= 0")
	}
	return opt, nil
}
