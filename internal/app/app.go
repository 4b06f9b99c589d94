// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"protcalc/internal/cli"
	"protcalc/internal/config"
	"protcalc/internal/log"
	"protcalc/internal/output"
	"protcalc/internal/pipeline"
	"protcalc/internal/resolve"
	"protcalc/internal/uniprot"
	"protcalc/internal/version"
)

// RunContext wires configuration, the UniProt client, and the pipeline,
// then renders the report. Exit codes: 0 success, 1 failed run, 2 usage or
// configuration error, 3 output error.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("protcalc")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); output.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "protcalc version %s\n", version.Version)
		if e := outw.Flush(); output.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	timeout := cfg.Timeout()
	if opts.Timeout > 0 {
		timeout = time.Duration(opts.Timeout * float64(time.Second))
	}

	level := cfg.LogLevel
	if opts.Quiet {
		level = "ERROR"
	}
	logger := log.New(stderr, level, cfg.LogFormat)

	client := uniprot.New(cfg.SearchURL, cfg.EntryURL, cfg.FastaURL, &http.Client{Timeout: timeout})
	pl := &pipeline.Pipeline{
		Resolver: resolve.New(client),
		Fetcher:  client,
		Strict:   cfg.Strict || opts.Strict,
		Log:      logger,
	}

	res, err := pl.Run(parent, pipeline.Request{
		Identifier: opts.Protein,
		Range:      opts.Range,
		Tag:        opts.Tag,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	rep := output.ToAPIReport(opts.Protein, res, opts.Seq)
	if err := output.Write(opts.Output, outw, rep, opts.Header); output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if e := outw.Flush(); output.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
