// Package pipeline composes one protein-property run: resolve the
// identifier, fetch the sequence, then the optional truncation and tag
// stages, and finally the property computation. Stages run strictly in
// order; each stage's output is the next stage's only input. A run either
// ends with a report or with a single stage-keyed error.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"protcalc-core/protparam"
	"protcalc-core/seq"
)

// Stage labels used in errors and the length summary.
const (
	StageResolve  = "resolve"
	StageFetch    = "fetch"
	StageTruncate = "truncate"
	StageTag      = "tag"
	StageCompute  = "compute"
)

// Request is the immutable input of one run.
type Request struct {
	Identifier string // accession or free-text name
	Range      string // truncation text, optionally empty
	Tag        string // tag name or "none"
}

// StageLength records the sequence length after a named stage.
type StageLength struct {
	Label  string
	Length int
}

// Result is the terminal artifact of a successful run.
type Result struct {
	Accession string
	Sequence  string
	Lengths   []StageLength
	Report    *protparam.Report
	Warnings  []string
}

// Resolver maps identifier text to an accession.
type Resolver interface {
	Resolve(ctx context.Context, text string) (string, error)
}

// Fetcher retrieves the raw sequence for an accession.
type Fetcher interface {
	FetchSequence(ctx context.Context, accession string) (string, error)
}

// Pipeline wires the collaborators of a run. Strict turns the two
// fail-open degradations (unusable range, unknown tag) into fatal errors;
// the default lenient mode records a warning and continues on the
// unmodified sequence.
type Pipeline struct {
	Resolver Resolver
	Fetcher  Fetcher
	Strict   bool
	Log      *slog.Logger
}

// Run executes the stage chain for req. No stage is retried; the first
// fatal error aborts with no report.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	log := p.Log
	if log == nil {
		log = slog.Default()
	}
	var res Result

	acc, err := p.Resolver.Resolve(ctx, req.Identifier)
	if err != nil {
		return res, fmt.Errorf("%s: %w", StageResolve, err)
	}
	res.Accession = acc
	log.Info("identifier resolved", "identifier", req.Identifier, "accession", acc)

	s, err := p.Fetcher.FetchSequence(ctx, acc)
	if err != nil {
		return res, fmt.Errorf("%s: %w", StageFetch, err)
	}
	s, err = seq.Validate(s)
	if err != nil {
		return res, fmt.Errorf("%s: %w", StageFetch, err)
	}
	res.Lengths = append(res.Lengths, StageLength{Label: "original", Length: len(s)})
	log.Info("sequence fetched", "accession", acc, "length", len(s))

	if req.Range != "" {
		s, err = p.truncate(&res, s, req.Range, log)
		if err != nil {
			return res, err
		}
	}

	if req.Tag != "" && req.Tag != seq.TagNone {
		s, err = p.fuse(&res, s, req.Tag, log)
		if err != nil {
			return res, err
		}
	}

	res.Sequence = s
	rep, err := protparam.Compute(s)
	if err != nil {
		return res, fmt.Errorf("%s: %w", StageCompute, err)
	}
	res.Report = rep
	return res, nil
}

// truncate applies the optional truncation stage. Parse failures and
// out-of-bounds windows degrade to the untruncated sequence unless the
// pipeline is strict.
func (p *Pipeline) truncate(res *Result, s, rangeText string, log *slog.Logger) (string, error) {
	r, ok, err := seq.ParseRange(rangeText)
	if err != nil {
		return p.failOpen(res, s, StageTruncate, log,
			fmt.Errorf("%s: %w", StageTruncate, err),
			fmt.Sprintf("unusable truncation range %q, sequence left untruncated", rangeText))
	}
	if !ok {
		log.Debug("no truncation range in input", "text", rangeText)
		return s, nil
	}
	out, err := seq.Truncate(s, r)
	if err != nil {
		return p.failOpen(res, s, StageTruncate, log,
			fmt.Errorf("%s: %w", StageTruncate, err),
			fmt.Sprintf("truncation range %s does not fit sequence of length %d, sequence left untruncated", r, len(s)))
	}
	res.Lengths = append(res.Lengths, StageLength{Label: "truncated", Length: len(out)})
	log.Info("sequence truncated", "range", r.String(), "length", len(out))
	return out, nil
}

// fuse applies the optional tag stage. Unknown tags degrade to the
// untagged sequence unless the pipeline is strict.
func (p *Pipeline) fuse(res *Result, s, tag string, log *slog.Logger) (string, error) {
	out, err := seq.Fuse(s, tag)
	if err != nil {
		return p.failOpen(res, s, StageTag, log,
			fmt.Errorf("%s: %w", StageTag, err),
			fmt.Sprintf("unknown tag %q, sequence left untagged", tag))
	}
	res.Lengths = append(res.Lengths, StageLength{Label: "tagged", Length: len(out)})
	log.Info("tag fused", "tag", tag, "length", len(out))
	return out, nil
}

// failOpen either aborts (strict) or records the warning and hands the
// unmodified sequence to the next stage.
func (p *Pipeline) failOpen(res *Result, s, stage string, log *slog.Logger, err error, warning string) (string, error) {
	if p.Strict {
		return s, err
	}
	res.Warnings = append(res.Warnings, warning)
	log.Warn(warning, "stage", stage)
	return s, nil
}
