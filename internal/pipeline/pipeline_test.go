package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protcalc-core/seq"
	"protcalc/internal/resolve"
	"protcalc/internal/uniprot"
)

const refSeq = "GIVEQCCTSICSLYQLENYCNFVNQHLCGSHLVEALYLVCGERGFFYTPKT" // 51 residues

type fakeResolver struct {
	calls int
	acc   string
	err   error
}

func (f *fakeResolver) Resolve(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.acc, f.err
}

type fakeFetcher struct {
	seq string
	err error
}

func (f *fakeFetcher) FetchSequence(_ context.Context, _ string) (string, error) {
	return f.seq, f.err
}

func newPipeline(strict bool) (*Pipeline, *fakeResolver) {
	r := &fakeResolver{acc: "P01308"}
	return &Pipeline{
		Resolver: r,
		Fetcher:  &fakeFetcher{seq: refSeq},
		Strict:   strict,
	}, r
}

func TestRunPlain(t *testing.T) {
	p, _ := newPipeline(false)
	res, err := p.Run(context.Background(), Request{Identifier: "Insulin"})
	require.NoError(t, err)

	assert.Equal(t, "P01308", res.Accession)
	assert.Equal(t, refSeq, res.Sequence)
	require.NotNil(t, res.Report)
	assert.Equal(t, 51, res.Report.Length)

	// Skipped optional stages leave exactly one summary entry.
	require.Len(t, res.Lengths, 1)
	assert.Equal(t, StageLength{Label: "original", Length: 51}, res.Lengths[0])
	assert.Empty(t, res.Warnings)
}

func TestRunTruncateAndTag(t *testing.T) {
	p, _ := newPipeline(false)
	res, err := p.Run(context.Background(), Request{
		Identifier: "P01308",
		Range:      "1-21",
		Tag:        "10his",
	})
	require.NoError(t, err)

	assert.Equal(t, "HHHHHHHHHH"+refSeq[:21], res.Sequence)
	require.Len(t, res.Lengths, 3)
	assert.Equal(t, StageLength{"original", 51}, res.Lengths[0])
	assert.Equal(t, StageLength{"truncated", 21}, res.Lengths[1])
	assert.Equal(t, StageLength{"tagged", 31}, res.Lengths[2])
	assert.Equal(t, 31, res.Report.Length)
}

func TestRunTagIncreasesMolecularWeight(t *testing.T) {
	p, _ := newPipeline(false)
	bare, err := p.Run(context.Background(), Request{Identifier: "P01308"})
	require.NoError(t, err)
	tagged, err := p.Run(context.Background(), Request{Identifier: "P01308", Tag: "10his"})
	require.NoError(t, err)

	assert.Equal(t, bare.Report.Length+10, tagged.Report.Length)
	assert.Greater(t, tagged.Report.MolecularWeightKDa, bare.Report.MolecularWeightKDa)
}

func TestRunInvalidRangeFailsOpen(t *testing.T) {
	p, _ := newPipeline(false)
	res, err := p.Run(context.Background(), Request{Identifier: "P01308", Range: "10-5"})
	require.NoError(t, err)

	// Truncation skipped: computation ran on the full sequence.
	assert.Equal(t, refSeq, res.Sequence)
	assert.Equal(t, 51, res.Report.Length)
	require.Len(t, res.Lengths, 1)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "10-5")
}

func TestRunInvalidRangeStrict(t *testing.T) {
	p, _ := newPipeline(true)
	_, err := p.Run(context.Background(), Request{Identifier: "P01308", Range: "10-5"})
	require.Error(t, err)
	assert.ErrorIs(t, err, seq.ErrInvalidRange)
}

func TestRunOutOfBoundsRangeFailsOpen(t *testing.T) {
	p, _ := newPipeline(false)
	res, err := p.Run(context.Background(), Request{Identifier: "P01308", Range: "1-500"})
	require.NoError(t, err)
	assert.Equal(t, 51, res.Report.Length)
	require.Len(t, res.Warnings, 1)
}

func TestRunUnknownTagFailsOpen(t *testing.T) {
	p, _ := newPipeline(false)
	res, err := p.Run(context.Background(), Request{Identifier: "P01308", Tag: "FLAG"})
	require.NoError(t, err)
	assert.Equal(t, refSeq, res.Sequence)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "FLAG")
}

func TestRunUnknownTagStrict(t *testing.T) {
	p, _ := newPipeline(true)
	_, err := p.Run(context.Background(), Request{Identifier: "P01308", Tag: "FLAG"})
	assert.ErrorIs(t, err, seq.ErrUnknownTag)
}

func TestRunResolveFailureAborts(t *testing.T) {
	p := &Pipeline{
		Resolver: &fakeResolver{err: resolve.ErrNotResolved},
		Fetcher:  &fakeFetcher{seq: refSeq},
	}
	res, err := p.Run(context.Background(), Request{Identifier: "nothing"})
	assert.ErrorIs(t, err, resolve.ErrNotResolved)
	assert.Nil(t, res.Report, "no report on a failed run")
}

func TestRunFetchFailureAborts(t *testing.T) {
	p := &Pipeline{
		Resolver: &fakeResolver{acc: "P01308"},
		Fetcher:  &fakeFetcher{err: uniprot.ErrSequenceNotFound},
	}
	res, err := p.Run(context.Background(), Request{Identifier: "P01308"})
	assert.ErrorIs(t, err, uniprot.ErrSequenceNotFound)
	assert.Nil(t, res.Report)
}

func TestRunBadSequenceContentAborts(t *testing.T) {
	p := &Pipeline{
		Resolver: &fakeResolver{acc: "P01308"},
		Fetcher:  &fakeFetcher{seq: "MKTX*AYI"},
	}
	res, err := p.Run(context.Background(), Request{Identifier: "P01308"})
	require.Error(t, err)
	assert.Nil(t, res.Report)
}
