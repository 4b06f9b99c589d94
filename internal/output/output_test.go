package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protcalc/internal/pipeline"
	"protcalc/pkg/api"
	"protcalc-core/protparam"
)

func sample() api.ReportV1 {
	return api.ReportV1{
		Identifier: "Insulin",
		Accession:  "P01308",
		Lengths: []api.StageLengthV1{
			{Label: "original", Length: 110},
			{Label: "truncated", Length: 51},
		},
		MolecularWeightKDa:    5.7956,
		IsoelectricPoint:      5.39,
		ExtinctionCoefficient: 6335,
		ExtinctionReduced:     5960,
		InstabilityIndex:      27.15,
		Gravy:                 0.218,
	}
}

func TestTSVHeaderStable(t *testing.T) {
	const want = "identifier\taccession\tlength\tmolecular_weight_kda\tisoelectric_point\textinction_coefficient\tinstability_index\tgravy"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
}

func TestFormatsRegistered(t *testing.T) {
	assert.Equal(t, []string{FormatJSON, FormatText, FormatTSV}, Formats())
	assert.True(t, Known(FormatText))
	assert.False(t, Known("fasta"))
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write("xml", &bytes.Buffer{}, sample(), true)
	require.Error(t, err)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(FormatText, &buf, sample(), true))
	out := buf.String()

	assert.Contains(t, out, "P01308")
	assert.Contains(t, out, "5.80 kDa")
	assert.Contains(t, out, "5.39")
	assert.Contains(t, out, "6335")
	assert.Contains(t, out, "original length")
	assert.Contains(t, out, "truncated length")
}

func TestWriteTextWarnings(t *testing.T) {
	rep := sample()
	rep.Warnings = []string{`unknown tag "FLAG", sequence left untagged`}
	var buf bytes.Buffer
	require.NoError(t, Write(FormatText, &buf, rep, true))
	assert.Contains(t, buf.String(), "warning: unknown tag")
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(FormatTSV, &buf, sample(), true))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, TSVHeader, lines[0])
	// Final stage length is reported.
	assert.Contains(t, lines[1], "P01308\t51\t")

	buf.Reset()
	require.NoError(t, Write(FormatTSV, &buf, sample(), false))
	assert.NotContains(t, buf.String(), "identifier\t")
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(FormatJSON, &buf, sample(), true))

	var got api.ReportV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample(), got)
}

func TestToAPIReport(t *testing.T) {
	res := pipeline.Result{
		Accession: "P01308",
		Sequence:  "GIVEQ",
		Lengths:   []pipeline.StageLength{{Label: "original", Length: 5}},
		Warnings:  []string{"w"},
		Report: &protparam.Report{
			Length:             5,
			MolecularWeightKDa: 0.5,
			IsoelectricPoint:   4.0,
			ExtinctionReduced:  0,
			ExtinctionCystines: 0,
			InstabilityIndex:   10,
			Gravy:              0.1,
		},
	}

	v := ToAPIReport("insulin fragment", res, false)
	assert.Equal(t, "insulin fragment", v.Identifier)
	assert.Equal(t, "P01308", v.Accession)
	assert.Empty(t, v.Sequence)
	assert.Equal(t, []api.StageLengthV1{{Label: "original", Length: 5}}, v.Lengths)
	assert.Equal(t, 0.5, v.MolecularWeightKDa)

	v = ToAPIReport("insulin fragment", res, true)
	assert.Equal(t, "GIVEQ", v.Sequence)
}
