// internal/output/convert.go
package output

import (
	"protcalc/internal/pipeline"
	"protcalc/pkg/api"
)

// ToAPIReport converts a pipeline result to the stable wire schema (v1).
// includeSeq controls whether the final sequence rides along.
func ToAPIReport(identifier string, res pipeline.Result, includeSeq bool) api.ReportV1 {
	v := api.ReportV1{
		Identifier: identifier,
		Accession:  res.Accession,
		Warnings:   append([]string(nil), res.Warnings...),
	}
	for _, l := range res.Lengths {
		v.Lengths = append(v.Lengths, api.StageLengthV1{Label: l.Label, Length: l.Length})
	}
	if includeSeq {
		v.Sequence = res.Sequence
	}
	if rep := res.Report; rep != nil {
		v.MolecularWeightKDa = rep.MolecularWeightKDa
		v.IsoelectricPoint = rep.IsoelectricPoint
		v.ExtinctionCoefficient = rep.ExtinctionCystines
		v.ExtinctionReduced = rep.ExtinctionReduced
		v.InstabilityIndex = rep.InstabilityIndex
		v.Gravy = rep.Gravy
		v.Composition = rep.Composition
	}
	return v
}
