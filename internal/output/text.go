// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"protcalc/pkg/api"
)

func init() { Register(FormatText, writeText) }

// writeText renders the human-readable report: the five properties, then
// the per-stage length summary, then any fail-open warnings.
func writeText(w io.Writer, rep api.ReportV1, _ bool) error {
	if _, err := fmt.Fprintf(w, "%-20s %s\n", "accession", rep.Accession); err != nil {
		return err
	}
	rows := []struct {
		label string
		value string
	}{
		{"molecular weight", fmt.Sprintf("%.2f kDa", rep.MolecularWeightKDa)},
		{"isoelectric point", fmt.Sprintf("%.2f", rep.IsoelectricPoint)},
		{"extinction coeff.", fmt.Sprintf("%d /M/cm (disulfide), %d /M/cm (reduced)", rep.ExtinctionCoefficient, rep.ExtinctionReduced)},
		{"instability index", fmt.Sprintf("%.2f", rep.InstabilityIndex)},
		{"GRAVY", fmt.Sprintf("%.3f", rep.Gravy)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-20s %s\n", r.label, r.value); err != nil {
			return err
		}
	}
	for _, l := range rep.Lengths {
		if _, err := fmt.Fprintf(w, "%-20s %d aa\n", l.Label+" length", l.Length); err != nil {
			return err
		}
	}
	if rep.Sequence != "" {
		if _, err := fmt.Fprintf(w, "%-20s %s\n", "sequence", rep.Sequence); err != nil {
			return err
		}
	}
	for _, warn := range rep.Warnings {
		if _, err := fmt.Fprintf(w, "warning: %s\n", warn); err != nil {
			return err
		}
	}
	return nil
}
