// internal/output/tsv.go
package output

import (
	"fmt"
	"io"

	"protcalc/pkg/api"
)

// TSVHeader is the canonical header row for TSV output.
// Keep this as the single source of truth.
const TSVHeader = "identifier\taccession\tlength\tmolecular_weight_kda\tisoelectric_point\textinction_coefficient\tinstability_index\tgravy"

func init() { Register(FormatTSV, writeTSV) }

func writeTSV(w io.Writer, rep api.ReportV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	length := 0
	if n := len(rep.Lengths); n > 0 {
		length = rep.Lengths[n-1].Length
	}
	_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.2f\t%d\t%.2f\t%.3f\n",
		rep.Identifier, rep.Accession, length,
		rep.MolecularWeightKDa, rep.IsoelectricPoint,
		rep.ExtinctionCoefficient, rep.InstabilityIndex, rep.Gravy,
	)
	return err
}
