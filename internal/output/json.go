// internal/output/json.go
package output

import (
	"io"

	"protcalc/internal/jsonutil"
	"protcalc/pkg/api"
)

func init() {
	Register(FormatJSON, func(w io.Writer, rep api.ReportV1, _ bool) error {
		return jsonutil.EncodePretty(w, rep)
	})
}
