// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON schema for one property run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	Identifier string `json:"identifier"`
	Accession  string `json:"accession"`

	Lengths []StageLengthV1 `json:"lengths"`

	MolecularWeightKDa float64 `json:"molecular_weight_kda"`
	IsoelectricPoint   float64 `json:"isoelectric_point"`
	// ExtinctionCoefficient assumes every cysteine pair forms a
	// disulfide bond; the fully-reduced variant rides alongside.
	ExtinctionCoefficient int     `json:"extinction_coefficient"`
	ExtinctionReduced     int     `json:"extinction_coefficient_reduced,omitempty"`
	InstabilityIndex      float64 `json:"instability_index"`
	Gravy                 float64 `json:"gravy"`

	Composition map[string]int `json:"composition,omitempty"`
	Sequence    string         `json:"seq,omitempty"`
	Warnings    []string       `json:"warnings,omitempty"`
}

// StageLengthV1 is one (stage label, sequence length) summary entry.
type StageLengthV1 struct {
	Label  string `json:"label"`
	Length int    `json:"length"`
}
