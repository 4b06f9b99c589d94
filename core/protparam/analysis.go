// Package protparam derives physicochemical properties from a protein
// sequence: molecular weight, isoelectric point, molar extinction
// coefficient at 280 nm, instability index, and GRAVY. The numerics follow
// the Expasy ProtParam conventions so results line up with published values.
package protparam

import (
	"gonum.org/v1/gonum/stat"

	"protcalc-core/seq"
)

// Analysis wraps a validated sequence and its residue counts. Construct it
// once per sequence; all property methods are cheap after that.
type Analysis struct {
	seq    string
	counts map[byte]int
}

// New validates s against the standard amino-acid alphabet and prepares an
// Analysis. Any non-standard residue fails the whole construction: there is
// no partial property set for a sequence the tables cannot cover.
func New(s string) (*Analysis, error) {
	v, err := seq.Validate(s)
	if err != nil {
		return nil, err
	}
	counts := make(map[byte]int, 20)
	for i := 0; i < len(v); i++ {
		counts[v[i]]++
	}
	return &Analysis{seq: v, counts: counts}, nil
}

// Sequence returns the validated sequence.
func (a *Analysis) Sequence() string { return a.seq }

// Length returns the residue count.
func (a *Analysis) Length() int { return len(a.seq) }

// Composition returns counts for all 20 standard residues, zeros included.
func (a *Analysis) Composition() map[string]int {
	out := make(map[string]int, 20)
	for r := range residueMass {
		out[string(r)] = a.counts[r]
	}
	return out
}

// MolecularWeight returns the average molecular mass in Daltons: the sum of
// residue masses plus one water.
func (a *Analysis) MolecularWeight() float64 {
	m := water
	for i := 0; i < len(a.seq); i++ {
		m += residueMass[a.seq[i]]
	}
	return m
}

// ExtinctionCoefficients returns the molar extinction coefficients at
// 280 nm: first assuming all cysteines reduced, then assuming every
// cysteine pair forms a disulfide bond.
func (a *Analysis) ExtinctionCoefficients() (reduced, cystines int) {
	reduced = a.counts['W']*extTrp + a.counts['Y']*extTyr
	cystines = reduced + (a.counts['C']/2)*extCystine
	return reduced, cystines
}

// Gravy returns the grand average of hydropathy: the mean Kyte-Doolittle
// value over all residues.
func (a *Analysis) Gravy() float64 {
	vals := make([]float64, len(a.seq))
	for i := 0; i < len(a.seq); i++ {
		vals[i] = hydropathy[a.seq[i]]
	}
	return stat.Mean(vals, nil)
}

// Report bundles the five derived properties of one sequence.
type Report struct {
	Length             int
	MolecularWeightKDa float64
	IsoelectricPoint   float64
	ExtinctionReduced  int
	ExtinctionCystines int
	InstabilityIndex   float64
	Gravy              float64
	Composition        map[string]int
}

// Compute runs every property on s and assembles a Report. An empty input
// yields (nil, nil): nothing to report, but not an error. Molecular weight
// is reported in kilodaltons.
func Compute(s string) (*Report, error) {
	if s == "" {
		return nil, nil
	}
	a, err := New(s)
	if err != nil {
		return nil, err
	}
	reduced, cystines := a.ExtinctionCoefficients()
	return &Report{
		Length:             a.Length(),
		MolecularWeightKDa: a.MolecularWeight() / 1000.0,
		IsoelectricPoint:   a.IsoelectricPoint(),
		ExtinctionReduced:  reduced,
		ExtinctionCystines: cystines,
		InstabilityIndex:   a.InstabilityIndex(),
		Gravy:              a.Gravy(),
		Composition:        a.Composition(),
	}, nil
}
