// core/protparam/data.go
//
// Reference tables for the five physicochemical properties. Values follow
// the Expasy ProtParam conventions: average residue masses, Kyte-Doolittle
// hydropathy, Bjellqvist pKa sets, and the 280 nm per-residue extinction
// coefficients of Gill & von Hippel.
package protparam

// water is the average mass of one H2O, added once per chain.
const water = 18.0153

// residueMass holds average residue masses (monomer minus water), Daltons.
var residueMass = map[byte]float64{
	'A': 71.0788, 'R': 156.1875, 'N': 114.1038, 'D': 115.0886, 'C': 103.1388,
	'E': 129.1155, 'Q': 128.1307, 'G': 57.0519, 'H': 137.1411, 'I': 113.1594,
	'L': 113.1594, 'K': 128.1741, 'M': 131.1926, 'F': 147.1766, 'P': 97.1167,
	'S': 87.0782, 'T': 101.1051, 'W': 186.2132, 'Y': 163.1760, 'V': 99.1326,
}

// hydropathy holds Kyte-Doolittle per-residue values for GRAVY.
var hydropathy = map[byte]float64{
	'A': 1.8, 'R': -4.5, 'N': -3.5, 'D': -3.5, 'C': 2.5,
	'E': -3.5, 'Q': -3.5, 'G': -0.4, 'H': -3.2, 'I': 4.5,
	'L': 3.8, 'K': -3.9, 'M': 1.9, 'F': 2.8, 'P': -1.6,
	'S': -0.8, 'T': -0.7, 'W': -0.9, 'Y': -1.3, 'V': 4.2,
}

// Extinction coefficients at 280 nm, M^-1 cm^-1. Cystine counts half the
// cysteines paired into disulfide bonds.
const (
	extTrp     = 5500
	extTyr     = 1490
	extCystine = 125
)

// Bjellqvist pKa sets used by the isoelectric-point search. The terminal
// groups get residue-specific overrides when the chain starts or ends on
// one of the listed residues.
var (
	positivePK = map[string]float64{"Nterm": 7.5, "K": 10.0, "R": 12.0, "H": 5.98}
	negativePK = map[string]float64{"Cterm": 3.55, "D": 4.05, "E": 4.45, "C": 9.0, "Y": 10.0}

	ntermPK = map[byte]float64{'A': 7.59, 'M': 7.0, 'S': 6.93, 'P': 8.36, 'T': 6.82, 'V': 7.44, 'E': 7.7}
	ctermPK = map[byte]float64{'D': 4.55, 'E': 4.75}
)
