// Package seq holds the protein-sequence primitives: alphabet validation,
// range truncation, and N-terminal tag fusion. Sequences are plain strings
// of upper-case one-letter codes; every operation returns a new value.
package seq

import (
	"fmt"
	"unicode"
)

// standard is the 20-letter amino-acid alphabet. Ambiguity codes (B, Z, X)
// are rejected: the property tables downstream have no entries for them.
var standard = map[rune]struct{}{
	'A': {}, 'C': {}, 'D': {}, 'E': {}, 'F': {},
	'G': {}, 'H': {}, 'I': {}, 'K': {}, 'L': {},
	'M': {}, 'N': {}, 'P': {}, 'Q': {}, 'R': {},
	'S': {}, 'T': {}, 'V': {}, 'W': {}, 'Y': {},
}

// Normalize removes whitespace and quotes and uppercases residues.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

// Validate returns a normalized sequence or an error naming the first
// residue outside the standard alphabet (1-based position).
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return "", fmt.Errorf("empty sequence")
	}
	for i, r := range s {
		if _, ok := standard[r]; !ok {
			return "", fmt.Errorf("invalid residue %q at position %d; allowed: the 20 standard amino acids", r, i+1)
		}
	}
	return s, nil
}
