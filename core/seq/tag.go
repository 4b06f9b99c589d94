// core/seq/tag.go
package seq

import "fmt"

// ErrUnknownTag marks a tag name absent from the fixed table.
var ErrUnknownTag = fmt.Errorf("unknown tag")

// TagNone is the selection that leaves the sequence untouched.
const TagNone = "none"

// tagSequences maps a marker-peptide name to its literal sequence. The table
// is fixed: purification/detection tags fused at the N-terminus with no
// linker residues.
var tagSequences = map[string]string{
	"10his": "HHHHHHHHHH",
	"6his":  "HHHHHH",
	"GST":   "MSPILGYWKIKGLVQPTRLLLEYLEEKYEEHLYERDEGDKWRNKKFELGLEFPNLPYYIDGDVKLTQSMAIIRYIADKHNMLGGCPKERAEISMLEGAVLDIRYGVSRIAYSKDFETLKVDFLSKLPEMLKMFEDRLCHKTYLNGDHVTHPDFMLYDALDVVLYMDPMCLDAFPKLVCFKKRIEAIPQIDKYLKSSKYIAWPLQGWQATFGGGDHPPK",
	"SUMO":  "MADLYKQGGKSEVHLTQLHNDLPSLPSPSTVINGLKSKIQTNQKQYSPSVQEAKPEVKPEVKPETHINLKVSDGSSEIFFKIKKTTPLRRLMEAFAKRQGKEMDSLRFLYDGIRIQADQTPEDLDMEDNDIIEAHREQIGG",
}

// tagOrder fixes the presentation order for help text and UIs.
var tagOrder = []string{TagNone, "10his", "6his", "GST", "SUMO"}

// TagNames returns the selectable tag names, "none" first.
func TagNames() []string {
	out := make([]string, len(tagOrder))
	copy(out, tagOrder)
	return out
}

// TagSequence looks up the literal sequence for name.
func TagSequence(name string) (string, bool) {
	t, ok := tagSequences[name]
	return t, ok
}

// Fuse prepends the named tag to s. An empty name or "none" is the identity.
// An unknown name returns s unchanged together with ErrUnknownTag; the
// caller chooses whether that is fatal.
func Fuse(s, name string) (string, error) {
	if name == "" || name == TagNone {
		return s, nil
	}
	t, ok := tagSequences[name]
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownTag, name)
	}
	return t + s, nil
}
