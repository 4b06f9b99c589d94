// core/seq/truncate.go
package seq

import (
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidRange marks a truncation request that cannot be applied. Callers
// decide whether to treat it as fatal or degrade to the untruncated input.
var ErrInvalidRange = fmt.Errorf("invalid truncation range")

var digitRuns = regexp.MustCompile(`\d+`)

// Range is a 1-based inclusive truncation window. End == 0 means open:
// truncate from Start to the end of the sequence.
type Range struct {
	Start int
	End   int
}

func (r Range) String() string {
	if r.End == 0 {
		return fmt.Sprintf("%d-end", r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// ParseRange extracts a Range from free text such as "38-208" or "38 208".
// Digit runs are taken left to right: one run gives an open-ended range, two
// or more give (first, second) with the rest ignored. ok is false when the
// text contains no digits at all (no range requested). A numeric pair with
// start >= end is a request that cannot mean anything; it is returned as
// ErrInvalidRange so the caller can report the original text.
func ParseRange(text string) (r Range, ok bool, err error) {
	runs := digitRuns.FindAllString(text, -1)
	if len(runs) == 0 {
		return Range{}, false, nil
	}
	start, err := strconv.Atoi(runs[0])
	if err != nil {
		return Range{}, false, fmt.Errorf("%w: %q", ErrInvalidRange, text)
	}
	r = Range{Start: start}
	if len(runs) >= 2 {
		end, err := strconv.Atoi(runs[1])
		if err != nil {
			return Range{}, false, fmt.Errorf("%w: %q", ErrInvalidRange, text)
		}
		r.End = end
	}
	if r.Start < 1 || (r.End != 0 && r.Start >= r.End) {
		return Range{}, false, fmt.Errorf("%w: %q", ErrInvalidRange, text)
	}
	return r, true, nil
}

// Truncate extracts the subsequence covered by r. The window in zero-based
// terms is [Start-1, End) with End defaulting to len(s). Out-of-bounds
// requests return the original sequence together with an ErrInvalidRange
// describing both the request and the actual length.
func Truncate(s string, r Range) (string, error) {
	start := r.Start - 1
	end := r.End
	if end == 0 {
		end = len(s)
	}
	if start < 0 || start >= end || end > len(s) {
		return s, fmt.Errorf("%w: %s does not fit a sequence of length %d", ErrInvalidRange, r, len(s))
	}
	return s[start:end], nil
}
