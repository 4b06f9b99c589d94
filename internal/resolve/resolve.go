// Package resolve turns user-supplied protein identifiers into canonical
// UniProt accessions. Text already in accession form passes through without
// a network call; anything else goes through the search service.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNotResolved means no accession could be found for the identifier.
var ErrNotResolved = errors.New("identifier not resolved")

// accessionRE is the canonical UniProt accession pattern: 6 or 10
// characters over two letter/digit templates.
var accessionRE = regexp.MustCompile(`^(?:[OPQ][0-9][A-Z0-9]{3}[0-9]|[A-NR-Z][0-9](?:[A-Z][A-Z0-9]{2}[0-9]){1,2})$`)

// sanitizeRE drops everything outside word, space, and hyphen classes
// before the text is used as a search query.
var sanitizeRE = regexp.MustCompile(`[^\w\s-]`)

// Searcher is the search call the resolver depends on.
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// Resolver maps identifier text to an accession.
type Resolver struct {
	search Searcher
}

func New(search Searcher) *Resolver { return &Resolver{search: search} }

// IsAccession reports whether text already matches the canonical pattern.
func IsAccession(text string) bool { return accessionRE.MatchString(text) }

// Sanitize prepares free text for the search query.
func Sanitize(text string) string {
	return strings.TrimSpace(sanitizeRE.ReplaceAllString(text, ""))
}

// Resolve returns the canonical accession for text. Accession-shaped input
// is returned unchanged with zero search calls. Search failures of any kind
// surface as ErrNotResolved; there is no partial answer.
func (r *Resolver) Resolve(ctx context.Context, text string) (string, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return "", fmt.Errorf("%w: empty identifier", ErrNotResolved)
	}
	if IsAccession(t) {
		return t, nil
	}
	q := Sanitize(t)
	if q == "" {
		return "", fmt.Errorf("%w: %q", ErrNotResolved, text)
	}
	acc, err := r.search.Search(ctx, q)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrNotResolved, text, err)
	}
	return acc, nil
}
