// Package uniprot talks to the UniProtKB REST services: free-text search,
// flat-file entry records, and FASTA retrieval. One Client, three calls,
// no caching and no retries beyond the documented flat-file-to-FASTA
// fallback.
package uniprot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrNoSearchResult means the search returned an empty result set.
var ErrNoSearchResult = errors.New("uniprot: no search result")

// ErrSequenceNotFound means both retrieval paths failed for an accession.
var ErrSequenceNotFound = errors.New("uniprot: sequence not found")

// Client issues UniProtKB requests. The zero value is not usable; build it
// with New so every call shares one HTTP client and its timeout.
type Client struct {
	searchURL string
	entryURL  string
	fastaURL  string
	http      *http.Client
}

// New builds a Client. Base URLs come from configuration; hc may carry a
// timeout and, in tests, a transport pointed at a local server.
func New(searchURL, entryURL, fastaURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		searchURL: strings.TrimRight(searchURL, "/"),
		entryURL:  strings.TrimRight(entryURL, "/"),
		fastaURL:  strings.TrimRight(fastaURL, "/"),
		http:      hc,
	}
}

// Search resolves a free-text protein name to its primary accession. The
// query is restricted to reviewed entries and capped at one result; the
// response is TSV with a header row, accession in row 2 column 1.
func (c *Client) Search(ctx context.Context, query string) (string, error) {
	q := url.Values{}
	q.Set("query", query+" AND (reviewed:true)")
	q.Set("format", "tsv")
	q.Set("fields", "accession,protein_name")
	q.Set("size", "1")

	body, err := c.get(ctx, c.searchURL+"?"+q.Encode())
	if err != nil {
		return "", err
	}
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	if len(lines) < 2 {
		return "", fmt.Errorf("%w for %q", ErrNoSearchResult, query)
	}
	acc := strings.SplitN(lines[1], "\t", 2)[0]
	if acc == "" {
		return "", fmt.Errorf("%w for %q", ErrNoSearchResult, query)
	}
	return acc, nil
}

// FetchSequence retrieves the amino-acid sequence for an accession. The
// flat-file record is the primary path; any error there falls back to the
// FASTA endpoint. Both failing yields ErrSequenceNotFound wrapping both
// causes, so callers can still match the underlying error (cancellation
// included) with errors.Is.
func (c *Client) FetchSequence(ctx context.Context, accession string) (string, error) {
	s, primaryErr := c.fetchFlatFile(ctx, accession)
	if primaryErr == nil {
		return s, nil
	}
	s, fallbackErr := c.fetchFASTA(ctx, accession)
	if fallbackErr == nil {
		return s, nil
	}
	return "", fmt.Errorf("%w: %s (flat-file: %w; fasta: %w)", ErrSequenceNotFound, accession, primaryErr, fallbackErr)
}

// fetchFlatFile pulls {entry}/{acc}.txt and extracts the SQ block: lines
// after the "SQ   SEQUENCE ..." header up to the terminating "//", with
// whitespace stripped.
func (c *Client) fetchFlatFile(ctx context.Context, accession string) (string, error) {
	body, err := c.get(ctx, c.entryURL+"/"+url.PathEscape(accession)+".txt")
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	inSQ := false
	for _, line := range strings.Split(string(body), "\n") {
		switch {
		case strings.HasPrefix(line, "SQ "):
			inSQ = true
		case inSQ && strings.HasPrefix(line, "//"):
			if sb.Len() == 0 {
				return "", fmt.Errorf("flat-file record for %s has an empty SQ block", accession)
			}
			return sb.String(), nil
		case inSQ:
			sb.WriteString(strings.Join(strings.Fields(line), ""))
		}
	}
	return "", fmt.Errorf("flat-file record for %s has no SQ block", accession)
}

// fetchFASTA pulls {fasta}/{acc}.fasta, drops the description line, and
// concatenates the rest.
func (c *Client) fetchFASTA(ctx context.Context, accession string) (string, error) {
	body, err := c.get(ctx, c.fastaURL+"/"+url.PathEscape(accession)+".fasta")
	if err != nil {
		return "", err
	}
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	if len(lines) < 2 || !strings.HasPrefix(lines[0], ">") {
		return "", fmt.Errorf("malformed FASTA response for %s", accession)
	}
	s := strings.Join(lines[1:], "")
	s = strings.ReplaceAll(s, "\r", "")
	if s == "" {
		return "", fmt.Errorf("empty FASTA sequence for %s", accession)
	}
	return s, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s: unexpected status %s", rawURL, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
