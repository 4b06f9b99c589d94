package resolve

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	calls  int
	result string
	err    error
}

func (f *fakeSearcher) Search(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.result, f.err
}

func TestIsAccession(t *testing.T) {
	valid := []string{"P01308", "Q9Y6K9", "O15552", "A0A024R161"}
	for _, s := range valid {
		assert.True(t, IsAccession(s), s)
	}
	invalid := []string{"", "insulin", "p01308", "P0130", "P013088", "12345A", "ZZZZZZ"}
	for _, s := range invalid {
		assert.False(t, IsAccession(s), s)
	}
}

func TestResolveAccessionPassThrough(t *testing.T) {
	fs := &fakeSearcher{result: "XXXXXX"}
	r := New(fs)

	acc, err := r.Resolve(context.Background(), "P01308")
	require.NoError(t, err)
	assert.Equal(t, "P01308", acc)
	assert.Zero(t, fs.calls, "accession input must not hit the search service")
}

func TestResolveFreeText(t *testing.T) {
	fs := &fakeSearcher{result: "P01308"}
	r := New(fs)

	acc, err := r.Resolve(context.Background(), "Insulin (human)!")
	require.NoError(t, err)
	assert.Equal(t, "P01308", acc)
	assert.Equal(t, 1, fs.calls)
}

func TestResolveNotFound(t *testing.T) {
	fs := &fakeSearcher{err: errors.New("no search result")}
	r := New(fs)

	_, err := r.Resolve(context.Background(), "definitely not a protein")
	assert.ErrorIs(t, err, ErrNotResolved)
}

func TestResolveEmptyInput(t *testing.T) {
	r := New(&fakeSearcher{})
	for _, text := range []string{"", "   ", "???"} {
		_, err := r.Resolve(context.Background(), text)
		assert.ErrorIs(t, err, ErrNotResolved, "input %q", text)
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "insulin-like growth factor", Sanitize("  insulin-like growth factor!?  "))
	assert.Equal(t, "TP53", Sanitize("TP53*"))
}

func TestResolveKeepsSearchCauseInChain(t *testing.T) {
	cause := fmt.Errorf("get search: %w", context.Canceled)
	r := New(&fakeSearcher{err: cause})

	_, err := r.Resolve(context.Background(), "insulin")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotResolved)
	assert.ErrorIs(t, err, context.Canceled)
}
