package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/owlf/internal/testutil"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	onto := testutil.MustParse(t, testutil.SampleDocument)
	id, err := s.SaveOntology(ctx, onto, "sample.ofn")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	loaded, err := s.LoadOntology(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, onto.IRI, loaded.IRI)
	assert.Equal(t, onto.AxiomCount(), loaded.AxiomCount())
	for _, a := range onto.Axioms() {
		assert.True(t, loaded.ContainsAxiom(a))
	}
}

func TestStore_ListOntologies(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	empty, err := s.ListOntologies(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	onto := testutil.MustParse(t, testutil.SampleDocument)
	first, err := s.SaveOntology(ctx, onto, "first.ofn")
	require.NoError(t, err)
	second, err := s.SaveOntology(ctx, onto, "second.ofn")
	require.NoError(t, err)

	summaries, err := s.ListOntologies(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// UUIDv7 IDs sort in insertion order.
	assert.Equal(t, first, summaries[0].ID)
	assert.Equal(t, second, summaries[1].ID)
	assert.Equal(t, "first.ofn", summaries[0].Source)
	assert.Equal(t, string(onto.IRI), summaries[0].IRI)
	assert.Equal(t, onto.AxiomCount(), summaries[0].AxiomCount)
}

func TestStore_LoadMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.LoadOntology(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_Delete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	onto := testutil.MustParse(t, testutil.SampleDocument)
	id, err := s.SaveOntology(ctx, onto, "")
	require.NoError(t, err)

	require.NoError(t, s.DeleteOntology(ctx, id))

	_, err = s.LoadOntology(ctx, id)
	assert.True(t, errors.Is(err, ErrNotFound))

	// Axiom rows go with the entry.
	counts, err := s.CountAxiomsByKind(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, counts)

	err = s.DeleteOntology(ctx, id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no entry")
}

func TestStore_CountAxiomsByKind(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	onto := testutil.MustParse(t, testutil.SampleDocument)
	id, err := s.SaveOntology(ctx, onto, "")
	require.NoError(t, err)

	counts, err := s.CountAxiomsByKind(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, onto.CountByKind(), counts)
}

func TestStore_OpenBadPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing-dir", "catalog.db"))
	require.Error(t, err)
}
