package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/owlf/internal/functional"
	"github.com/roach88/owlf/internal/owl"
)

// Summary describes one catalog entry without its document text.
type Summary struct {
	ID         string
	IRI        string
	VersionIRI string
	Source     string
	AxiomCount int
}

// ErrNotFound is returned when a catalog ID does not exist.
var ErrNotFound = errors.New("ontology not found")

// ListOntologies returns a summary per catalog entry, ordered by ID.
// The IDs are UUIDv7, so the order is also insertion order.
//
// Returns an empty slice (not nil) when the catalog is empty.
func (s *Store) ListOntologies(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, iri, version_iri, source, axiom_count
		FROM ontologies
		ORDER BY id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list ontologies: %w", err)
	}
	defer rows.Close()

	summaries := []Summary{}
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.ID, &sum.IRI, &sum.VersionIRI, &sum.Source, &sum.AxiomCount); err != nil {
			return nil, fmt.Errorf("scan ontology row: %w", err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ontologies: %w", err)
	}
	return summaries, nil
}

// LoadOntology re-parses the stored document for the given catalog ID.
func (s *Store) LoadOntology(ctx context.Context, id string) (*owl.Ontology, error) {
	var document string
	err := s.db.QueryRowContext(ctx, `
		SELECT document FROM ontologies WHERE id = ?
	`, id).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load ontology %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load ontology %q: %w", id, err)
	}

	onto, err := functional.Parse(document)
	if err != nil {
		return nil, fmt.Errorf("load ontology %q: %w", id, err)
	}
	return onto, nil
}

// CountAxiomsByKind tallies the stored axiom rows of one entry by kind.
func (s *Store) CountAxiomsByKind(ctx context.Context, id string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, COUNT(*) FROM axioms
		WHERE ontology_id = ?
		GROUP BY kind
	`, id)
	if err != nil {
		return nil, fmt.Errorf("count axioms: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scan axiom count: %w", err)
		}
		counts[kind] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate axiom counts: %w", err)
	}
	return counts, nil
}
