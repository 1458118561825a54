package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/owlf/internal/functional"
	"github.com/roach88/owlf/internal/owl"
)

// SaveOntology serializes the ontology to Functional Syntax and records
// it under a fresh catalog ID, together with one row per axiom. The
// whole save is a single transaction. Source is a caller-supplied label
// (usually the file the document came from) and may be empty.
func (s *Store) SaveOntology(ctx context.Context, o *owl.Ontology, source string) (string, error) {
	id := uuid.Must(uuid.NewV7()).String()
	document := functional.Serialize(o)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("save ontology: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO ontologies (id, iri, version_iri, source, axiom_count, document)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		id,
		string(o.IRI),
		string(o.VersionIRI),
		source,
		o.AxiomCount(),
		document,
	)
	if err != nil {
		return "", fmt.Errorf("save ontology: %w", err)
	}

	for i, a := range o.Axioms() {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO axioms (ontology_id, position, kind, text)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(ontology_id, position) DO NOTHING
		`,
			id,
			i,
			owl.KindOf(a),
			functional.SerializeAxiom(a, o.Prefixes),
		)
		if err != nil {
			return "", fmt.Errorf("save axiom %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("save ontology: %w", err)
	}
	return id, nil
}

// DeleteOntology removes a catalog entry and its axiom rows.
func (s *Store) DeleteOntology(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM ontologies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete ontology: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete ontology: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete ontology: no entry with id %q", id)
	}
	return nil
}
