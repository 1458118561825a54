// Package store provides a SQLite-backed catalog of parsed ontologies.
//
// Each saved ontology keeps its full Functional-Syntax rendering plus a
// per-axiom index (position, kind, text) so callers can list documents
// and tally axiom kinds without re-parsing. Loading re-parses the stored
// document, so the catalog round-trips through the same grammar the
// original files went through.
package store
