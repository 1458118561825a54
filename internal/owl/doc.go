// Package owl provides the in-memory object model for OWL2 ontologies.
//
// This package contains value and tree types only. All other internal
// packages import owl; owl imports nothing internal. This keeps the model
// the foundational layer with no circular dependencies.
//
// The polymorphic families of the OWL2 structural specification
// (Individual, ObjectPropertyExpression, ClassExpression, DataRange,
// AnnotationValue, Axiom) are modeled as sealed interfaces: each family
// has an unexported marker method implemented only by the types in this
// package, so a type switch over a family is exhaustive.
//
// Expression trees are exclusively owned. Operands are stored by value or
// in fresh slices, never aliased between axioms, so an Ontology can be
// copied, compared, and mutated without shared-state surprises.
package owl
