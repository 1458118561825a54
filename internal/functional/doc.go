// Package functional reads and writes the OWL2 Functional Syntax.
//
// Parsing is single-pass recursive descent over an in-memory document:
// a cursor tokenizes on demand while grammar productions build owl
// values directly, with no intermediate tree. Parsing is fail-fast; the
// first structural error aborts with a positioned *ParseError.
//
// Recognized-but-unmodeled constructs (HasKey, DatatypeDefinition, ...)
// are not errors: the driver skips them by balancing parentheses and
// records each skip as a diagnostic on the parse Result.
//
// A parser's state is per call. Independent documents may be parsed
// concurrently; there is no shared mutable state.
package functional
