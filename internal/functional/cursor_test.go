package functional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_ReadTokenSkipsSpaceAndComments(t *testing.T) {
	c := newCursor("  # comment to end of line\n\t ex:Disease )")
	assert.Equal(t, "ex:Disease", c.readToken())
	assert.Equal(t, byte(')'), func() byte { c.skipSpace(); return c.peek() }())
}

func TestCursor_TokenStopsAtDelimiters(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"SubClassOf(", "SubClassOf"},
		{"ex:p=x", "ex:p"},
		{`token"quoted"`, "token"},
		{"a<b>", "a"},
		{"65 ex:p", "65"},
	}
	for _, tt := range tests {
		c := newCursor(tt.input)
		assert.Equal(t, tt.want, c.readToken(), "input %q", tt.input)
	}
}

func TestCursor_LineAndColumnTracking(t *testing.T) {
	c := newCursor("ab\ncd")
	c.next()
	c.next()
	assert.Equal(t, 1, c.line)
	assert.Equal(t, 3, c.col)
	c.next() // newline
	assert.Equal(t, 2, c.line)
	assert.Equal(t, 1, c.col)
}

func TestCursor_MatchRollsBackOnMismatch(t *testing.T) {
	c := newCursor("  Ontology(")
	require.False(t, c.match("Prefix"))
	// Rollback restored the leading whitespace too.
	assert.Equal(t, 0, c.pos)
	require.True(t, c.match("Ontology"))
	assert.Equal(t, byte('('), c.peek())
}

func TestCursor_MatchStopsAtTokenBoundary(t *testing.T) {
	c := newCursor("Importer(")
	require.False(t, c.match("Import"))
	assert.Equal(t, 0, c.pos)

	c = newCursor("Import(<http://x/>)")
	require.True(t, c.match("Import"))
	assert.Equal(t, byte('('), c.peek())

	// A keyword at EOF matches too.
	c = newCursor("Import")
	assert.True(t, c.match("Import"))
}

func TestCursor_ReadQuoted(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `"hello"`, "hello"},
		{"escaped quote", `"say \"hi\""`, `say "hi"`},
		{"escaped backslash", `"a\\b"`, `a\b`},
		{"newline tab return", `"a\nb\tc\rd"`, "a\nb\tc\rd"},
		{"empty", `""`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor(tt.input)
			got, err := c.readQuoted()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCursor_ReadQuotedErrors(t *testing.T) {
	t.Run("unterminated", func(t *testing.T) {
		c := newCursor(`"never ends`)
		_, err := c.readQuoted()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unterminated")
	})

	t.Run("unknown escape", func(t *testing.T) {
		c := newCursor(`"bad \q escape"`)
		_, err := c.readQuoted()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid escape")
	})
}

func TestCursor_ReadIRIRef(t *testing.T) {
	c := newCursor("<http://example.org/Disease> rest")
	iri, err := c.readIRIRef()
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/Disease", iri)

	c = newCursor("<http://unterminated")
	_, err = c.readIRIRef()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated IRI")
}

func TestCursor_ReadLangTag(t *testing.T) {
	c := newCursor("en-GB rest")
	tag, err := c.readLangTag()
	require.NoError(t, err)
	assert.Equal(t, "en-GB", tag)

	c = newCursor(" ")
	_, err = c.readLangTag()
	require.Error(t, err)
}

func TestCursor_ErrorCarriesPosition(t *testing.T) {
	c := newCursor("line one\nline two(")
	c.readToken() // "line"
	c.readToken() // "one"
	c.readToken() // "line"
	c.readToken() // "two"
	err := c.expect(')')
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 9, pe.Column)
}
