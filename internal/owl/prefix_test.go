package owl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixTable_SetAndResolve(t *testing.T) {
	table := NewPrefixTable()
	table.Set("ex", "http://example.org/")

	iri, ok := table.Resolve("ex:Disease")
	require.True(t, ok)
	assert.Equal(t, IRI("http://example.org/Disease"), iri)
}

func TestPrefixTable_UndeclaredPrefixPassesThrough(t *testing.T) {
	table := NewPrefixTable()

	iri, ok := table.Resolve("foo:bar")
	assert.False(t, ok)
	assert.Equal(t, IRI("foo:bar"), iri)
}

func TestPrefixTable_NoColonPassesThrough(t *testing.T) {
	table := NewPrefixTable()
	table.Set("ex", "http://example.org/")

	iri, ok := table.Resolve("Disease")
	assert.False(t, ok)
	assert.Equal(t, IRI("Disease"), iri)
}

func TestPrefixTable_DefaultPrefix(t *testing.T) {
	table := NewPrefixTable()
	table.Set("", "http://example.org/")

	iri, ok := table.Resolve(":Disease")
	require.True(t, ok)
	assert.Equal(t, IRI("http://example.org/Disease"), iri)
}

func TestPrefixTable_RedeclarationKeepsPosition(t *testing.T) {
	table := NewPrefixTable()
	table.Set("a", "http://a/")
	table.Set("b", "http://b/")
	table.Set("a", "http://a2/")

	assert.Equal(t, []string{"a", "b"}, table.Names())
	ns, _ := table.Get("a")
	assert.Equal(t, "http://a2/", ns)
}

func TestPrefixTable_Abbreviate(t *testing.T) {
	table := NewPrefixTable()
	table.Set("ex", "http://example.org/")
	table.Set("voc", "http://example.org/voc/")

	tests := []struct {
		name   string
		iri    IRI
		want   string
		wantOK bool
	}{
		{"simple", "http://example.org/Disease", "ex:Disease", true},
		{"longest namespace wins", "http://example.org/voc/term", "voc:term", true},
		{"no declared namespace", "http://other.org/x", "", false},
		{"empty local name", "http://example.org/", "", false},
		{"local name with slash is delimiterless", "http://example.org/a/b", "ex:a/b", true},
		{"local name with equals stays full", "http://example.org/q=1", "", false},
		{"local name with space stays full", "http://example.org/a b", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.Abbreviate(tt.iri)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
