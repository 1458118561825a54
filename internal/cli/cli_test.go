package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/owlf/internal/testutil"
)

// execute runs the root command with the given args and returns what it
// wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand_Text(t *testing.T) {
	path := testutil.WriteDocument(t, testutil.SampleDocument)

	out, err := execute(t, "parse", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Ontology: http://example.org/sample")
	assert.Contains(t, out, "Axioms:   6")
	assert.Contains(t, out, "Declaration")
	assert.Contains(t, out, "SubClassOf")
}

func TestParseCommand_JSON(t *testing.T) {
	path := testutil.WriteDocument(t, testutil.SampleDocument)

	out, err := execute(t, "--format", "json", "parse", path)
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "http://example.org/sample", data["ontology_iri"])
	assert.Equal(t, float64(6), data["axiom_count"])
}

func TestParseCommand_ReportsSkipped(t *testing.T) {
	path := testutil.WriteDocument(t, `Prefix(ex:=<http://x/>)
Ontology(
Declaration(Class(ex:A))
HasKey(ex:A () (ex:k))
)`)

	out, err := execute(t, "parse", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Skipped:  HasKey at line 4")
}

func TestParseCommand_MissingFile(t *testing.T) {
	out, err := execute(t, "parse", filepath.Join(t.TempDir(), "absent.ofn"))
	require.Error(t, err)

	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [NOT_FOUND]")
}

func TestParseCommand_ParseFailure(t *testing.T) {
	path := testutil.WriteDocument(t, "Ontology(")

	out, err := execute(t, "parse", path)
	require.Error(t, err)

	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [PARSE_ERROR]")
}

func TestParseCommand_StrictPrefixes(t *testing.T) {
	path := testutil.WriteDocument(t, "Ontology(Declaration(Class(foo:Bar)))")

	_, err := execute(t, "parse", path)
	require.NoError(t, err)

	_, err = execute(t, "parse", "--strict-prefixes", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared prefix")
}

func TestFmtCommand(t *testing.T) {
	path := testutil.WriteDocument(t, `Prefix(ex:=<http://x/>)
Ontology( <http://x/o>   # comment
	Declaration( Class( ex:A ) )   SubClassOf(ex:A   ex:B)
)`)

	out, err := execute(t, "fmt", path)
	require.NoError(t, err)

	want := "Prefix(ex:=<http://x/>)\n" +
		"Ontology(<http://x/o>\n" +
		"Declaration(Class(ex:A))\n" +
		"SubClassOf(ex:A ex:B)\n" +
		")\n"
	assert.Equal(t, want, out)
}

func TestImportAndListCommands(t *testing.T) {
	doc := testutil.WriteDocument(t, testutil.SampleDocument)
	db := filepath.Join(t.TempDir(), "catalog.db")

	out, err := execute(t, "import", "--db", db, doc)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported "+doc)
	assert.Contains(t, out, "6 axioms")

	out, err = execute(t, "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "http://example.org/sample")
	assert.Contains(t, out, "6 axioms")
	assert.Contains(t, out, doc)
}

func TestImportCommand_JSON(t *testing.T) {
	doc := testutil.WriteDocument(t, testutil.SampleDocument)
	db := filepath.Join(t.TempDir(), "catalog.db")

	out, err := execute(t, "--format", "json", "import", "--db", db, doc)
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, float64(6), data["axiom_count"])
}

func TestListCommand_EmptyCatalog(t *testing.T) {
	db := filepath.Join(t.TempDir(), "catalog.db")

	out, err := execute(t, "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "catalog is empty")
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	path := testutil.WriteDocument(t, testutil.SampleDocument)

	_, err := execute(t, "--format", "xml", "parse", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(&ExitError{Code: ExitCommandError}))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))

	wrapped := &ExitError{Code: ExitCommandError, Message: "outer", Err: errors.New("inner")}
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
	assert.Contains(t, wrapped.Error(), "outer: inner")
}
