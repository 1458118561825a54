package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/owlf/internal/functional"
)

// RunWithGolden runs a scenario and, when the parse succeeds, compares
// the re-serialized ontology against testdata/golden/{scenario.Name}.golden.
// The serializer is deterministic, so the golden file pins both the
// parse result and the round-trip rendering regardless of the input
// document's whitespace and comments.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario, baseDir string) (*Result, error) {
	t.Helper()

	result, err := Run(scenario, baseDir)
	if err != nil {
		return nil, err
	}
	if result.Ontology == nil {
		return result, nil
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, []byte(functional.Serialize(result.Ontology)))

	return result, nil
}
