package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/curvelab/lsys/internal/render"
)

// RunWithGolden executes a scenario and compares its canonical drawing
// trace against a golden file at testdata/golden/{scenario.Name}.golden.
//
// The scenario's own expectations are evaluated first; a golden match with
// a failed expectation is still a failure. Returns an error if the
// pipeline cannot run; golden mismatches fail t via goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	for _, failure := range result.Failures {
		t.Error(failure)
	}

	traceJSON, err := render.EncodeTrace(result.Drawing)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, traceJSON)

	return nil
}
