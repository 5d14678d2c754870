package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_MiniChase(t *testing.T) {
	sc, err := LoadScenario("testdata/mini_chase.yaml")
	require.NoError(t, err)

	result, err := RunWithGolden(t, sc)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestScorecardSnapshot_Shape(t *testing.T) {
	sc, err := LoadScenario("testdata/mini_chase.yaml")
	require.NoError(t, err)
	result, err := Run(sc)
	require.NoError(t, err)

	snap := ScorecardSnapshot(result.Bundle)
	assert.Equal(t, "mini-chase", snap["match_id"])
	assert.Equal(t, "completed", snap["status"])
	assert.Equal(t, "Bravos won by 10 wickets", snap["result"])

	innings, ok := snap["innings"].([]any)
	require.True(t, ok)
	assert.Len(t, innings, 2)

	// Rates are strings: the snapshot must marshal canonically.
	first, ok := innings[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "13.00", first["run_rate"])
}
