package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestRun_PassingScenario(t *testing.T) {
	sc, err := LoadScenario("testdata/mini_chase.yaml")
	require.NoError(t, err)

	result, err := Run(sc)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 11, result.Events)
	assert.True(t, result.Determinism.OK)
	require.NotNil(t, result.Bundle)
}

func TestRun_FailedAssertion(t *testing.T) {
	sc := &Scenario{
		Name:   "wrong",
		Config: miniConfig(),
		Flow:   []FlowStep{{Balls: "4 4"}},
		Assertions: []Assertion{
			{Type: AssertScore, Innings: 0, Runs: intPtr(9)},
		},
	}

	result, err := Run(sc)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "runs = 8, want 9")
}

func TestRun_MissingPlayerAssertion(t *testing.T) {
	sc := &Scenario{
		Name:   "missing",
		Config: miniConfig(),
		Flow:   []FlowStep{{Balls: "1"}},
		Assertions: []Assertion{
			{Type: AssertBatter, Player: "a9", Runs: intPtr(0)},
		},
	}

	result, err := Run(sc)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], "not found")
}

func TestRun_CompileErrorIsAnError(t *testing.T) {
	sc := &Scenario{Name: "broken", Config: miniConfig(), Flow: []FlowStep{{Balls: "zz"}}}
	_, err := Run(sc)
	assert.Error(t, err)
}

// Every scenario file shipped under testdata must pass end to end.
func TestRun_AllScenarioFiles(t *testing.T) {
	files, err := filepath.Glob("testdata/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			sc, err := LoadScenario(file)
			require.NoError(t, err)
			result, err := Run(sc)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}
