package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreFromScenarioFile(t *testing.T) {
	path := writeScenario(t, t.TempDir(), "mini.yaml", miniScenarioYAML)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewScoreCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--file", path})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Alphas  13/1  (1.0 ov)")
	assert.Contains(t, output, "Bravos  14/0  (0.5 ov)")
	assert.Contains(t, output, "Result: Bravos won by 10 wickets")
}

func TestScoreJSON(t *testing.T) {
	path := writeScenario(t, t.TempDir(), "mini.yaml", miniScenarioYAML)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewScoreCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--file", path})

	err := cmd.Execute()
	require.NoError(t, err)

	var snapshot map[string]any
	err = json.Unmarshal(buf.Bytes(), &snapshot)
	require.NoError(t, err)
	assert.Equal(t, "mini-chase", snapshot["match_id"])
	assert.Equal(t, "completed", snapshot["status"])
	assert.Equal(t, "Bravos won by 10 wickets", snapshot["result"])
}

func TestScoreAtReplayIndex(t *testing.T) {
	path := writeScenario(t, t.TempDir(), "mini.yaml", miniScenarioYAML)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewScoreCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--file", path, "--at", "6"})

	err := cmd.Execute()
	require.NoError(t, err)

	// First innings just closed: a target, an untouched chase innings, no
	// result yet.
	output := buf.String()
	assert.Contains(t, output, "Alphas  13/1  (1.0 ov)")
	assert.Contains(t, output, "Bravos  0/0  (0.0 ov)")
	assert.Contains(t, output, "Need 14 from")
	assert.NotContains(t, output, "Result:")
}

func TestScoreVerboseScorecard(t *testing.T) {
	path := writeScenario(t, t.TempDir(), "mini.yaml", miniScenarioYAML)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text", Verbose: true}
	cmd := NewScoreCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--file", path})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Batting")
	assert.Contains(t, output, "Bowling")
	assert.Contains(t, output, "b1")
}

func TestScoreWithoutSource(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewScoreCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestScoreMissingScenarioFile(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewScoreCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--file", "/nonexistent/scenario.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
