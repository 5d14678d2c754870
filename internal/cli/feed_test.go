package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willowlog/willow/internal/store"
)

func TestFeedScenario(t *testing.T) {
	dir := t.TempDir()
	scenarioPath := writeScenario(t, dir, "mini.yaml", miniScenarioYAML)
	dbPath := filepath.Join(dir, "willow.db")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewFeedCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{scenarioPath, "--db", dbPath})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Appended 11 ball(s) to match mini-chase (from seq 0)")

	// The log really landed in the store.
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	n, err := st.BallCount(ctx, "mini-chase")
	require.NoError(t, err)
	assert.Equal(t, 11, n)

	cfg, err := st.ReadConfig(ctx, "mini-chase")
	require.NoError(t, err)
	assert.Equal(t, "Alphas", cfg.TeamA.Name)
}

func TestFeedJSON(t *testing.T) {
	dir := t.TempDir()
	scenarioPath := writeScenario(t, dir, "mini.yaml", miniScenarioYAML)
	dbPath := filepath.Join(dir, "willow.db")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewFeedCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{scenarioPath, "--db", dbPath})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "mini-chase", data["match_id"])
	assert.Equal(t, float64(11), data["appended"])
	assert.Equal(t, float64(0), data["first_seq"])
}

func TestFeedInvalidScenario(t *testing.T) {
	dir := t.TempDir()
	scenarioPath := writeScenario(t, dir, "broken.yaml", badTokenScenarioYAML)
	dbPath := filepath.Join(dir, "willow.db")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewFeedCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{scenarioPath, "--db", dbPath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestFeedRequiresDatabase(t *testing.T) {
	dir := t.TempDir()
	scenarioPath := writeScenario(t, dir, "mini.yaml", miniScenarioYAML)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewFeedCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{scenarioPath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db")
}
