package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindScenarioFiles(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "b_chase.yaml", miniScenarioYAML)
	writeScenario(t, dir, "a_rain.yml", miniScenarioYAML)
	writeScenario(t, dir, "notes.txt", "not a scenario")

	nested := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(nested, 0o755))
	writeScenario(t, nested, "c_tie.yaml", miniScenarioYAML)

	files, err := FindScenarioFiles(dir, "")
	require.NoError(t, err)
	require.Len(t, files, 3)

	// Sorted, recursive, yaml/yml only.
	assert.Equal(t, "a_rain.yml", filepath.Base(files[0]))
	assert.Equal(t, "b_chase.yaml", filepath.Base(files[1]))
	assert.Equal(t, "c_tie.yaml", filepath.Base(files[2]))
}

func TestFindScenarioFiles_Filter(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "chase_one.yaml", miniScenarioYAML)
	writeScenario(t, dir, "chase_two.yaml", miniScenarioYAML)
	writeScenario(t, dir, "rain.yaml", miniScenarioYAML)

	files, err := FindScenarioFiles(dir, "chase_*")
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		assert.Contains(t, filepath.Base(f), "chase_")
	}
}

func TestFindScenarioFiles_BadFilter(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "mini.yaml", miniScenarioYAML)

	_, err := FindScenarioFiles(dir, "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter")
}

func TestLoadScenarios(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "mini.yaml", miniScenarioYAML)
	writeScenario(t, dir, "wrong.yaml", failingScenarioYAML)

	scenarios, err := LoadScenarios(dir, "")
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "mini-chase", scenarios[0].Name)
	assert.Equal(t, "wrong-total", scenarios[1].Name)
}

func TestLoadScenarios_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := writeScenario(t, dir, "broken.yaml", badTokenScenarioYAML)

	_, err := LoadScenarios(dir, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), filepath.Base(path))
}
