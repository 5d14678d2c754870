package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/willowlog/willow/internal/harness"
)

// FindScenarioFiles walks a directory and returns all yaml scenario paths,
// sorted for deterministic run order. An optional glob filter matches
// against the base name.
func FindScenarioFiles(dir, filter string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		if filter != "" {
			ok, matchErr := filepath.Match(filter, filepath.Base(path))
			if matchErr != nil {
				return fmt.Errorf("invalid filter %q: %w", filter, matchErr)
			}
			if !ok {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// LoadScenarios loads every scenario file under dir. Fails on the first
// file that does not parse or validate.
func LoadScenarios(dir, filter string) ([]*harness.Scenario, error) {
	files, err := FindScenarioFiles(dir, filter)
	if err != nil {
		return nil, err
	}

	scenarios := make([]*harness.Scenario, 0, len(files))
	for _, path := range files {
		sc, err := harness.LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}
