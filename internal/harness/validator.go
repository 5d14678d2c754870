package harness

import (
	"fmt"
	"sort"

	"github.com/willowlog/willow/internal/engine"
	"github.com/willowlog/willow/internal/match"
)

// Mismatch pinpoints the first divergence between two states.
type Mismatch struct {
	Path     string `json:"path"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// DeterminismReport is the structured outcome of a verification run. It is
// a report, not an error: callers inspect OK and render the mismatch.
type DeterminismReport struct {
	OK              bool      `json:"ok"`
	Events          int       `json:"events"`
	FullHash        string    `json:"full_hash,omitempty"`
	IncrementalHash string    `json:"incremental_hash,omitempty"`
	Mismatch        *Mismatch `json:"mismatch,omitempty"`

	// Err carries serialization failures, which are distinct from
	// determinism failures.
	Err string `json:"error,omitempty"`
}

// VerifyDeterminism checks the core contract: folding the whole log at once
// and folding it one event at a time produce byte-identical state.
func VerifyDeterminism(cfg match.MatchConfig, events []match.BallEvent) DeterminismReport {
	report := DeterminismReport{Events: len(events)}

	full := engine.Reconstruct(cfg, events)

	r := engine.NewReducer(nil)
	incremental := match.NewState(cfg)
	for _, e := range events {
		incremental = r.Apply(incremental, e)
	}

	return compareStates(report, full, incremental)
}

// VerifyPrefixes additionally checks every prefix: reconstructing events[:i]
// from scratch must equal the running incremental state after i events.
// Quadratic in log length; intended for scenario-sized logs.
func VerifyPrefixes(cfg match.MatchConfig, events []match.BallEvent) DeterminismReport {
	report := DeterminismReport{Events: len(events)}

	r := engine.NewReducer(nil)
	incremental := match.NewState(cfg)
	for i, e := range events {
		incremental = r.Apply(incremental, e)
		full := engine.Reconstruct(cfg, events[:i+1])
		report = compareStates(report, full, incremental)
		if !report.OK {
			report.Err = fmt.Sprintf("diverged at prefix %d: %s", i+1, report.Err)
			return report
		}
	}
	report.OK = true
	return report
}

func compareStates(report DeterminismReport, full, incremental *match.MatchState) DeterminismReport {
	fullHash, err := match.StateHash(full)
	if err != nil {
		report.Err = fmt.Sprintf("hash full replay: %v", err)
		return report
	}
	incHash, err := match.StateHash(incremental)
	if err != nil {
		report.Err = fmt.Sprintf("hash incremental replay: %v", err)
		return report
	}
	report.FullHash = fullHash
	report.IncrementalHash = incHash

	if fullHash == incHash {
		report.OK = true
		return report
	}
	report.OK = false
	report.Mismatch = firstDivergence("", full.CanonicalMap(), incremental.CanonicalMap())
	if report.Mismatch != nil {
		report.Err = fmt.Sprintf("states diverge at %s", report.Mismatch.Path)
	} else {
		report.Err = "hashes differ but no structural divergence found"
	}
	return report
}

// firstDivergence walks two canonical maps in sorted key order and returns
// the first differing path, or nil when the values are equal.
func firstDivergence(path string, expected, actual any) *Mismatch {
	switch ev := expected.(type) {
	case map[string]any:
		av, ok := actual.(map[string]any)
		if !ok {
			return &Mismatch{Path: path, Expected: render(expected), Actual: render(actual)}
		}
		keys := map[string]bool{}
		for k := range ev {
			keys[k] = true
		}
		for k := range av {
			keys[k] = true
		}
		sorted := make([]string, 0, len(keys))
		for k := range keys {
			sorted = append(sorted, k)
		}
		sort.Strings(sorted)
		for _, k := range sorted {
			e, eOK := ev[k]
			a, aOK := av[k]
			childPath := joinPath(path, k)
			if !eOK || !aOK {
				return &Mismatch{Path: childPath, Expected: render(e), Actual: render(a)}
			}
			if m := firstDivergence(childPath, e, a); m != nil {
				return m
			}
		}
		return nil
	case []any:
		av, ok := actual.([]any)
		if !ok {
			return &Mismatch{Path: path, Expected: render(expected), Actual: render(actual)}
		}
		n := len(ev)
		if len(av) > n {
			n = len(av)
		}
		for i := 0; i < n; i++ {
			childPath := fmt.Sprintf("%s[%d]", path, i)
			if i >= len(ev) || i >= len(av) {
				var e, a any
				if i < len(ev) {
					e = ev[i]
				}
				if i < len(av) {
					a = av[i]
				}
				return &Mismatch{Path: childPath, Expected: render(e), Actual: render(a)}
			}
			if m := firstDivergence(childPath, ev[i], av[i]); m != nil {
				return m
			}
		}
		return nil
	default:
		if render(expected) != render(actual) {
			return &Mismatch{Path: path, Expected: render(expected), Actual: render(actual)}
		}
		return nil
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func render(v any) string {
	if v == nil {
		return "<absent>"
	}
	b, err := match.MarshalCanonical(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
