package store

import (
	"path/filepath"
	"testing"

	"github.com/willowlog/willow/internal/match"
)

// createTestStore creates a temp-file store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestConfig builds a minimal two-team match configuration.
func createTestConfig(matchID string) match.MatchConfig {
	return match.MatchConfig{
		MatchID: matchID,
		TeamA: match.Team{ID: "team-a", Name: "Alphas", Players: []match.Player{
			{ID: "a1"}, {ID: "a2"},
		}},
		TeamB: match.Team{ID: "team-b", Name: "Bravos", Players: []match.Player{
			{ID: "b1"}, {ID: "b2"},
		}},
		OversPerInnings: 20,
	}
}

// createTestBall builds a run event with identity stamped.
func createTestBall(matchID string, runs int) match.BallEvent {
	return match.BallEvent{
		Kind:         match.KindRun,
		MatchID:      matchID,
		StrikerID:    "a1",
		NonStrikerID: "a2",
		BowlerID:     "b1",
		Runs:         runs,
	}
}
