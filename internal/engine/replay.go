package engine

import (
	"github.com/willowlog/willow/internal/match"
)

// Reconstruct folds the full event log into a MatchState.
//
// This is the only way to obtain a MatchState from a log. Reconstructing the
// same log twice yields byte-identical state, and folding a prefix then the
// remainder equals folding everything at once - the determinism contract the
// harness validates.
func Reconstruct(cfg match.MatchConfig, events []match.BallEvent) *match.MatchState {
	return ReconstructWith(NewReducer(nil), cfg, events)
}

// ReconstructAt folds only the first n events - the time-travel entry point
// for replay scrubbing. n is clamped to the log length.
func ReconstructAt(cfg match.MatchConfig, events []match.BallEvent, n int) *match.MatchState {
	if n < 0 {
		n = 0
	}
	if n > len(events) {
		n = len(events)
	}
	return Reconstruct(cfg, events[:n])
}

// ReconstructWith folds using a caller-supplied reducer, so callers that
// care about Metrics can pass their own.
func ReconstructWith(r *Reducer, cfg match.MatchConfig, events []match.BallEvent) *match.MatchState {
	s := match.NewState(cfg)
	for _, e := range events {
		s = r.Apply(s, e)
	}
	return s
}

// FilterCurrentPhase scopes a log to the phase being viewed.
//
// For the super-over phase it returns the events after the last phase
// change; for regular play, the events before the first one. Derived
// statistics run on the filtered slice so a super over never pollutes the
// regular scorecard.
func FilterCurrentPhase(events []match.BallEvent, phase match.Phase) []match.BallEvent {
	if phase == match.PhaseSuperOver {
		for i := len(events) - 1; i >= 0; i-- {
			if events[i].Kind == match.KindPhaseChange {
				return events[i+1:]
			}
		}
		return events
	}
	for i, e := range events {
		if e.Kind == match.KindPhaseChange {
			return events[:i]
		}
	}
	return events
}
