package engine

import (
	"fmt"

	"github.com/willowlog/willow/internal/match"
)

// ChaseTarget returns the runs the side batting second must reach, and
// whether a chase is underway in the current phase. A rain-revised target
// takes precedence over the natural first-innings-plus-one.
func ChaseTarget(s *match.MatchState) (int, bool) {
	set := s.Innings
	if s.Phase == match.PhaseSuperOver {
		set = s.SuperOvers
	}
	if len(set) == 0 || !set[0].Done {
		return 0, false
	}
	if s.Phase == match.PhaseRegular && s.Interruption != nil && s.Interruption.RevisedTarget > 0 {
		return s.Interruption.RevisedTarget, true
	}
	return set[0].Runs + 1, true
}

// deriveResult inspects the state for a decided match, returning nil while
// the match is still undecided. It never mutates s.
//
// The rules, in order:
//   - chasing side reaches the target: win by wickets in hand
//   - chase innings closes short of target-1: win for the defenders by runs
//   - chase innings closes on exactly target-1: tie
//
// A tie in the super-over phase is terminal; the reducer's lock enforces
// that, not this function.
func deriveResult(s *match.MatchState) *match.MatchResult {
	set := s.Innings
	if s.Phase == match.PhaseSuperOver {
		set = s.SuperOvers
	}
	if len(set) < 2 {
		return nil
	}
	target, ok := ChaseTarget(s)
	if !ok {
		return nil
	}
	chase := set[1]

	if chase.Runs >= target {
		margin := s.MaxWickets() - chase.Wickets
		return &match.MatchResult{
			Type:         match.ResultWin,
			WinnerTeamID: chase.BattingTeamID,
			Description:  winDescription(s, chase.BattingTeamID, margin, "wicket"),
		}
	}
	if !chase.Done {
		return nil
	}
	if chase.Runs < target-1 {
		margin := target - 1 - chase.Runs
		return &match.MatchResult{
			Type:         match.ResultWin,
			WinnerTeamID: chase.BowlingTeamID,
			Description:  winDescription(s, chase.BowlingTeamID, margin, "run"),
		}
	}
	desc := "Match tied"
	if s.Phase == match.PhaseSuperOver {
		desc = "Match tied (Super Over)"
	}
	return &match.MatchResult{Type: match.ResultTie, Description: desc}
}

func winDescription(s *match.MatchState, teamID string, margin int, unit string) string {
	if margin != 1 {
		unit += "s"
	}
	desc := fmt.Sprintf("%s won by %d %s", s.TeamName(teamID), margin, unit)
	if s.Phase == match.PhaseSuperOver {
		desc += " (Super Over)"
	}
	return desc
}
