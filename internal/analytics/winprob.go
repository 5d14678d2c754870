package analytics

import (
	"github.com/willowlog/willow/internal/match"
)

// Win-probability heuristic coefficients. The model: start at even odds,
// reward a required rate below six an over, reward wickets in hand, reward
// time remaining, and clamp so neither side is ever shown as certain.
const (
	winProbBase         = 50.0
	winProbParRate      = 6.0
	winProbRateWeight   = 4.0
	winProbWicketWeight = 3.5
	winProbBallsWeight  = 15.0
	winProbFloor        = 2.0
	winProbCeiling      = 98.0
)

// WinProbability is the heuristic chance of each side winning, in percent.
// The two percentages always sum to 100.
type WinProbability struct {
	ChasingTeamID   string  `json:"chasing_team_id"`
	DefendingTeamID string  `json:"defending_team_id"`
	ChasePercent    float64 `json:"chase_percent"`
	DefendPercent   float64 `json:"defend_percent"`
}

// ChaseWinProbability estimates the chasing side's chances. Defined only
// during a live chase; ok is false otherwise. This is a display heuristic,
// deterministic by construction, with no statistical claim.
func ChaseWinProbability(s *match.MatchState) (WinProbability, bool) {
	target, runs, ballsFaced, ballsTotal, ok := chaseNumbers(s)
	if !ok {
		return WinProbability{}, false
	}
	set := s.Innings
	if s.Phase == match.PhaseSuperOver {
		set = s.SuperOvers
	}
	chase := set[1]

	needed := target - runs
	remaining := ballsTotal - ballsFaced
	wicketsInHand := s.MaxWickets() - chase.Wickets

	var required float64
	switch {
	case needed <= 0:
		required = 0
	case remaining <= 0:
		required = winProbParRate * 4 // hopeless; push toward the floor
	default:
		required = rate(needed, remaining)
	}

	p := winProbBase
	p += (winProbParRate - required) * winProbRateWeight
	p += float64(wicketsInHand) * winProbWicketWeight
	if ballsTotal > 0 {
		p += float64(remaining) / float64(ballsTotal) * winProbBallsWeight
	}
	p = clamp(p, winProbFloor, winProbCeiling)

	return WinProbability{
		ChasingTeamID:   chase.BattingTeamID,
		DefendingTeamID: chase.BowlingTeamID,
		ChasePercent:    p,
		DefendPercent:   100 - p,
	}, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
