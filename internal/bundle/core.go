package bundle

import (
	"github.com/willowlog/willow/internal/engine"
	"github.com/willowlog/willow/internal/match"
	"github.com/willowlog/willow/internal/stats"
)

// Core is the eagerly computed layer: everything a live scoreboard needs
// without touching the lazy derivations.
type Core struct {
	State *match.MatchState `json:"state"`

	Score       ScoreProjection  `json:"score"`
	CurrentOver []string         `json:"current_over"` // scorebook tokens
	LastBall    *match.BallEvent `json:"last_ball,omitempty"`
	Chase       *ChaseInfo       `json:"chase,omitempty"`
}

// ScoreProjection is the domain-facing summary of the match.
type ScoreProjection struct {
	MatchID string            `json:"match_id"`
	Status  match.MatchStatus `json:"status"`
	Phase   match.Phase       `json:"phase"`
	Innings []InningsScore    `json:"innings"`
	Result  string            `json:"result,omitempty"`
}

// InningsScore is one innings line of the summary.
type InningsScore struct {
	TeamID   string  `json:"team_id"`
	TeamName string  `json:"team_name"`
	Runs     int     `json:"runs"`
	Wickets  int     `json:"wickets"`
	Overs    string  `json:"overs"`
	RunRate  float64 `json:"run_rate"`
	Done     bool    `json:"done"`
}

// ChaseInfo is the live chase arithmetic, present once a target exists.
type ChaseInfo struct {
	Target         int     `json:"target"`
	RunsNeeded     int     `json:"runs_needed"`
	BallsRemaining int     `json:"balls_remaining"`
	RequiredRate   float64 `json:"required_rate"`
}

func buildCore(state *match.MatchState, events []match.BallEvent) Core {
	core := Core{State: state}
	core.Score = project(state)
	core.CurrentOver = currentOverTokens(events, state)
	if len(events) > 0 {
		last := events[len(events)-1]
		core.LastBall = &last
	}
	core.Chase = chaseInfo(state)
	return core
}

func project(s *match.MatchState) ScoreProjection {
	p := ScoreProjection{
		MatchID: s.MatchID,
		Status:  s.Status,
		Phase:   s.Phase,
	}
	for _, in := range s.Innings {
		p.Innings = append(p.Innings, inningsScore(s, in))
	}
	for _, in := range s.SuperOvers {
		p.Innings = append(p.Innings, inningsScore(s, in))
	}
	if s.Result != nil {
		p.Result = s.Result.Description
	}
	return p
}

func inningsScore(s *match.MatchState, in *match.InningsState) InningsScore {
	rate := 0.0
	if in.Balls > 0 {
		rate = float64(in.Runs) * match.BallsPerOver / float64(in.Balls)
	}
	return InningsScore{
		TeamID:   in.BattingTeamID,
		TeamName: s.TeamName(in.BattingTeamID),
		Runs:     in.Runs,
		Wickets:  in.Wickets,
		Overs:    stats.OversString(in.Balls),
		RunRate:  rate,
		Done:     in.Done,
	}
}

// currentOverTokens renders the deliveries of the over in progress in the
// active innings, oldest first. Empty at an over boundary.
func currentOverTokens(events []match.BallEvent, s *match.MatchState) []string {
	in := s.ActiveInnings()
	if in == nil || in.Balls%match.BallsPerOver == 0 {
		return nil
	}
	phaseEvents := engine.FilterCurrentPhase(events, s.Phase)

	// Walk backwards until the previous over boundary: count the legal
	// deliveries of the partial over, collecting tokens along the way.
	need := in.Balls % match.BallsPerOver
	var tokens []string
	for i := len(phaseEvents) - 1; i >= 0; i-- {
		e := phaseEvents[i]
		if !e.IsBallInPlay() {
			continue
		}
		if e.IsLegalDelivery() {
			if need == 0 {
				break // previous over's final ball
			}
			need--
		}
		tokens = append([]string{e.Token()}, tokens...)
	}
	return tokens
}

func chaseInfo(s *match.MatchState) *ChaseInfo {
	target, ok := engine.ChaseTarget(s)
	if !ok {
		return nil
	}
	set := s.Innings
	if s.Phase == match.PhaseSuperOver {
		set = s.SuperOvers
	}
	info := &ChaseInfo{Target: target}
	if len(set) > 1 {
		chase := set[1]
		info.RunsNeeded = target - chase.Runs
		if info.RunsNeeded < 0 {
			info.RunsNeeded = 0
		}
		info.BallsRemaining = s.EffectiveOvers()*match.BallsPerOver - chase.Balls
		if info.BallsRemaining > 0 && info.RunsNeeded > 0 {
			info.RequiredRate = float64(info.RunsNeeded) * match.BallsPerOver / float64(info.BallsRemaining)
		}
	} else {
		info.RunsNeeded = target
		info.BallsRemaining = s.EffectiveOvers() * match.BallsPerOver
		if info.BallsRemaining > 0 {
			info.RequiredRate = float64(info.RunsNeeded) * match.BallsPerOver / float64(info.BallsRemaining)
		}
	}
	return info
}
