package harness

import (
	"fmt"
	"strings"

	"github.com/willowlog/willow/internal/engine"
	"github.com/willowlog/willow/internal/match"
)

// CompileEvents turns a scenario's flow into a fully stamped event log.
//
// A real scoring app stamps striker, non-striker and bowler from its live
// view of the match; the compiler does the same by folding the engine as it
// goes. Batting order follows the roster (openers first, replacements in
// roster order), and bowlers rotate through the fielding roster by over
// number. The output is deterministic: the same scenario always compiles to
// the same log.
func CompileEvents(sc *Scenario) ([]match.BallEvent, error) {
	c := &compiler{
		cfg:   sc.Config,
		state: match.NewState(sc.Config),
	}
	for i, step := range sc.Flow {
		var err error
		switch {
		case step.Balls != "":
			err = c.addBalls(step.Balls)
		case step.Rain != 0:
			c.addControl(match.BallEvent{Kind: match.KindInterruption, RevisedOvers: step.Rain})
		case step.SuperOver:
			c.addControl(match.BallEvent{Kind: match.KindPhaseChange, NewPhase: match.PhaseSuperOver})
		}
		if err != nil {
			return nil, fmt.Errorf("flow[%d]: %w", i, err)
		}
	}
	return c.events, nil
}

type compiler struct {
	cfg    match.MatchConfig
	state  *match.MatchState
	events []match.BallEvent

	// usedBatters counts how deep into the batting roster the current
	// innings is; reset when the innings changes.
	usedBatters int
	inningsKey  string // identity of the innings usedBatters refers to
}

func (c *compiler) addControl(e match.BallEvent) {
	e.MatchID = c.cfg.MatchID
	c.events = append(c.events, e)
	c.state = engine.Apply(c.state, e)
}

func (c *compiler) addBalls(balls string) error {
	for _, tok := range strings.Fields(balls) {
		t, err := parseToken(tok)
		if err != nil {
			return err
		}
		e, err := c.stamp(t)
		if err != nil {
			return err
		}
		c.events = append(c.events, e)
		c.state = engine.Apply(c.state, e)
	}
	return nil
}

// stamp fills the identity fields for one parsed token from the compiler's
// folded view of the match.
func (c *compiler) stamp(t ballToken) (match.BallEvent, error) {
	batTeam, bowlTeam, in := c.creaseTeams()
	if len(batTeam.Players) < 2 {
		return match.BallEvent{}, fmt.Errorf("team %s needs at least two players", batTeam.ID)
	}

	key := string(c.state.Phase) + "/" + batTeam.ID
	if key != c.inningsKey {
		c.inningsKey = key
		c.usedBatters = 2
	}

	striker := c.cfg.InitialStrikerID
	nonStriker := c.cfg.InitialNonStrikerID
	balls := 0
	if in != nil {
		striker, nonStriker = in.StrikerID, in.NonStrikerID
		balls = in.Balls
	}
	if striker == "" && nonStriker == "" {
		striker = batTeam.Players[0].ID
		nonStriker = batTeam.Players[1].ID
	}

	bowler := ""
	if in != nil {
		bowler = in.BowlerID
	}
	if bowler == "" {
		bowler = c.nextBowler(bowlTeam, balls)
	}

	e := match.BallEvent{
		Kind:         t.kind,
		MatchID:      c.cfg.MatchID,
		StrikerID:    striker,
		NonStrikerID: nonStriker,
		BowlerID:     bowler,

		Runs:           t.runs,
		ExtraType:      t.extraType,
		RunsOffBat:     t.runsOffBat,
		AdditionalRuns: t.additional,
		Dismissal:      t.dismissal,
	}
	if t.kind == match.KindWicket {
		if c.usedBatters < len(batTeam.Players) {
			e.NewBatsmanID = batTeam.Players[c.usedBatters].ID
			c.usedBatters++
		}
	}
	return e, nil
}

// creaseTeams resolves the batting and bowling rosters for the next ball,
// along with the active innings when one exists.
func (c *compiler) creaseTeams() (bat, bowl match.Team, in *match.InningsState) {
	in = c.state.ActiveInnings()
	if in != nil {
		return c.state.Teams[in.BattingTeamID], c.state.Teams[in.BowlingTeamID], in
	}
	// Before the first ball of the match.
	return c.cfg.TeamA, c.cfg.TeamB, nil
}

// nextBowler rotates through the fielding roster by over number, honouring
// the configured opening bowler for the first over of the match.
func (c *compiler) nextBowler(team match.Team, ballsSoFar int) string {
	over := ballsSoFar / match.BallsPerOver
	if over == 0 && c.cfg.InitialBowlerID != "" && c.state.Phase == match.PhaseRegular {
		for _, p := range team.Players {
			if p.ID == c.cfg.InitialBowlerID {
				return p.ID
			}
		}
	}
	if len(team.Players) == 0 {
		return ""
	}
	return team.Players[over%len(team.Players)].ID
}
