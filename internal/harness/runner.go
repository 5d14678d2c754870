package harness

import (
	"fmt"

	"github.com/willowlog/willow/internal/bundle"
)

// Result is the outcome of one scenario execution.
type Result struct {
	// Pass is true when the determinism check and every assertion hold.
	Pass bool `json:"pass"`

	// Errors lists every failed check. Empty when Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Determinism is the validator's report for the compiled log.
	Determinism DeterminismReport `json:"determinism"`

	// Events is the compiled log length.
	Events int `json:"events"`

	// Bundle exposes the derived layers for golden snapshots and further
	// inspection. Never nil on a non-error return.
	Bundle *bundle.Bundle `json:"-"`
}

func (r *Result) addError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Pass = false
}

// Run compiles and executes a scenario: build the log, verify determinism
// across every prefix, fold the bundle, and evaluate assertions. Assertion
// failures land in Result.Errors; only compilation problems are errors.
func Run(sc *Scenario) (*Result, error) {
	events, err := CompileEvents(sc)
	if err != nil {
		return nil, fmt.Errorf("compile scenario %s: %w", sc.Name, err)
	}

	res := &Result{Pass: true, Events: len(events)}
	res.Determinism = VerifyPrefixes(sc.Config, events)
	if !res.Determinism.OK {
		res.addError("determinism: %s", res.Determinism.Err)
	}

	res.Bundle = bundle.New(sc.Config, events)
	for i, a := range sc.Assertions {
		if msg := evaluate(res.Bundle, a); msg != "" {
			res.addError("assertions[%d] (%s): %s", i, a.Type, msg)
		}
	}
	return res, nil
}

// evaluate checks one assertion against the bundle, returning a failure
// message or "".
func evaluate(b *bundle.Bundle, a Assertion) string {
	state := b.Core().State
	switch a.Type {
	case AssertScore:
		set := state.Innings
		if a.SuperOver {
			set = state.SuperOvers
		}
		if a.Innings >= len(set) {
			return fmt.Sprintf("innings %d does not exist", a.Innings)
		}
		in := set[a.Innings]
		if a.Runs != nil && in.Runs != *a.Runs {
			return fmt.Sprintf("runs = %d, want %d", in.Runs, *a.Runs)
		}
		if a.Wickets != nil && in.Wickets != *a.Wickets {
			return fmt.Sprintf("wickets = %d, want %d", in.Wickets, *a.Wickets)
		}
		if a.Balls != nil && in.Balls != *a.Balls {
			return fmt.Sprintf("balls = %d, want %d", in.Balls, *a.Balls)
		}
		return ""

	case AssertResult:
		if a.Result == "" {
			if state.Result != nil {
				return fmt.Sprintf("unexpected result %q", state.Result.Description)
			}
			return ""
		}
		if state.Result == nil {
			return "no result decided"
		}
		if state.Result.Type != a.Result {
			return fmt.Sprintf("result = %s, want %s", state.Result.Type, a.Result)
		}
		if a.Winner != "" && state.Result.WinnerTeamID != a.Winner {
			return fmt.Sprintf("winner = %s, want %s", state.Result.WinnerTeamID, a.Winner)
		}
		if a.Description != "" && state.Result.Description != a.Description {
			return fmt.Sprintf("description = %q, want %q", state.Result.Description, a.Description)
		}
		return ""

	case AssertTarget:
		chase := b.Core().Chase
		if chase == nil {
			return "no chase in progress"
		}
		if chase.Target != a.Target {
			return fmt.Sprintf("target = %d, want %d", chase.Target, a.Target)
		}
		return ""

	case AssertBatter:
		for _, line := range b.Phase().Batting {
			if line.PlayerID != a.Player {
				continue
			}
			if a.Runs != nil && line.Runs != *a.Runs {
				return fmt.Sprintf("batter %s runs = %d, want %d", a.Player, line.Runs, *a.Runs)
			}
			if a.Balls != nil && line.Balls != *a.Balls {
				return fmt.Sprintf("batter %s balls = %d, want %d", a.Player, line.Balls, *a.Balls)
			}
			return ""
		}
		return fmt.Sprintf("batter %s not found", a.Player)

	case AssertBowler:
		for _, line := range b.Phase().Bowling {
			if line.PlayerID != a.Player {
				continue
			}
			if a.Wickets != nil && line.Wickets != *a.Wickets {
				return fmt.Sprintf("bowler %s wickets = %d, want %d", a.Player, line.Wickets, *a.Wickets)
			}
			if a.Runs != nil && line.RunsConceded != *a.Runs {
				return fmt.Sprintf("bowler %s conceded = %d, want %d", a.Player, line.RunsConceded, *a.Runs)
			}
			if a.Balls != nil && line.Balls != *a.Balls {
				return fmt.Sprintf("bowler %s balls = %d, want %d", a.Player, line.Balls, *a.Balls)
			}
			return ""
		}
		return fmt.Sprintf("bowler %s not found", a.Player)

	case AssertMilestone:
		count := 0
		for _, m := range b.Broadcast().Milestones {
			if string(m.Type) == a.Milestone && (a.Player == "" || m.PlayerID == a.Player) {
				count++
			}
		}
		want := 1
		if a.Count != nil {
			want = *a.Count
		}
		if count != want {
			return fmt.Sprintf("milestone %s count = %d, want %d", a.Milestone, count, want)
		}
		return ""
	}
	return fmt.Sprintf("unknown assertion type %q", a.Type)
}

