package harness

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/willowlog/willow/internal/match"
)

// Scenario defines a conformance test scenario: a match configuration, a
// flow of deliveries, and assertions on the final state.
type Scenario struct {
	// Name uniquely identifies this scenario; golden files use it.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Config is the match setup the log is folded from.
	Config match.MatchConfig `yaml:"config"`

	// Flow is the ordered list of steps. Each step is either a Balls string
	// of scorebook tokens, a Rain revision, or a SuperOver transition.
	Flow []FlowStep `yaml:"flow"`

	// Assertions validate the final state and derived layers.
	Assertions []Assertion `yaml:"assertions"`
}

// FlowStep is one step of the scenario flow. Exactly one field is set.
type FlowStep struct {
	// Balls is a whitespace-separated run of scorebook tokens:
	//
	//	0 1 2 3 4 6        runs off the bat
	//	wd  wd+2           wide, wide plus runs run
	//	nb  nb+4           no-ball, no-ball plus runs off the bat
	//	b+1 lb+2           byes, leg byes
	//	W  W:caught        wicket (bowled unless a dismissal is given)
	Balls string `yaml:"balls,omitempty"`

	// Rain revises the over allotment mid-match.
	Rain int `yaml:"rain,omitempty"`

	// SuperOver transitions to the super-over phase.
	SuperOver bool `yaml:"super_over,omitempty"`
}

// Assertion validates one aspect of the final state.
type Assertion struct {
	// Type: "score", "result", "target", "batter", "bowler", "milestone".
	Type string `yaml:"type"`

	// score: which innings (phase-relative index) and the expected line.
	Innings   int  `yaml:"innings,omitempty"`
	SuperOver bool `yaml:"super_over,omitempty"` // score: check the super-over set
	Runs      *int `yaml:"runs,omitempty"`
	Wickets   *int `yaml:"wickets,omitempty"`
	Balls     *int `yaml:"balls,omitempty"`

	// result: expected outcome.
	Result      match.ResultType `yaml:"result,omitempty"`
	Winner      string           `yaml:"winner,omitempty"`
	Description string           `yaml:"description,omitempty"`

	// target: expected chase target.
	Target int `yaml:"target,omitempty"`

	// batter/bowler/milestone: the player and expected figures.
	Player    string `yaml:"player,omitempty"`
	Milestone string `yaml:"milestone,omitempty"`
	Count     *int   `yaml:"count,omitempty"` // milestone: occurrences
}

// Assertion type constants.
const (
	AssertScore     = "score"
	AssertResult    = "result"
	AssertTarget    = "target"
	AssertBatter    = "batter"
	AssertBowler    = "bowler"
	AssertMilestone = "milestone"
)

// LoadScenario reads and validates a scenario yaml file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks the scenario's static shape before compilation.
func (sc *Scenario) Validate() error {
	if sc.Name == "" {
		return fmt.Errorf("missing name")
	}
	if sc.Config.MatchID == "" {
		return fmt.Errorf("missing config.match_id")
	}
	if sc.Config.OversPerInnings <= 0 {
		return fmt.Errorf("config.overs_per_innings must be positive")
	}
	if len(sc.Config.TeamA.Players) == 0 || len(sc.Config.TeamB.Players) == 0 {
		return fmt.Errorf("both teams need players")
	}
	for i, step := range sc.Flow {
		set := 0
		if step.Balls != "" {
			set++
			for _, tok := range strings.Fields(step.Balls) {
				if _, err := parseToken(tok); err != nil {
					return fmt.Errorf("flow[%d]: %w", i, err)
				}
			}
		}
		if step.Rain != 0 {
			set++
		}
		if step.SuperOver {
			set++
		}
		if set != 1 {
			return fmt.Errorf("flow[%d]: exactly one of balls, rain, super_over must be set", i)
		}
	}
	for i, a := range sc.Assertions {
		switch a.Type {
		case AssertScore, AssertResult, AssertTarget, AssertBatter, AssertBowler, AssertMilestone:
		default:
			return fmt.Errorf("assertions[%d]: unknown type %q", i, a.Type)
		}
	}
	return nil
}

// ballToken is one parsed scorebook token before identity stamping.
type ballToken struct {
	kind       match.EventKind
	runs       int
	extraType  match.ExtraType
	runsOffBat int
	additional int
	dismissal  match.DismissalType
}

func parseToken(tok string) (ballToken, error) {
	if runs, err := strconv.Atoi(tok); err == nil {
		switch runs {
		case 0, 1, 2, 3, 4, 6:
			return ballToken{kind: match.KindRun, runs: runs}, nil
		}
		return ballToken{}, fmt.Errorf("invalid run token %q", tok)
	}

	if tok == "W" || strings.HasPrefix(tok, "W:") {
		t := ballToken{kind: match.KindWicket, dismissal: match.DismissalBowled}
		if rest, ok := strings.CutPrefix(tok, "W:"); ok {
			switch d := match.DismissalType(rest); d {
			case match.DismissalBowled, match.DismissalCaught, match.DismissalLBW,
				match.DismissalRunOut, match.DismissalStumped, match.DismissalHitWicket,
				match.DismissalRetiredHurt:
				t.dismissal = d
			default:
				return ballToken{}, fmt.Errorf("unknown dismissal %q", rest)
			}
		}
		return t, nil
	}

	base, suffix, hasSuffix := strings.Cut(tok, "+")
	extra := 0
	if hasSuffix {
		n, err := strconv.Atoi(suffix)
		if err != nil || n < 0 {
			return ballToken{}, fmt.Errorf("invalid extra suffix %q", tok)
		}
		extra = n
	}
	switch base {
	case "wd":
		return ballToken{kind: match.KindExtra, extraType: match.ExtraWide, additional: extra}, nil
	case "nb":
		return ballToken{kind: match.KindExtra, extraType: match.ExtraNoBall, runsOffBat: extra}, nil
	case "b":
		return ballToken{kind: match.KindExtra, extraType: match.ExtraBye, additional: extra}, nil
	case "lb":
		return ballToken{kind: match.KindExtra, extraType: match.ExtraLegBye, additional: extra}, nil
	}
	return ballToken{}, fmt.Errorf("unknown token %q", tok)
}
