package match

// Format limits.
const (
	BallsPerOver = 6

	// MaxWicketsRegular is the wicket ceiling of a regular innings.
	MaxWicketsRegular = 10

	// MaxWicketsSuperOver is the wicket ceiling of a super-over innings.
	MaxWicketsSuperOver = 2

	// SuperOverBalls is the ball ceiling of a super-over innings.
	SuperOverBalls = 6
)

// MatchStatus is the lifecycle of a match.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "scheduled"
	StatusLive      MatchStatus = "live"
	StatusCompleted MatchStatus = "completed"
	StatusAbandoned MatchStatus = "abandoned"
)

// ResultType classifies a decided match.
type ResultType string

const (
	ResultWin      ResultType = "win"
	ResultTie      ResultType = "tie"
	ResultNoResult ResultType = "no_result"
)

// MatchResult records the outcome once the match is decided.
type MatchResult struct {
	Type         ResultType `json:"type"`
	WinnerTeamID string     `json:"winner_team_id,omitempty"`
	Description  string     `json:"description"`
}

// MatchInterruption records a rain interruption.
// RevisedTarget is zero until the first innings is complete, at which point
// the engine computes and stores the DLS-lite target.
type MatchInterruption struct {
	RevisedOvers  int `json:"revised_overs"`
	RevisedTarget int `json:"revised_target,omitempty"`
}

// ExtrasBreakdown itemizes runs not scored off the bat.
type ExtrasBreakdown struct {
	Wides     int `json:"wides"`
	NoBalls   int `json:"no_balls"`
	Byes      int `json:"byes"`
	LegByes   int `json:"leg_byes"`
	Penalties int `json:"penalties"`
}

// Total returns the sum of all extras buckets.
func (e ExtrasBreakdown) Total() int {
	return e.Wides + e.NoBalls + e.Byes + e.LegByes + e.Penalties
}

// BatterState is the engine's running record for one batter.
type BatterState struct {
	Runs  int  `json:"runs"`
	Balls int  `json:"balls"`
	Fours int  `json:"fours"`
	Sixes int  `json:"sixes"`
	Out   bool `json:"out"`

	// Set when Out is true.
	Dismissal DismissalType `json:"dismissal,omitempty"`
	FielderID string        `json:"fielder_id,omitempty"`
	BowlerID  string        `json:"bowler_id,omitempty"`
}

// BowlerState is the engine's running record for one bowler.
type BowlerState struct {
	Balls        int `json:"balls"`
	Maidens      int `json:"maidens"`
	RunsConceded int `json:"runs_conceded"`
	Wickets      int `json:"wickets"`
}

// InningsState is the running score of one innings.
//
// StrikerID, NonStrikerID and BowlerID may be empty between overs or while a
// wicket awaits a replacement batter. Batters and Bowlers accumulate a record
// per player id; BattingOrder preserves arrival order for scorecards.
type InningsState struct {
	BattingTeamID string `json:"batting_team_id"`
	BowlingTeamID string `json:"bowling_team_id"`

	Runs    int  `json:"runs"`
	Wickets int  `json:"wickets"`
	Balls   int  `json:"balls"` // legal deliveries only
	Done    bool `json:"done"`

	Extras ExtrasBreakdown `json:"extras"`

	Batters      map[string]*BatterState `json:"batters"`
	Bowlers      map[string]*BowlerState `json:"bowlers"`
	BattingOrder []string                `json:"batting_order"`

	StrikerID    string `json:"striker_id,omitempty"`
	NonStrikerID string `json:"non_striker_id,omitempty"`
	BowlerID     string `json:"bowler_id,omitempty"`

	// OverRuns accumulates the bowler-conceded runs of the over in progress,
	// for maiden detection. Reset when the over completes.
	OverRuns int `json:"over_runs"`
}

// NewInnings creates an empty innings for the given team pairing.
func NewInnings(battingTeamID, bowlingTeamID string) *InningsState {
	return &InningsState{
		BattingTeamID: battingTeamID,
		BowlingTeamID: bowlingTeamID,
		Batters:       map[string]*BatterState{},
		Bowlers:       map[string]*BowlerState{},
	}
}

// Batter returns the record for id, creating a zeroed one on first access.
func (in *InningsState) Batter(id string) *BatterState {
	if b, ok := in.Batters[id]; ok {
		return b
	}
	b := &BatterState{}
	in.Batters[id] = b
	in.BattingOrder = append(in.BattingOrder, id)
	return b
}

// Bowler returns the record for id, creating a zeroed one on first access.
func (in *InningsState) Bowler(id string) *BowlerState {
	if b, ok := in.Bowlers[id]; ok {
		return b
	}
	b := &BowlerState{}
	in.Bowlers[id] = b
	return b
}

// Clone deep-copies the innings. The engine clones only the innings a
// transition touches; untouched innings are shared between states.
func (in *InningsState) Clone() *InningsState {
	out := *in
	out.Batters = make(map[string]*BatterState, len(in.Batters))
	for id, b := range in.Batters {
		c := *b
		out.Batters[id] = &c
	}
	out.Bowlers = make(map[string]*BowlerState, len(in.Bowlers))
	for id, b := range in.Bowlers {
		c := *b
		out.Bowlers[id] = &c
	}
	out.BattingOrder = append([]string(nil), in.BattingOrder...)
	return &out
}

// MatchState is the full reconstructed state of a match.
//
// A MatchState is created once from a MatchConfig and thereafter only ever
// replaced wholesale by the engine. Version increments on every application,
// including no-ops, so any two states from the same event prefix agree on it.
type MatchState struct {
	MatchID string      `json:"match_id"`
	Status  MatchStatus `json:"status"`
	Phase   Phase       `json:"phase"`
	Version int         `json:"version"`

	CurrentInnings int              `json:"current_innings"`
	TotalOvers     int              `json:"total_overs"`
	Powerplay      *PowerplayConfig `json:"powerplay,omitempty"`

	// Innings is appended lazily: index 0 on the first ball, index 1 when the
	// first innings completes. SuperOvers follows the same pattern after a
	// phase change.
	Innings    []*InningsState `json:"innings"`
	SuperOvers []*InningsState `json:"super_overs,omitempty"`

	Teams map[string]Team `json:"teams"`

	// TeamOrder records batting order for the regular innings: index 0 bats
	// first. The registry map alone cannot express this.
	TeamOrder []string `json:"team_order"`

	Interruption *MatchInterruption `json:"interruption,omitempty"`
	Result       *MatchResult       `json:"result,omitempty"`
}

// NewState builds the initial state for a match. No innings exists yet; the
// first innings is created when the first ball is bowled.
func NewState(cfg MatchConfig) *MatchState {
	return &MatchState{
		MatchID:    cfg.MatchID,
		Status:     StatusScheduled,
		Phase:      PhaseRegular,
		TotalOvers: cfg.OversPerInnings,
		Powerplay:  cfg.Powerplay,
		Teams: map[string]Team{
			cfg.TeamA.ID: cfg.TeamA,
			cfg.TeamB.ID: cfg.TeamB,
		},
		TeamOrder: []string{cfg.TeamA.ID, cfg.TeamB.ID},
	}
}

// Clone copies the state shell: slice headers are fresh but innings pointers
// are shared. Callers that mutate an innings must swap in a Clone of it
// first. The team registry is immutable after NewState and stays shared.
func (s *MatchState) Clone() *MatchState {
	out := *s
	out.Innings = append([]*InningsState(nil), s.Innings...)
	out.SuperOvers = append([]*InningsState(nil), s.SuperOvers...)
	if s.Interruption != nil {
		c := *s.Interruption
		out.Interruption = &c
	}
	if s.Result != nil {
		c := *s.Result
		out.Result = &c
	}
	return &out
}

// ActiveInnings returns the innings currently receiving deliveries, or nil
// when none exists yet (before the first ball of a phase).
func (s *MatchState) ActiveInnings() *InningsState {
	set := s.Innings
	if s.Phase == PhaseSuperOver {
		set = s.SuperOvers
	}
	for _, in := range set {
		if !in.Done {
			return in
		}
	}
	return nil
}

// EffectiveOvers returns the per-innings over allotment, accounting for a
// rain revision. A super-over innings is always one over.
func (s *MatchState) EffectiveOvers() int {
	if s.Phase == PhaseSuperOver {
		return 1
	}
	if s.Interruption != nil {
		return s.Interruption.RevisedOvers
	}
	return s.TotalOvers
}

// MaxWickets returns the wicket ceiling for the current phase.
func (s *MatchState) MaxWickets() int {
	if s.Phase == PhaseSuperOver {
		return MaxWicketsSuperOver
	}
	return MaxWicketsRegular
}

// TeamName resolves a team id to its display name, falling back to the id
// for unknown teams.
func (s *MatchState) TeamName(id string) string {
	if t, ok := s.Teams[id]; ok && t.Name != "" {
		return t.Name
	}
	return id
}
