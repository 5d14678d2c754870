package match

// EventKind discriminates the BallEvent union.
type EventKind string

const (
	// KindRun is a delivery scored off the bat (0, 1, 2, 3, 4 or 6).
	KindRun EventKind = "run"

	// KindExtra is a wide, no-ball, bye or leg-bye.
	KindExtra EventKind = "extra"

	// KindWicket is a dismissal.
	KindWicket EventKind = "wicket"

	// KindPhaseChange switches between regular play and a super over.
	KindPhaseChange EventKind = "phase_change"

	// KindInterruption records a rain interruption with revised overs.
	KindInterruption EventKind = "interruption"
)

// Phase identifies which innings pair an event belongs to.
type Phase string

const (
	PhaseRegular   Phase = "regular"
	PhaseSuperOver Phase = "super_over"
)

// ExtraType classifies runs not scored off the bat.
type ExtraType string

const (
	ExtraWide   ExtraType = "wide"
	ExtraNoBall ExtraType = "no_ball"
	ExtraBye    ExtraType = "bye"
	ExtraLegBye ExtraType = "leg_bye"
)

// DismissalType classifies how a batter got out.
type DismissalType string

const (
	DismissalBowled      DismissalType = "bowled"
	DismissalCaught      DismissalType = "caught"
	DismissalLBW         DismissalType = "lbw"
	DismissalRunOut      DismissalType = "run_out"
	DismissalStumped     DismissalType = "stumped"
	DismissalHitWicket   DismissalType = "hit_wicket"
	DismissalRetiredHurt DismissalType = "retired_hurt"
)

// BowlerCredited reports whether a dismissal counts toward the bowler's
// wicket tally. Run-outs and retirements do not.
func (d DismissalType) BowlerCredited() bool {
	switch d {
	case DismissalBowled, DismissalCaught, DismissalLBW, DismissalStumped, DismissalHitWicket:
		return true
	}
	return false
}

// BallEvent is one entry in a match's ordered ball log.
//
// It is a closed tagged union discriminated by Kind. Exactly one variant
// payload is meaningful for a given kind; the zero values of the others are
// ignored by every consumer. The common identity fields (match, striker,
// non-striker, bowler) are stamped by the submitting scorer and describe who
// was involved at the moment the ball was bowled.
//
// Events never change after they are appended. Their sequence position in the
// log is their only identity.
type BallEvent struct {
	Kind EventKind `json:"kind" yaml:"kind"`

	MatchID      string `json:"match_id" yaml:"match_id"`
	StrikerID    string `json:"striker_id" yaml:"striker_id"`
	NonStrikerID string `json:"non_striker_id" yaml:"non_striker_id"`
	BowlerID     string `json:"bowler_id" yaml:"bowler_id"`

	// Over and Ball are optional display hints from the scorer. The engine
	// derives its own over/ball position from the legal-ball count and never
	// trusts these.
	Over *int `json:"over,omitempty" yaml:"over,omitempty"`
	Ball *int `json:"ball,omitempty" yaml:"ball,omitempty"`

	// Kind == KindRun: runs scored off the bat (0, 1, 2, 3, 4, 6).
	Runs int `json:"runs,omitempty" yaml:"runs,omitempty"`

	// Kind == KindExtra.
	ExtraType ExtraType `json:"extra_type,omitempty" yaml:"extra_type,omitempty"`
	// RunsOffBat applies to no-balls only: runs the striker hit off the
	// illegal delivery.
	RunsOffBat int `json:"runs_off_bat,omitempty" yaml:"runs_off_bat,omitempty"`
	// AdditionalRuns are runs physically run (or boundary extras) on top of
	// any fixed penalty run.
	AdditionalRuns int `json:"additional_runs,omitempty" yaml:"additional_runs,omitempty"`

	// Kind == KindWicket.
	Dismissal    DismissalType `json:"dismissal,omitempty" yaml:"dismissal,omitempty"`
	FielderID    string        `json:"fielder_id,omitempty" yaml:"fielder_id,omitempty"`
	NewBatsmanID string        `json:"new_batsman_id,omitempty" yaml:"new_batsman_id,omitempty"`

	// Kind == KindPhaseChange.
	NewPhase Phase `json:"new_phase,omitempty" yaml:"new_phase,omitempty"`

	// Kind == KindInterruption.
	RevisedOvers int `json:"revised_overs,omitempty" yaml:"revised_overs,omitempty"`
}

// IsBallInPlay reports whether the event represents an actual delivery
// (run, extra or wicket) as opposed to a match-control event.
func (e BallEvent) IsBallInPlay() bool {
	switch e.Kind {
	case KindRun, KindExtra, KindWicket:
		return true
	}
	return false
}

// IsLegalDelivery reports whether the event consumes one of the over's six
// balls. Wides and no-balls do not; everything else in play does.
func (e BallEvent) IsLegalDelivery() bool {
	if !e.IsBallInPlay() {
		return false
	}
	if e.Kind == KindExtra && (e.ExtraType == ExtraWide || e.ExtraType == ExtraNoBall) {
		return false
	}
	return true
}

// PhysicalRuns returns the number of runs the batters actually ran on this
// delivery. This drives strike rotation: the fixed wide/no-ball penalty run
// is excluded, runs run (and runs off the bat on a no-ball) are included.
func (e BallEvent) PhysicalRuns() int {
	switch e.Kind {
	case KindRun:
		return e.Runs
	case KindExtra:
		switch e.ExtraType {
		case ExtraWide, ExtraBye, ExtraLegBye:
			return e.AdditionalRuns
		case ExtraNoBall:
			return e.RunsOffBat + e.AdditionalRuns
		}
	}
	return 0
}

// TotalRuns returns the full number of runs the event adds to the innings
// total, including penalty runs for illegal deliveries.
func (e BallEvent) TotalRuns() int {
	switch e.Kind {
	case KindRun:
		return e.Runs
	case KindExtra:
		switch e.ExtraType {
		case ExtraWide:
			return 1 + e.AdditionalRuns
		case ExtraNoBall:
			return 1 + e.AdditionalRuns + e.RunsOffBat
		case ExtraBye, ExtraLegBye:
			return e.AdditionalRuns
		}
	}
	return 0
}
