package engine

import (
	"github.com/willowlog/willow/internal/match"
)

// Reducer folds ball events into match state.
//
// The zero-value Reducer is usable; NewReducer attaches an optional Metrics
// sink. Reducers hold no match state of their own and may be reused across
// matches, but a single Metrics instance must not be shared across
// goroutines.
type Reducer struct {
	metrics *Metrics
}

// NewReducer creates a reducer. metrics may be nil.
func NewReducer(metrics *Metrics) *Reducer {
	return &Reducer{metrics: metrics}
}

// Apply is the package-level convenience for a one-off application without
// metrics.
func Apply(s *match.MatchState, e match.BallEvent) *match.MatchState {
	return (&Reducer{}).Apply(s, e)
}

// Apply computes the successor state for one event.
//
// Apply is pure and total: it never mutates s, never panics on malformed
// input, and always returns a state with Version incremented - even for
// events it absorbs as no-ops, so that full and incremental replays agree
// on the version counter.
func (r *Reducer) Apply(s *match.MatchState, e match.BallEvent) *match.MatchState {
	next := s.Clone()
	next.Version++

	// Terminal lock: once a side has won, or a super-over tie is recorded,
	// only a phase change can touch the state.
	if isTerminal(s) && e.Kind != match.KindPhaseChange {
		r.countGhost()
		return next
	}

	switch e.Kind {
	case match.KindPhaseChange:
		r.applyPhaseChange(next, e)
	case match.KindInterruption:
		r.applyInterruption(next, e)
	case match.KindRun, match.KindExtra, match.KindWicket:
		r.applyDelivery(next, e)
	default:
		r.countNoOp()
	}

	// Result derivation runs after every application so a win registered
	// mid-over locks the state before the next ball.
	if res := deriveResult(next); res != nil {
		next.Result = res
		next.Status = match.StatusCompleted
	}
	return next
}

// isTerminal reports whether score state is frozen.
func isTerminal(s *match.MatchState) bool {
	if s.Result == nil {
		return false
	}
	if s.Result.Type == match.ResultWin {
		return true
	}
	return s.Result.Type == match.ResultTie && s.Phase == match.PhaseSuperOver
}

func (r *Reducer) applyPhaseChange(next *match.MatchState, e match.BallEvent) {
	phase := e.NewPhase
	if phase != match.PhaseRegular && phase != match.PhaseSuperOver {
		r.countNoOp()
		return
	}
	next.Phase = phase
	if phase != match.PhaseSuperOver {
		r.countApplied()
		return
	}

	// Entering a super over voids the tie that caused it.
	next.Result = nil
	next.Status = match.StatusLive

	if len(next.SuperOvers) == 0 {
		bat, bowl, ok := superOverOpeningPair(next)
		if ok {
			next.SuperOvers = []*match.InningsState{match.NewInnings(bat, bowl)}
		}
	}
	r.countApplied()
}

// superOverOpeningPair seeds the first super-over innings from the second
// regular innings' pairing (the chasing side bats first again).
func superOverOpeningPair(s *match.MatchState) (bat, bowl string, ok bool) {
	switch {
	case len(s.Innings) >= 2:
		return s.Innings[1].BattingTeamID, s.Innings[1].BowlingTeamID, true
	case len(s.Innings) == 1:
		return s.Innings[0].BowlingTeamID, s.Innings[0].BattingTeamID, true
	}
	return "", "", false
}

func (r *Reducer) applyInterruption(next *match.MatchState, e match.BallEvent) {
	// Interruptions cannot shorten a super over, and a revision that does
	// not reduce the allotment is a no-op widening.
	if next.Phase == match.PhaseSuperOver ||
		e.RevisedOvers <= 0 ||
		e.RevisedOvers >= next.EffectiveOvers() {
		r.countNoOp()
		return
	}

	next.Interruption = &match.MatchInterruption{RevisedOvers: e.RevisedOvers}
	if len(next.Innings) > 0 && next.Innings[0].Done {
		next.Interruption.RevisedTarget = revisedTarget(next.Innings[0].Runs, next.TotalOvers, e.RevisedOvers)
	}
	r.countApplied()
}

// revisedTarget is the DLS-lite formula: scale the first-innings total to the
// revised allotment, floor, add one.
func revisedTarget(firstInningsRuns, totalOvers, revisedOvers int) int {
	if totalOvers <= 0 {
		return firstInningsRuns + 1
	}
	return firstInningsRuns*revisedOvers/totalOvers + 1
}

func (r *Reducer) applyDelivery(next *match.MatchState, e match.BallEvent) {
	if next.Status == match.StatusScheduled {
		next.Status = match.StatusLive
	}

	in := activeForWrite(next)
	if in == nil {
		r.countGhost()
		return
	}

	// Boundary enforcement: deliveries beyond the ball or wicket ceiling are
	// absorbed. The ceiling uses the rain-revised allotment when present.
	limit := next.EffectiveOvers() * match.BallsPerOver
	if in.Balls >= limit || in.Wickets >= next.MaxWickets() {
		r.countGhost()
		return
	}

	adoptCrease(in, e)

	switch e.Kind {
	case match.KindRun:
		scoreRun(in, e)
	case match.KindExtra:
		scoreExtra(in, e)
	case match.KindWicket:
		scoreWicket(in, e)
	}

	// Strike rotation rule one: odd physical runs swap the batters.
	if e.PhysicalRuns()%2 == 1 {
		in.StrikerID, in.NonStrikerID = in.NonStrikerID, in.StrikerID
	}

	// Strike rotation rule two: a completed over swaps them again. Both
	// rules can apply to the same ball.
	if e.IsLegalDelivery() && in.Balls%match.BallsPerOver == 0 {
		completeOver(in)
	}

	r.countApplied()
	finishInningsIfDue(next, in, limit)
}

// activeForWrite returns a writable clone of the active innings, swapped
// into next in place of the shared original. The first innings of a phase is
// created here on its first delivery.
func activeForWrite(next *match.MatchState) *match.InningsState {
	set := &next.Innings
	if next.Phase == match.PhaseSuperOver {
		set = &next.SuperOvers
		if len(*set) == 0 {
			// A delivery arriving in super-over phase before the phase
			// change seeded an innings has nowhere to land.
			return nil
		}
	} else if len(*set) == 0 {
		order := next.TeamOrder
		if len(order) < 2 {
			return nil
		}
		*set = []*match.InningsState{match.NewInnings(order[0], order[1])}
	}

	for i, in := range *set {
		if !in.Done {
			clone := in.Clone()
			(*set)[i] = clone
			return clone
		}
	}
	return nil
}

// adoptCrease fills unset crease positions from the event's identity fields.
// The striker slot is only adopted when empty (innings start, or after an
// all-out-style wicket); the bowler follows the event every ball, which is
// how a bowling change is signalled.
func adoptCrease(in *match.InningsState, e match.BallEvent) {
	if in.StrikerID == "" && e.StrikerID != "" {
		in.StrikerID = e.StrikerID
	}
	if in.NonStrikerID == "" && e.NonStrikerID != "" {
		in.NonStrikerID = e.NonStrikerID
	}
	if e.BowlerID != "" {
		in.BowlerID = e.BowlerID
	}
}

func scoreRun(in *match.InningsState, e match.BallEvent) {
	in.Runs += e.Runs
	b := in.Batter(in.StrikerID)
	b.Runs += e.Runs
	b.Balls++
	countBoundary(b, e.Runs)

	bw := in.Bowler(in.BowlerID)
	bw.RunsConceded += e.Runs
	bw.Balls++
	in.OverRuns += e.Runs
	in.Balls++
}

func scoreExtra(in *match.InningsState, e match.BallEvent) {
	bw := in.Bowler(in.BowlerID)
	switch e.ExtraType {
	case match.ExtraWide:
		total := 1 + e.AdditionalRuns
		in.Runs += total
		in.Extras.Wides += total
		bw.RunsConceded += total
		in.OverRuns += total

	case match.ExtraNoBall:
		total := 1 + e.AdditionalRuns + e.RunsOffBat
		in.Runs += total
		in.Extras.NoBalls += 1 + e.AdditionalRuns
		b := in.Batter(in.StrikerID)
		b.Runs += e.RunsOffBat
		b.Balls++ // a no-ball is still a ball faced
		countBoundary(b, e.RunsOffBat)
		bw.RunsConceded += total
		in.OverRuns += total

	case match.ExtraBye:
		in.Runs += e.AdditionalRuns
		in.Extras.Byes += e.AdditionalRuns
		in.Batter(in.StrikerID).Balls++
		bw.Balls++
		in.Balls++

	case match.ExtraLegBye:
		in.Runs += e.AdditionalRuns
		in.Extras.LegByes += e.AdditionalRuns
		in.Batter(in.StrikerID).Balls++
		bw.Balls++
		in.Balls++
	}
}

func scoreWicket(in *match.InningsState, e match.BallEvent) {
	in.Wickets++

	b := in.Batter(in.StrikerID)
	b.Out = true
	b.Dismissal = e.Dismissal
	b.FielderID = e.FielderID
	b.BowlerID = in.BowlerID
	b.Balls++ // the dismissal counts as a ball faced

	bw := in.Bowler(in.BowlerID)
	bw.Balls++
	if e.Dismissal.BowlerCredited() {
		bw.Wickets++
	}
	in.Balls++

	// Replace the striker. Without a replacement (all out) the slot stays
	// empty until the innings closes.
	if e.NewBatsmanID != "" {
		in.StrikerID = e.NewBatsmanID
		in.Batter(e.NewBatsmanID)
	} else {
		in.StrikerID = ""
	}
}

func countBoundary(b *match.BatterState, runs int) {
	switch runs {
	case 4:
		b.Fours++
	case 6:
		b.Sixes++
	}
}

// completeOver swaps strike, credits a maiden when the bowler conceded
// nothing, and clears the bowler slot for the next over.
func completeOver(in *match.InningsState) {
	in.StrikerID, in.NonStrikerID = in.NonStrikerID, in.StrikerID
	if in.OverRuns == 0 && in.BowlerID != "" {
		in.Bowler(in.BowlerID).Maidens++
	}
	in.OverRuns = 0
	in.BowlerID = ""
}

// finishInningsIfDue closes the innings at its ceiling and opens the next
// one: the second regular innings with teams swapped, or the second
// super-over innings after the first.
func finishInningsIfDue(next *match.MatchState, in *match.InningsState, ballLimit int) {
	if in.Balls < ballLimit && in.Wickets < next.MaxWickets() {
		return
	}
	in.Done = true
	in.BowlerID = ""

	if next.Phase == match.PhaseSuperOver {
		if len(next.SuperOvers) == 1 {
			next.SuperOvers = append(next.SuperOvers,
				match.NewInnings(in.BowlingTeamID, in.BattingTeamID))
		}
		return
	}

	if len(next.Innings) == 1 {
		// First innings over: fix the rain-revised target if an
		// interruption is pending, then open the chase.
		if next.Interruption != nil && next.Interruption.RevisedTarget == 0 {
			next.Interruption.RevisedTarget =
				revisedTarget(in.Runs, next.TotalOvers, next.Interruption.RevisedOvers)
		}
		next.CurrentInnings = 1
		next.Innings = append(next.Innings,
			match.NewInnings(in.BowlingTeamID, in.BattingTeamID))
	}
}

func (r *Reducer) countApplied() {
	if r.metrics != nil {
		r.metrics.Applied++
	}
}

func (r *Reducer) countNoOp() {
	if r.metrics != nil {
		r.metrics.NoOps++
	}
}

func (r *Reducer) countGhost() {
	if r.metrics != nil {
		r.metrics.Ghosts++
	}
}
