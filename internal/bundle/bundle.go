package bundle

import (
	"github.com/willowlog/willow/internal/analytics"
	"github.com/willowlog/willow/internal/broadcast"
	"github.com/willowlog/willow/internal/engine"
	"github.com/willowlog/willow/internal/match"
	"github.com/willowlog/willow/internal/stats"
)

// Option configures bundle construction.
type Option func(*options)

type options struct {
	replayIndex int
	hasReplay   bool
	metrics     *engine.Metrics
}

// WithReplayIndex limits the bundle to the first n events - the time-travel
// scrubbing entry point.
func WithReplayIndex(n int) Option {
	return func(o *options) {
		o.replayIndex = n
		o.hasReplay = true
	}
}

// WithMetrics attaches a reducer metrics sink for the core-layer fold.
func WithMetrics(m *engine.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// Bundle is one immutable view over an event log prefix. See the package
// documentation for the layer model.
type Bundle struct {
	cfg    match.MatchConfig
	events []match.BallEvent // effective events after replay slicing

	core Core

	// Memoized phase partition shared by the lazy layers.
	phaseEvents   []match.BallEvent
	phaseEventsOK bool

	phase     *PhaseLayer
	analytics *AnalyticsLayer
	broadcast *BroadcastLayer
}

// New constructs a bundle, eagerly computing the core layer.
func New(cfg match.MatchConfig, events []match.BallEvent, opts ...Option) *Bundle {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	effective := events
	if o.hasReplay {
		n := o.replayIndex
		if n < 0 {
			n = 0
		}
		if n > len(events) {
			n = len(events)
		}
		effective = events[:n]
	}

	b := &Bundle{cfg: cfg, events: effective}
	state := engine.ReconstructWith(engine.NewReducer(o.metrics), cfg, effective)
	b.core = buildCore(state, effective)
	return b
}

// Events returns the effective event slice. Callers must treat it as
// read-only.
func (b *Bundle) Events() []match.BallEvent { return b.events }

// Core returns the eagerly computed core layer.
func (b *Bundle) Core() Core { return b.core }

// currentPhaseEvents memoizes the phase partition of the effective events.
func (b *Bundle) currentPhaseEvents() []match.BallEvent {
	if !b.phaseEventsOK {
		b.phaseEvents = engine.FilterCurrentPhase(b.events, b.core.State.Phase)
		b.phaseEventsOK = true
	}
	return b.phaseEvents
}

// currentInningsIndex is the innings the phase-scoped layers report on,
// within the phase-filtered slice.
func (b *Bundle) currentInningsIndex() int {
	s := b.core.State
	if s.Phase == match.PhaseSuperOver {
		if len(s.SuperOvers) > 1 {
			return 1
		}
		return 0
	}
	return s.CurrentInnings
}

// currentInningsEvents narrows the phase partition to the innings in
// progress. The split mirrors the reducer's completion rule: an innings ends
// at its ball or wicket ceiling, with the ball ceiling tracking rain
// revisions as they appear in the log. Derivations then target index 0
// within the returned slice.
func (b *Bundle) currentInningsEvents() []match.BallEvent {
	events := b.currentPhaseEvents()
	if b.currentInningsIndex() == 0 {
		return events
	}

	limit := b.cfg.OversPerInnings * match.BallsPerOver
	maxWickets := match.MaxWicketsRegular
	if b.core.State.Phase == match.PhaseSuperOver {
		limit = match.BallsPerOver
		maxWickets = match.MaxWicketsSuperOver
	}

	balls, wickets := 0, 0
	for i, e := range events {
		if e.Kind == match.KindInterruption {
			if revised := e.RevisedOvers * match.BallsPerOver; e.RevisedOvers > 0 && revised < limit {
				limit = revised
			}
			continue
		}
		if !e.IsBallInPlay() {
			continue
		}
		if e.IsLegalDelivery() {
			balls++
		}
		if e.Kind == match.KindWicket {
			wickets++
		}
		if balls >= limit || wickets >= maxWickets {
			return events[i+1:]
		}
	}
	return events
}

// PhaseLayer holds the scorecard derivations for the innings in progress.
type PhaseLayer struct {
	Innings       int                      `json:"innings"`
	Batting       []stats.BatterLine       `json:"batting"`
	Bowling       []stats.BowlerLine       `json:"bowling"`
	FallOfWickets []stats.FallOfWicket     `json:"fall_of_wickets"`
	Partnerships  stats.PartnershipSummary `json:"partnerships"`
	Phases        []analytics.PhaseStats   `json:"phases"`
}

// Phase computes the phase layer on first access and caches it.
func (b *Bundle) Phase() *PhaseLayer {
	if b.phase != nil {
		return b.phase
	}
	events := b.currentInningsEvents()
	s := b.core.State
	b.phase = &PhaseLayer{
		Innings:       b.currentInningsIndex(),
		Batting:       stats.BattingStats(events, 0),
		Bowling:       stats.BowlingStats(events, 0),
		FallOfWickets: stats.FallOfWickets(events, 0),
		Partnerships:  stats.Partnerships(events, 0),
		Phases:        analytics.PhaseBreakdown(events, 0, s.TotalOvers, s.Powerplay, s.Phase),
	}
	return b.phase
}

// AnalyticsLayer holds the trend derivations. Pressure and WinProbability
// are nil outside a live chase.
type AnalyticsLayer struct {
	RunRate        []analytics.RunRatePoint  `json:"run_rate"`
	Momentum       analytics.MomentumReport  `json:"momentum"`
	Pressure       *analytics.PressureReport `json:"pressure,omitempty"`
	WinProbability *analytics.WinProbability `json:"win_probability,omitempty"`
}

// Analytics computes the analytics layer on first access and caches it.
func (b *Bundle) Analytics() *AnalyticsLayer {
	if b.analytics != nil {
		return b.analytics
	}
	events := b.currentInningsEvents()
	layer := &AnalyticsLayer{
		RunRate:  analytics.RunRateProgression(events, 0),
		Momentum: analytics.Momentum(events, 0),
	}
	if p, ok := analytics.ChasePressure(b.core.State); ok {
		layer.Pressure = &p
	}
	if wp, ok := analytics.ChaseWinProbability(b.core.State); ok {
		layer.WinProbability = &wp
	}
	b.analytics = layer
	return b.analytics
}

// BroadcastLayer holds milestones and commentary for the current phase.
type BroadcastLayer struct {
	Milestones []broadcast.Milestone      `json:"milestones"`
	Commentary []broadcast.CommentaryLine `json:"commentary"`
}

// Broadcast computes the broadcast layer on first access and caches it.
func (b *Bundle) Broadcast() *BroadcastLayer {
	if b.broadcast != nil {
		return b.broadcast
	}
	events := b.currentPhaseEvents()
	b.broadcast = &BroadcastLayer{
		Milestones: broadcast.Milestones(events),
		Commentary: broadcast.Commentary(events),
	}
	return b.broadcast
}
