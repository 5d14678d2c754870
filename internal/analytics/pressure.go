package analytics

import (
	"github.com/willowlog/willow/internal/engine"
	"github.com/willowlog/willow/internal/match"
)

// Pressure levels for the chase pressure index.
const (
	PressureLow     = "LOW"
	PressureMedium  = "MEDIUM"
	PressureHigh    = "HIGH"
	PressureExtreme = "EXTREME"
)

// PressureReport quantifies how far the chase is behind the required rate.
type PressureReport struct {
	RequiredRate float64 `json:"required_rate"`
	CurrentRate  float64 `json:"current_rate"`
	Index        float64 `json:"index"` // required minus current
	Level        string  `json:"level"`
}

// ChasePressure computes the pressure index for the side batting second.
// It is only defined during a chase; ok is false before the first innings
// completes or after the match is decided.
func ChasePressure(s *match.MatchState) (PressureReport, bool) {
	target, runs, ballsFaced, ballsTotal, ok := chaseNumbers(s)
	if !ok {
		return PressureReport{}, false
	}

	needed := target - runs
	remaining := ballsTotal - ballsFaced

	var required float64
	switch {
	case needed <= 0:
		required = 0
	case remaining <= 0:
		// Nothing left to bowl but runs still needed: off the scale.
		return PressureReport{
			RequiredRate: rate(needed, 1),
			CurrentRate:  rate(runs, ballsFaced),
			Index:        float64(needed),
			Level:        PressureExtreme,
		}, true
	default:
		required = rate(needed, remaining)
	}
	current := rate(runs, ballsFaced)
	index := required - current

	level := PressureExtreme
	switch {
	case index < 0:
		level = PressureLow
	case index <= 1:
		level = PressureMedium
	case index <= 2:
		level = PressureHigh
	}
	return PressureReport{
		RequiredRate: required,
		CurrentRate:  current,
		Index:        index,
		Level:        level,
	}, true
}

// chaseNumbers extracts the live chase arithmetic from state: the target,
// the chasing side's runs, balls faced, and ball allotment.
func chaseNumbers(s *match.MatchState) (target, runs, ballsFaced, ballsTotal int, ok bool) {
	target, ok = engine.ChaseTarget(s)
	if !ok {
		return 0, 0, 0, 0, false
	}
	set := s.Innings
	if s.Phase == match.PhaseSuperOver {
		set = s.SuperOvers
	}
	if len(set) < 2 {
		return 0, 0, 0, 0, false
	}
	chase := set[1]
	if s.Result != nil {
		return 0, 0, 0, 0, false
	}
	return target, chase.Runs, chase.Balls, s.EffectiveOvers() * match.BallsPerOver, true
}
