package analytics

import (
	"github.com/willowlog/willow/internal/match"
	"github.com/willowlog/willow/internal/stats"
)

// GamePhase buckets overs into the three tactical phases of an innings.
type GamePhase string

const (
	PhasePowerplay GamePhase = "powerplay"
	PhaseMiddle    GamePhase = "middle"
	PhaseDeath     GamePhase = "death"
)

// PhaseBoundaries resolves the last powerplay over and the last middle over
// (1-based). An explicit PowerplayConfig wins; otherwise the boundaries are
// derived proportionally at 30% and 75% of the allotment - overs 6 and 15
// of a twenty-over innings.
func PhaseBoundaries(totalOvers int, pp *match.PowerplayConfig) (powerplayEnd, middleEnd int) {
	if pp != nil && pp.PowerplayOvers > 0 && pp.MiddleEndOver > pp.PowerplayOvers {
		return pp.PowerplayOvers, pp.MiddleEndOver
	}
	powerplayEnd = int(float64(totalOvers)*0.3 + 0.5)
	middleEnd = int(float64(totalOvers)*0.75 + 0.5)
	if powerplayEnd < 1 {
		powerplayEnd = 1
	}
	if middleEnd <= powerplayEnd {
		middleEnd = powerplayEnd + 1
	}
	return powerplayEnd, middleEnd
}

// PhaseOf classifies a 1-based over number. A super over is always death.
func PhaseOf(overNumber, powerplayEnd, middleEnd int, phase match.Phase) GamePhase {
	if phase == match.PhaseSuperOver {
		return PhaseDeath
	}
	switch {
	case overNumber <= powerplayEnd:
		return PhasePowerplay
	case overNumber <= middleEnd:
		return PhaseMiddle
	}
	return PhaseDeath
}

// PhaseStats aggregates one phase bucket of an innings.
type PhaseStats struct {
	Phase   GamePhase `json:"phase"`
	Runs    int       `json:"runs"`
	Wickets int       `json:"wickets"`
	Balls   int       `json:"balls"`
	RunRate float64   `json:"run_rate"`
}

// PhaseBreakdown buckets the target innings into powerplay, middle and death
// figures. All three buckets are always returned, in that order, even when
// empty.
func PhaseBreakdown(events []match.BallEvent, innings, totalOvers int, pp *match.PowerplayConfig, phase match.Phase) []PhaseStats {
	ppEnd, midEnd := PhaseBoundaries(totalOvers, pp)
	buckets := map[GamePhase]*PhaseStats{
		PhasePowerplay: {Phase: PhasePowerplay},
		PhaseMiddle:    {Phase: PhaseMiddle},
		PhaseDeath:     {Phase: PhaseDeath},
	}

	var sc stats.InningsScanner
	legalBalls := 0
	for _, e := range events {
		if sc.Skip(e, innings) {
			continue
		}
		// The over in progress: ball counts toward the over it is bowled in.
		overNumber := legalBalls/match.BallsPerOver + 1
		b := buckets[PhaseOf(overNumber, ppEnd, midEnd, phase)]
		b.Runs += e.TotalRuns()
		if e.Kind == match.KindWicket {
			b.Wickets++
		}
		if e.IsLegalDelivery() {
			b.Balls++
			legalBalls++
		}
	}

	out := []PhaseStats{*buckets[PhasePowerplay], *buckets[PhaseMiddle], *buckets[PhaseDeath]}
	for i := range out {
		out[i].RunRate = rate(out[i].Runs, out[i].Balls)
	}
	return out
}
