package analytics

import (
	"github.com/willowlog/willow/internal/match"
	"github.com/willowlog/willow/internal/stats"
)

// RunRatePoint is one sample of the cumulative run-rate curve.
type RunRatePoint struct {
	Over  string  `json:"over"` // "O.B" position of the sample
	Balls int     `json:"balls"`
	Runs  int     `json:"runs"`
	Rate  float64 `json:"rate"`
}

// RunRateProgression samples cumulative runs and run rate at the end of
// every completed over of the target innings, plus a trailing point for a
// partial over in progress.
func RunRateProgression(events []match.BallEvent, innings int) []RunRatePoint {
	var sc stats.InningsScanner
	runs := 0
	balls := 0
	var out []RunRatePoint

	for _, e := range events {
		if sc.Skip(e, innings) {
			continue
		}
		runs += e.TotalRuns()
		if e.IsLegalDelivery() {
			balls++
			if balls%match.BallsPerOver == 0 {
				out = append(out, point(runs, balls))
			}
		}
	}
	if balls%match.BallsPerOver != 0 {
		out = append(out, point(runs, balls))
	}
	return out
}

func point(runs, balls int) RunRatePoint {
	return RunRatePoint{
		Over:  stats.OversString(balls),
		Balls: balls,
		Runs:  runs,
		Rate:  rate(runs, balls),
	}
}

// rate is runs per over for a legal-ball count, zero when nothing bowled.
func rate(runs, balls int) float64 {
	if balls == 0 {
		return 0
	}
	return float64(runs) * match.BallsPerOver / float64(balls)
}
