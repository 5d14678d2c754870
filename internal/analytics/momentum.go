package analytics

import (
	"github.com/willowlog/willow/internal/match"
	"github.com/willowlog/willow/internal/stats"
)

// Trend labels for the momentum score.
const (
	TrendUp     = "UP"
	TrendDown   = "DOWN"
	TrendStable = "STABLE"
)

// momentumWindow is the number of most recent in-play events the score is
// computed over.
const momentumWindow = 6

// MomentumReport is the short-window batting momentum of the target innings.
type MomentumReport struct {
	Score  float64 `json:"score"`
	Trend  string  `json:"trend"`
	Window int     `json:"window"` // events actually considered (≤ 6)
}

// Momentum computes a weighted score over the last six in-play events of the
// target innings. Boundaries and busy scoring push the score up, dots and
// wickets pull it down.
func Momentum(events []match.BallEvent, innings int) MomentumReport {
	var sc stats.InningsScanner
	var window []match.BallEvent
	for _, e := range events {
		if sc.Skip(e, innings) {
			continue
		}
		window = append(window, e)
		if len(window) > momentumWindow {
			window = window[1:]
		}
	}

	score := 0.0
	for _, e := range window {
		score += momentumWeight(e)
	}

	trend := TrendStable
	switch {
	case score >= 5:
		trend = TrendUp
	case score <= -5:
		trend = TrendDown
	}
	return MomentumReport{Score: score, Trend: trend, Window: len(window)}
}

func momentumWeight(e match.BallEvent) float64 {
	switch e.Kind {
	case match.KindWicket:
		return -6
	case match.KindExtra:
		switch e.ExtraType {
		case match.ExtraWide:
			return 1
		case match.ExtraNoBall:
			// The free extra plus whatever the batter made of it.
			return 1 + batRunWeight(e.RunsOffBat)
		case match.ExtraBye, match.ExtraLegBye:
			if e.AdditionalRuns > 0 {
				return 0.5
			}
			return -1
		}
		return 0
	case match.KindRun:
		return batRunWeight(e.Runs)
	}
	return 0
}

func batRunWeight(runs int) float64 {
	switch runs {
	case 0:
		return -1
	case 1:
		return 0.5
	case 2:
		return 1
	case 3:
		return 1.5
	case 4:
		return 3
	case 6:
		return 5
	}
	return 0
}
