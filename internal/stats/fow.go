package stats

import (
	"fmt"

	"github.com/willowlog/willow/internal/match"
)

// FallOfWicket is a snapshot of the score at the moment a wicket fell.
type FallOfWicket struct {
	WicketNumber int    `json:"wicket_number"`
	Score        string `json:"score"` // "runs/wickets"
	BatterID     string `json:"batter_id"`
	Over         string `json:"over"` // "over.ball"
}

// FallOfWickets scans the event slice and returns the ordered fall-of-wicket
// snapshots for the target innings.
func FallOfWickets(events []match.BallEvent, innings int) []FallOfWicket {
	var sc InningsScanner
	runs := 0
	wickets := 0
	legalBalls := 0
	var out []FallOfWicket

	for _, e := range events {
		if sc.Skip(e, innings) {
			continue
		}
		runs += e.TotalRuns()
		if e.IsLegalDelivery() {
			legalBalls++
		}
		if e.Kind == match.KindWicket {
			wickets++
			out = append(out, FallOfWicket{
				WicketNumber: wickets,
				Score:        fmt.Sprintf("%d/%d", runs, wickets),
				BatterID:     e.StrikerID,
				Over:         ballPosition(legalBalls),
			})
		}
	}
	return out
}
