package stats

import (
	"github.com/willowlog/willow/internal/match"
)

// Partnership is the joint record of the two batters at the crease between
// wickets. Runs counts everything added to the innings total during the
// stand, extras included; boundaries count hits off the bat only.
type Partnership struct {
	BatterAID string `json:"batter_a_id"`
	BatterBID string `json:"batter_b_id"`
	Runs      int    `json:"runs"`
	Balls     int    `json:"balls"`
	Fours     int    `json:"fours"`
	Sixes     int    `json:"sixes"`
}

// PartnershipSummary holds the stand in progress and the best stand of the
// innings so far. Best includes the current stand when it leads.
type PartnershipSummary struct {
	Current Partnership `json:"current"`
	Best    Partnership `json:"best"`
}

// Partnerships scans the event slice for the target innings. Each wicket
// closes the stand; the next ball in play opens a new one with the pair
// stamped on that ball.
func Partnerships(events []match.BallEvent, innings int) PartnershipSummary {
	var sc InningsScanner
	var current Partnership
	var best Partnership
	open := false

	for _, e := range events {
		if sc.Skip(e, innings) {
			continue
		}
		if !open {
			current = Partnership{BatterAID: e.StrikerID, BatterBID: e.NonStrikerID}
			open = true
		}
		current.Runs += e.TotalRuns()
		if e.IsLegalDelivery() {
			current.Balls++
		}
		bat := 0
		switch e.Kind {
		case match.KindRun:
			bat = e.Runs
		case match.KindExtra:
			if e.ExtraType == match.ExtraNoBall {
				bat = e.RunsOffBat
			}
		}
		switch bat {
		case 4:
			current.Fours++
		case 6:
			current.Sixes++
		}
		if e.Kind == match.KindWicket {
			if current.Runs > best.Runs {
				best = current
			}
			current = Partnership{}
			open = false
		}
	}

	if current.Runs > best.Runs {
		best = current
	}
	return PartnershipSummary{Current: current, Best: best}
}
