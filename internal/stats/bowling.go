package stats

import (
	"github.com/willowlog/willow/internal/match"
)

// BowlerLine is one row of the bowling scorecard.
type BowlerLine struct {
	PlayerID     string  `json:"player_id"`
	Balls        int     `json:"balls"`
	Overs        string  `json:"overs"` // "O.B" notation
	Maidens      int     `json:"maidens"`
	RunsConceded int     `json:"runs_conceded"`
	Wickets      int     `json:"wickets"`
	Economy      float64 `json:"economy"`
}

// BowlingStats scans the event slice and aggregates per-bowler figures for
// the target innings. Wides and no-balls count in full against the bowler;
// byes and leg-byes do not. Run-outs are not credited as wickets.
func BowlingStats(events []match.BallEvent, innings int) []BowlerLine {
	var sc InningsScanner
	byID := map[string]*BowlerLine{}
	var order []string

	line := func(id string) *BowlerLine {
		if l, ok := byID[id]; ok {
			return l
		}
		l := &BowlerLine{PlayerID: id}
		byID[id] = l
		order = append(order, id)
		return l
	}

	// Maiden tracking: runs conceded within the over in progress, and the
	// bowler it is credited to when six legal balls pass without concession.
	overRuns := 0
	legalBalls := 0

	for _, e := range events {
		if sc.Skip(e, innings) {
			continue
		}
		l := line(e.BowlerID)
		switch e.Kind {
		case match.KindRun:
			l.RunsConceded += e.Runs
			l.Balls++
			overRuns += e.Runs
			legalBalls++
		case match.KindExtra:
			switch e.ExtraType {
			case match.ExtraWide:
				total := 1 + e.AdditionalRuns
				l.RunsConceded += total
				overRuns += total
			case match.ExtraNoBall:
				total := 1 + e.AdditionalRuns + e.RunsOffBat
				l.RunsConceded += total
				overRuns += total
			case match.ExtraBye, match.ExtraLegBye:
				l.Balls++
				legalBalls++
			}
		case match.KindWicket:
			l.Balls++
			legalBalls++
			if e.Dismissal.BowlerCredited() {
				l.Wickets++
			}
		}
		if legalBalls == match.BallsPerOver {
			if overRuns == 0 {
				l.Maidens++
			}
			overRuns = 0
			legalBalls = 0
		}
	}

	out := make([]BowlerLine, 0, len(order))
	for _, id := range order {
		l := byID[id]
		l.Overs = OversString(l.Balls)
		if l.Balls > 0 {
			l.Economy = float64(l.RunsConceded) * match.BallsPerOver / float64(l.Balls)
		}
		out = append(out, *l)
	}
	return out
}
