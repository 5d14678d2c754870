package stats

import (
	"github.com/willowlog/willow/internal/match"
)

// BatterLine is one row of the batting scorecard.
type BatterLine struct {
	PlayerID   string  `json:"player_id"`
	Runs       int     `json:"runs"`
	Balls      int     `json:"balls"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	StrikeRate float64 `json:"strike_rate"`
	Out        bool    `json:"out"`

	Dismissal match.DismissalType `json:"dismissal,omitempty"`
	FielderID string              `json:"fielder_id,omitempty"`
	BowlerID  string              `json:"bowler_id,omitempty"`
}

// BattingStats scans the event slice and aggregates per-batter figures for
// the target innings, keyed by the striker id stamped on each event. Rows
// appear in the order batters first faced a ball.
func BattingStats(events []match.BallEvent, innings int) []BatterLine {
	var sc InningsScanner
	byID := map[string]*BatterLine{}
	var order []string

	line := func(id string) *BatterLine {
		if l, ok := byID[id]; ok {
			return l
		}
		l := &BatterLine{PlayerID: id}
		byID[id] = l
		order = append(order, id)
		return l
	}

	for _, e := range events {
		if sc.Skip(e, innings) {
			continue
		}
		switch e.Kind {
		case match.KindRun:
			l := line(e.StrikerID)
			l.Runs += e.Runs
			l.Balls++
			switch e.Runs {
			case 4:
				l.Fours++
			case 6:
				l.Sixes++
			}
		case match.KindExtra:
			switch e.ExtraType {
			case match.ExtraNoBall:
				l := line(e.StrikerID)
				l.Runs += e.RunsOffBat
				l.Balls++
				switch e.RunsOffBat {
				case 4:
					l.Fours++
				case 6:
					l.Sixes++
				}
			case match.ExtraBye, match.ExtraLegBye:
				line(e.StrikerID).Balls++
			}
			// A wide is not a ball faced.
		case match.KindWicket:
			l := line(e.StrikerID)
			l.Balls++
			l.Out = true
			l.Dismissal = e.Dismissal
			l.FielderID = e.FielderID
			l.BowlerID = e.BowlerID
		}
	}

	out := make([]BatterLine, 0, len(order))
	for _, id := range order {
		l := byID[id]
		if l.Balls > 0 {
			l.StrikeRate = float64(l.Runs) / float64(l.Balls) * 100
		}
		out = append(out, *l)
	}
	return out
}
