package harness

import (
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/willowlog/willow/internal/bundle"
	"github.com/willowlog/willow/internal/match"
)

// ScorecardSnapshot flattens the derived scorecard of a bundle into a
// canonical-JSON-ready map. Rates are formatted as fixed-precision strings
// because canonical JSON forbids floats.
func ScorecardSnapshot(b *bundle.Bundle) map[string]any {
	core := b.Core()
	phase := b.Phase()

	innings := make([]any, 0, len(core.Score.Innings))
	for _, in := range core.Score.Innings {
		innings = append(innings, map[string]any{
			"team_id":  in.TeamID,
			"runs":     in.Runs,
			"wickets":  in.Wickets,
			"overs":    in.Overs,
			"run_rate": fmt.Sprintf("%.2f", in.RunRate),
			"done":     in.Done,
		})
	}

	batting := make([]any, 0, len(phase.Batting))
	for _, l := range phase.Batting {
		row := map[string]any{
			"player_id":   l.PlayerID,
			"runs":        l.Runs,
			"balls":       l.Balls,
			"fours":       l.Fours,
			"sixes":       l.Sixes,
			"strike_rate": fmt.Sprintf("%.2f", l.StrikeRate),
			"out":         l.Out,
		}
		if l.Out {
			row["dismissal"] = string(l.Dismissal)
		}
		batting = append(batting, row)
	}

	bowling := make([]any, 0, len(phase.Bowling))
	for _, l := range phase.Bowling {
		bowling = append(bowling, map[string]any{
			"player_id": l.PlayerID,
			"overs":     l.Overs,
			"maidens":   l.Maidens,
			"runs":      l.RunsConceded,
			"wickets":   l.Wickets,
			"economy":   fmt.Sprintf("%.2f", l.Economy),
		})
	}

	fow := make([]any, 0, len(phase.FallOfWickets))
	for _, f := range phase.FallOfWickets {
		fow = append(fow, map[string]any{
			"wicket": f.WicketNumber,
			"score":  f.Score,
			"batter": f.BatterID,
			"over":   f.Over,
		})
	}

	snap := map[string]any{
		"match_id": core.Score.MatchID,
		"status":   string(core.Score.Status),
		"innings":  innings,
		"batting":  batting,
		"bowling":  bowling,
		"fow":      fow,
	}
	if core.Score.Result != "" {
		snap["result"] = core.Score.Result
	}
	return snap
}

// RunWithGolden executes a scenario and compares its scorecard snapshot
// against testdata/golden/{scenario.Name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, sc *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(sc)
	if err != nil {
		return nil, err
	}

	snapshot, err := match.MarshalCanonical(ScorecardSnapshot(result.Bundle))
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, sc.Name, snapshot)
	return result, nil
}
