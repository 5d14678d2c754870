package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/willowlog/willow/internal/match"
)

func stand(striker, nonStriker string, events ...match.BallEvent) []match.BallEvent {
	for i := range events {
		events[i].StrikerID = striker
		events[i].NonStrikerID = nonStriker
	}
	return events
}

func TestPartnerships_OpeningStand(t *testing.T) {
	events := stand("a1", "a2",
		run("a1", "b1", 4),
		xtra("a1", "b1", match.ExtraWide, 0, 0),
		xtra("a1", "b1", match.ExtraNoBall, 6, 0),
	)

	summary := Partnerships(events, 0)
	assert.Equal(t, "a1", summary.Current.BatterAID)
	assert.Equal(t, "a2", summary.Current.BatterBID)
	assert.Equal(t, 12, summary.Current.Runs, "extras count toward the stand")
	assert.Equal(t, 1, summary.Current.Balls, "only legal balls count")
	assert.Equal(t, 1, summary.Current.Fours)
	assert.Equal(t, 1, summary.Current.Sixes, "off the bat of a no-ball")
	assert.Equal(t, summary.Current, summary.Best)
}

func TestPartnerships_WicketClosesStand(t *testing.T) {
	events := append(
		stand("a1", "a2",
			run("a1", "b1", 4),
			run("a1", "b1", 6),
			wkt("a1", "b1", match.DismissalBowled),
		),
		stand("a3", "a2", run("a3", "b1", 1))...,
	)

	summary := Partnerships(events, 0)
	assert.Equal(t, "a3", summary.Current.BatterAID)
	assert.Equal(t, 1, summary.Current.Runs)

	assert.Equal(t, "a1", summary.Best.BatterAID)
	assert.Equal(t, 10, summary.Best.Runs)
	assert.Equal(t, 3, summary.Best.Balls, "the dismissal ball belongs to the stand")
}

func TestPartnerships_BestKeptOnEqualRuns(t *testing.T) {
	first := stand("a1", "a2",
		run("a1", "b1", 6), run("a1", "b1", 6), wkt("a1", "b1", match.DismissalBowled))
	second := stand("a3", "a2",
		run("a3", "b1", 6), run("a3", "b1", 6), wkt("a3", "b1", match.DismissalBowled))

	summary := Partnerships(append(first, second...), 0)
	assert.Equal(t, 12, summary.Best.Runs)
	assert.Equal(t, "a1", summary.Best.BatterAID, "an equal stand does not displace the best")
	assert.Equal(t, 0, summary.Current.Runs)
}

func TestPartnerships_Empty(t *testing.T) {
	summary := Partnerships(nil, 0)
	assert.Equal(t, Partnership{}, summary.Current)
	assert.Equal(t, Partnership{}, summary.Best)
}
