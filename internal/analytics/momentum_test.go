package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/willowlog/willow/internal/match"
)

func TestMomentumWeight(t *testing.T) {
	tests := []struct {
		name  string
		event match.BallEvent
		want  float64
	}{
		{"dot", run(0), -1},
		{"single", run(1), 0.5},
		{"two", run(2), 1},
		{"three", run(3), 1.5},
		{"four", run(4), 3},
		{"six", run(6), 5},
		{"five is unweighted", run(5), 0},
		{"wicket", wkt(), -6},
		{"wide", xtra(match.ExtraWide, 0, 2), 1},
		{"no-ball four", xtra(match.ExtraNoBall, 4, 0), 4},
		{"bye with runs", xtra(match.ExtraBye, 0, 2), 0.5},
		{"leg bye without runs", xtra(match.ExtraLegBye, 0, 0), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, momentumWeight(tt.event), 0.001)
		})
	}
}

func TestMomentum_WindowIsLastSix(t *testing.T) {
	var events []match.BallEvent
	for i := 0; i < 10; i++ {
		events = append(events, wkt()) // would sink the score if counted
	}
	for i := 0; i < 6; i++ {
		events = append(events, run(6))
	}

	report := Momentum(events, 1)
	// Ten wickets roll the innings boundary; the sixes are innings 1.
	assert.Equal(t, 6, report.Window)
	assert.InDelta(t, 30.0, report.Score, 0.001)
	assert.Equal(t, TrendUp, report.Trend)
}

func TestMomentum_Trend(t *testing.T) {
	tests := []struct {
		name   string
		events []match.BallEvent
		want   string
	}{
		{"two sixes surge", []match.BallEvent{run(6), run(6)}, TrendUp},
		{"a wicket sinks it", []match.BallEvent{wkt()}, TrendDown},
		{"steady singles", []match.BallEvent{run(1), run(1), run(1)}, TrendStable},
		{"no events", nil, TrendStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Momentum(tt.events, 0)
			assert.Equal(t, tt.want, report.Trend)
			assert.Equal(t, len(tt.events), report.Window)
		})
	}
}
