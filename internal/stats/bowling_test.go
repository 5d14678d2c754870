package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willowlog/willow/internal/match"
)

func TestBowlingStats_Aggregation(t *testing.T) {
	events := []match.BallEvent{
		run("a1", "b1", 4),
		xtra("a1", "b1", match.ExtraWide, 0, 0),   // 1 conceded, no ball
		xtra("a1", "b1", match.ExtraNoBall, 4, 0), // 5 conceded, no ball
		xtra("a1", "b1", match.ExtraBye, 0, 2),    // legal ball, nothing conceded
		wkt("a1", "b1", match.DismissalBowled),
		wkt("a2", "b1", match.DismissalRunOut), // not credited
		run("a3", "b2", 0),
	}

	lines := BowlingStats(events, 0)
	require.Len(t, lines, 2)

	b1 := lines[0]
	assert.Equal(t, "b1", b1.PlayerID)
	assert.Equal(t, 4, b1.Balls)
	assert.Equal(t, "0.4", b1.Overs)
	assert.Equal(t, 10, b1.RunsConceded)
	assert.Equal(t, 1, b1.Wickets)
	assert.InDelta(t, 15.0, b1.Economy, 0.01)

	b2 := lines[1]
	assert.Equal(t, "b2", b2.PlayerID)
	assert.Equal(t, 1, b2.Balls)
	assert.Equal(t, 0, b2.RunsConceded)
	assert.InDelta(t, 0.0, b2.Economy, 0.01)
}

func TestBowlingStats_Maidens(t *testing.T) {
	dot := func() match.BallEvent { return run("a1", "b1", 0) }

	t.Run("six dots", func(t *testing.T) {
		events := []match.BallEvent{dot(), dot(), dot(), dot(), dot(), dot()}
		lines := BowlingStats(events, 0)
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Maidens)
		assert.Equal(t, "1.0", lines[0].Overs)
	})

	t.Run("leg bye preserves the maiden", func(t *testing.T) {
		events := []match.BallEvent{
			dot(), dot(), xtra("a1", "b1", match.ExtraLegBye, 0, 1), dot(), dot(), dot(),
		}
		lines := BowlingStats(events, 0)
		assert.Equal(t, 1, lines[0].Maidens)
	})

	t.Run("wide spoils the maiden", func(t *testing.T) {
		events := []match.BallEvent{
			dot(), dot(), xtra("a1", "b1", match.ExtraWide, 0, 0), dot(), dot(), dot(), dot(),
		}
		lines := BowlingStats(events, 0)
		assert.Equal(t, 0, lines[0].Maidens)
	})
}

func TestBowlingStats_SecondInnings(t *testing.T) {
	events := append(allOut(), run("b1", "a7", 2))

	lines := BowlingStats(events, 1)
	require.Len(t, lines, 1)
	assert.Equal(t, "a7", lines[0].PlayerID)
	assert.Equal(t, 2, lines[0].RunsConceded)
}
