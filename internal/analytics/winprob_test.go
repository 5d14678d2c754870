package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willowlog/willow/internal/match"
)

func TestChaseWinProbability_UndefinedBeforeChase(t *testing.T) {
	s := foldState(run(4), run(1))
	_, ok := ChaseWinProbability(s)
	assert.False(t, ok)
}

func TestChaseWinProbability_MidChase(t *testing.T) {
	s := foldState(append(firstInnings12(), chaseRun(1))...)

	wp, ok := ChaseWinProbability(s)
	require.True(t, ok)
	assert.Equal(t, "team-b", wp.ChasingTeamID)
	assert.Equal(t, "team-a", wp.DefendingTeamID)
	// 50 base, -2.18 for the rate, +35 for ten wickets in hand, +13.75 for
	// eleven of twelve balls remaining.
	assert.InDelta(t, 96.57, wp.ChasePercent, 0.01)
	assert.InDelta(t, 100.0, wp.ChasePercent+wp.DefendPercent, 0.001)
}

func TestChaseWinProbability_ClampedAtCeiling(t *testing.T) {
	s := foldState(append(firstInnings12(), chaseRun(4), chaseRun(6))...)

	wp, ok := ChaseWinProbability(s)
	require.True(t, ok)
	assert.InDelta(t, 98.0, wp.ChasePercent, 0.001)
	assert.InDelta(t, 2.0, wp.DefendPercent, 0.001)
}

func TestChaseWinProbability_UndefinedAfterTie(t *testing.T) {
	events := firstInnings12()
	for i := 0; i < 12; i++ {
		events = append(events, chaseRun(1))
	}
	s := foldState(events...)
	require.NotNil(t, s.Result)

	_, ok := ChaseWinProbability(s)
	assert.False(t, ok)
}

func TestChaseWinProbability_SinksWithWickets(t *testing.T) {
	base := append(firstInnings12(), chaseRun(0))
	ahead, ok := ChaseWinProbability(foldState(base...))
	require.True(t, ok)

	collapsed := append(firstInnings12(),
		chaseRun(0),
		wickets("b1", "a1", "b3"),
		wickets("b3", "a1", "b4"),
		wickets("b4", "a1", "b5"),
	)
	behind, ok := ChaseWinProbability(foldState(collapsed...))
	require.True(t, ok)

	assert.Less(t, behind.ChasePercent, ahead.ChasePercent)
}

func wickets(striker, bowler, replacement string) match.BallEvent {
	return match.BallEvent{
		Kind: match.KindWicket, StrikerID: striker, NonStrikerID: "b2",
		BowlerID: bowler, Dismissal: match.DismissalBowled, NewBatsmanID: replacement,
	}
}
