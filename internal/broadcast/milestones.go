package broadcast

import (
	"github.com/willowlog/willow/internal/match"
)

// MilestoneType identifies a detected milestone.
type MilestoneType string

const (
	MilestoneBatterFifty        MilestoneType = "batter_fifty"
	MilestoneBatterHundred      MilestoneType = "batter_hundred"
	MilestoneBatterHundredFifty MilestoneType = "batter_hundred_fifty"
	MilestoneBowlerThreeFor     MilestoneType = "bowler_three_for"
	MilestoneBowlerFiveFor      MilestoneType = "bowler_five_for"
	MilestoneTeamHundred        MilestoneType = "team_hundred"
	MilestoneTeamTwoHundred     MilestoneType = "team_two_hundred"
	MilestoneTeamThreeHundred   MilestoneType = "team_three_hundred"
	MilestonePartnershipFifty   MilestoneType = "partnership_fifty"
	MilestonePartnershipHundred MilestoneType = "partnership_hundred"
	MilestoneHatTrick           MilestoneType = "hat_trick"
)

// Milestone is one detection, anchored to the event that triggered it.
type Milestone struct {
	Type       MilestoneType `json:"type"`
	PlayerID   string        `json:"player_id,omitempty"`
	Value      int           `json:"value"`
	EventIndex int           `json:"event_index"`
	Innings    int           `json:"innings"`
}

// milestoneState is all the per-innings tracking the detector resets when
// the tenth wicket rolls the scan to the next innings.
type milestoneState struct {
	batterRuns    map[string]int
	bowlerWickets map[string]int
	hatStreak     map[string]int
	teamRuns      int
	standRuns     int
	emitted       map[string]bool // "type/player" pairs already announced
}

func newMilestoneState() *milestoneState {
	return &milestoneState{
		batterRuns:    map[string]int{},
		bowlerWickets: map[string]int{},
		hatStreak:     map[string]int{},
		emitted:       map[string]bool{},
	}
}

func (ms *milestoneState) once(t MilestoneType, player string) bool {
	key := string(t) + "/" + player
	if ms.emitted[key] {
		return false
	}
	ms.emitted[key] = true
	return true
}

var (
	batterThresholds = []struct {
		runs int
		t    MilestoneType
	}{
		{50, MilestoneBatterFifty},
		{100, MilestoneBatterHundred},
		{150, MilestoneBatterHundredFifty},
	}
	bowlerThresholds = []struct {
		wickets int
		t       MilestoneType
	}{
		{3, MilestoneBowlerThreeFor},
		{5, MilestoneBowlerFiveFor},
	}
	teamThresholds = []struct {
		runs int
		t    MilestoneType
	}{
		{100, MilestoneTeamHundred},
		{200, MilestoneTeamTwoHundred},
		{300, MilestoneTeamThreeHundred},
	}
	standThresholds = []struct {
		runs int
		t    MilestoneType
	}{
		{50, MilestonePartnershipFifty},
		{100, MilestonePartnershipHundred},
	}
)

// Milestones runs the single-pass detector over an event slice. Each
// threshold fires at most once per innings; a hat-trick fires on the third
// consecutive credited wicket and on every consecutive one after it, so the
// overlapping windows of a four-in-a-row announce twice.
func Milestones(events []match.BallEvent) []Milestone {
	ms := newMilestoneState()
	innings := 0
	wickets := 0
	var out []Milestone

	emit := func(t MilestoneType, player string, value, idx int) {
		out = append(out, Milestone{
			Type: t, PlayerID: player, Value: value, EventIndex: idx, Innings: innings,
		})
	}

	for i, e := range events {
		if !e.IsBallInPlay() {
			continue
		}

		// Batter and team accumulation.
		batRuns := 0
		switch e.Kind {
		case match.KindRun:
			batRuns = e.Runs
		case match.KindExtra:
			if e.ExtraType == match.ExtraNoBall {
				batRuns = e.RunsOffBat
			}
		}
		if batRuns > 0 {
			ms.batterRuns[e.StrikerID] += batRuns
			for _, th := range batterThresholds {
				if ms.batterRuns[e.StrikerID] >= th.runs && ms.once(th.t, e.StrikerID) {
					emit(th.t, e.StrikerID, ms.batterRuns[e.StrikerID], i)
				}
			}
		}
		ms.teamRuns += e.TotalRuns()
		for _, th := range teamThresholds {
			if ms.teamRuns >= th.runs && ms.once(th.t, "") {
				emit(th.t, "", ms.teamRuns, i)
			}
		}
		ms.standRuns += e.TotalRuns()
		for _, th := range standThresholds {
			if ms.standRuns >= th.runs && ms.once(th.t, "") {
				emit(th.t, "", ms.standRuns, i)
			}
		}

		// Bowler accumulation and the hat-trick streak. Wides and no-balls
		// leave the streak untouched; any other legal delivery that is not a
		// credited wicket breaks it.
		switch {
		case e.Kind == match.KindWicket && e.Dismissal.BowlerCredited():
			ms.bowlerWickets[e.BowlerID]++
			for _, th := range bowlerThresholds {
				if ms.bowlerWickets[e.BowlerID] >= th.wickets && ms.once(th.t, e.BowlerID) {
					emit(th.t, e.BowlerID, ms.bowlerWickets[e.BowlerID], i)
				}
			}
			ms.hatStreak[e.BowlerID]++
			if ms.hatStreak[e.BowlerID] >= 3 {
				emit(MilestoneHatTrick, e.BowlerID, 3, i)
			}
		case e.IsLegalDelivery():
			ms.hatStreak[e.BowlerID] = 0
		}

		if e.Kind == match.KindWicket {
			// Only the stand total resets on a wicket; partnership
			// thresholds stay spent for the rest of the innings.
			ms.standRuns = 0
			wickets++
			if wickets >= match.MaxWicketsRegular {
				innings++
				wickets = 0
				ms = newMilestoneState()
			}
		}
	}
	return out
}
