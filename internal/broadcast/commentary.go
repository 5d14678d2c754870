package broadcast

import (
	"fmt"

	"github.com/willowlog/willow/internal/match"
)

// CommentaryLine is one generated line, anchored to its event.
type CommentaryLine struct {
	EventIndex int    `json:"event_index"`
	Text       string `json:"text"`
}

// Template lists per delivery category. Selection is index mod length, where
// the index is the event's position in the slice - deterministic pseudo-
// randomness, by requirement. %s slots are striker then bowler unless noted.
var (
	dotTemplates = []string{
		"No run, %s defends off %s",
		"Dot ball - %s can't get %s away",
		"%s plays it back to %s, no run",
	}
	singleTemplates = []string{
		"%s works %s away for a single",
		"Quick single for %s off %s",
		"%s nudges %s into the gap, one run",
	}
	twoThreeTemplates = []string{
		"%s pushes %s for %d",
		"Good running! %s takes %d off %s",
	}
	fourTemplates = []string{
		"FOUR! %s finds the rope off %s",
		"Cracking shot from %s, four off %s",
		"%s threads the field - four runs off %s",
	}
	sixTemplates = []string{
		"SIX! %s launches %s over the rope",
		"Huge hit! %s deposits %s into the stands",
	}
	wicketTemplates = []string{
		"OUT! %s falls to %s (%s)",
		"Gone! %s is dismissed by %s (%s)",
		"Big wicket - %s sent back by %s (%s)",
	}
	wideTemplates = []string{
		"Wide from %s, the umpire signals an extra",
		"%s strays down the side - wide called",
	}
	noBallTemplates = []string{
		"No-ball! %s oversteps, free runs on offer",
		"%s is called for a no-ball",
	}
	byeTemplates = []string{
		"They sneak through for byes off %s",
		"The keeper misses it, byes taken off %s",
	}
	legByeTemplates = []string{
		"Off the pads, leg byes off %s",
		"Leg byes as it deflects away off %s",
	}
)

// pick selects deterministically from a template list.
func pick(templates []string, index int) string {
	return templates[index%len(templates)]
}

// Commentary generates one line per in-play event of the slice. Control
// events (phase changes, interruptions) get fixed lines.
func Commentary(events []match.BallEvent) []CommentaryLine {
	out := make([]CommentaryLine, 0, len(events))
	for i, e := range events {
		out = append(out, CommentaryLine{EventIndex: i, Text: lineFor(e, i)})
	}
	return out
}

// LineFor generates the commentary line for a single event at a given log
// position - the per-ball entry point used for live tickers.
func LineFor(e match.BallEvent, index int) string {
	return lineFor(e, index)
}

func lineFor(e match.BallEvent, i int) string {
	switch e.Kind {
	case match.KindRun:
		switch e.Runs {
		case 0:
			return fmt.Sprintf(pick(dotTemplates, i), e.StrikerID, e.BowlerID)
		case 1:
			return fmt.Sprintf(pick(singleTemplates, i), e.StrikerID, e.BowlerID)
		case 2, 3:
			if i%len(twoThreeTemplates) == 0 {
				return fmt.Sprintf(twoThreeTemplates[0], e.StrikerID, e.BowlerID, e.Runs)
			}
			return fmt.Sprintf(twoThreeTemplates[1], e.StrikerID, e.Runs, e.BowlerID)
		case 4:
			return fmt.Sprintf(pick(fourTemplates, i), e.StrikerID, e.BowlerID)
		case 6:
			return fmt.Sprintf(pick(sixTemplates, i), e.StrikerID, e.BowlerID)
		}
		return fmt.Sprintf("%s scores %d off %s", e.StrikerID, e.Runs, e.BowlerID)
	case match.KindExtra:
		switch e.ExtraType {
		case match.ExtraWide:
			return fmt.Sprintf(pick(wideTemplates, i), e.BowlerID)
		case match.ExtraNoBall:
			return fmt.Sprintf(pick(noBallTemplates, i), e.BowlerID)
		case match.ExtraBye:
			return fmt.Sprintf(pick(byeTemplates, i), e.BowlerID)
		case match.ExtraLegBye:
			return fmt.Sprintf(pick(legByeTemplates, i), e.BowlerID)
		}
	case match.KindWicket:
		return fmt.Sprintf(pick(wicketTemplates, i), e.StrikerID, e.BowlerID, e.Dismissal)
	case match.KindPhaseChange:
		if e.NewPhase == match.PhaseSuperOver {
			return "Scores level! We're going to a Super Over"
		}
		return "Back to regular play"
	case match.KindInterruption:
		return fmt.Sprintf("Rain interrupts play - revised to %d overs", e.RevisedOvers)
	}
	return ""
}
