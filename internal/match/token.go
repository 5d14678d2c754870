package match

import "fmt"

// Token renders the event in compact scorebook notation: "0".."6" for runs,
// "W" for a wicket, "wd"/"nb"/"b"/"lb" with a "+n" suffix for extra runs.
// Control events render as "|so|" and "|rain|".
//
// The same notation is accepted by the harness scenario parser, so a log can
// round-trip through its display form.
func (e BallEvent) Token() string {
	switch e.Kind {
	case KindRun:
		return fmt.Sprintf("%d", e.Runs)
	case KindWicket:
		return "W"
	case KindExtra:
		switch e.ExtraType {
		case ExtraWide:
			return suffixed("wd", e.AdditionalRuns)
		case ExtraNoBall:
			return suffixed("nb", e.RunsOffBat+e.AdditionalRuns)
		case ExtraBye:
			return suffixed("b", e.AdditionalRuns)
		case ExtraLegBye:
			return suffixed("lb", e.AdditionalRuns)
		}
	case KindPhaseChange:
		return "|so|"
	case KindInterruption:
		return "|rain|"
	}
	return "?"
}

func suffixed(base string, runs int) string {
	if runs == 0 {
		return base
	}
	return fmt.Sprintf("%s+%d", base, runs)
}
