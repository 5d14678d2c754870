package stats

import (
	"fmt"

	"github.com/willowlog/willow/internal/match"
)

// InningsScanner assigns each ball event of a log slice to an innings index.
// The boundary is wicket-count based: the ball after the tenth wicket of an
// innings belongs to the next one. Control events (phase changes,
// interruptions) belong to no innings.
//
// The zero value is ready to use. Analytics derivations share this scanner
// so every consumer agrees on where an innings ends in a raw slice.
type InningsScanner struct {
	idx     int
	wickets int
}

// Skip reports whether the event falls outside the target innings, advancing
// the internal boundary counter as wickets accumulate.
func (sc *InningsScanner) Skip(e match.BallEvent, target int) bool {
	if !e.IsBallInPlay() {
		return true
	}
	current := sc.idx
	if e.Kind == match.KindWicket {
		sc.wickets++
		if sc.wickets >= match.MaxWicketsRegular {
			sc.idx++
			sc.wickets = 0
		}
	}
	return current != target
}

// OversString renders a legal-ball count in cricket notation: 27 balls is
// "4.3", a completed over boundary is "5.0".
func OversString(balls int) string {
	return fmt.Sprintf("%d.%d", balls/match.BallsPerOver, balls%match.BallsPerOver)
}

// ballPosition renders the position of the n-th legal ball (1-based) as
// "over.ball": the 28th legal ball is "4.4", the 30th is "4.6".
func ballPosition(nthLegalBall int) string {
	if nthLegalBall <= 0 {
		return "0.0"
	}
	over := (nthLegalBall - 1) / match.BallsPerOver
	ball := (nthLegalBall-1)%match.BallsPerOver + 1
	return fmt.Sprintf("%d.%d", over, ball)
}
