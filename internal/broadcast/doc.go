// Package broadcast turns an event slice into spectator-facing output:
// milestone detections (fifties, five-fors, team hundreds, hat-tricks) and
// a natural-language commentary line per ball.
//
// Both passes are deterministic. Commentary "randomness" is an index modulo
// over fixed template lists, never a seeded RNG, so the same event at the
// same log position always produces the same line - a hard requirement for
// byte-identical replays.
package broadcast
