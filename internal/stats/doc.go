// Package stats derives scorecard aggregates from raw event slices.
//
// Every derivation here is a single O(n) pass over the log and is
// deliberately independent of the engine's running state: each one tracks
// its own innings boundary (the tenth wicket rolls the scan to the next
// innings), so a derivation can run in isolation - for example inside a
// worker handed nothing but the raw log.
//
// Results are value types with deterministic ordering (insertion order for
// players, log order for wickets), so the same slice always yields the same
// output.
package stats
