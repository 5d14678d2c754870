// Package engine implements the deterministic scoring engine.
//
// The engine is a pure left-fold: an ordered ball log enters Reconstruct,
// each event passes through Reducer.Apply, and a fresh MatchState comes out.
// Nothing here performs I/O, reads a clock, or mutates its inputs.
//
// ARCHITECTURE:
//
// Single transition function:
// Apply(state, event) -> newState encodes every rule of the sport - legal
// deliveries, strike rotation, extras accounting, innings and match
// completion, rain-revised targets, super overs. It is total: malformed or
// out-of-place events are absorbed as no-ops rather than rejected, so replay
// never fails mid-log.
//
// Determinism:
// Ordering is defined entirely by event sequence position. Replaying the
// same prefix always converges to byte-identical state, whether the log is
// folded all at once or one event at a time. There is no randomness, no
// wall-clock input, and no shared mutable state; concurrent callers each
// fold their own copy.
//
// Copy-on-write:
// Apply clones the state shell and only the innings the event touches.
// Untouched innings are shared between successive states, which keeps the
// per-ball cost proportional to one innings rather than the whole match.
package engine
