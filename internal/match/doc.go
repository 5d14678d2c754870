// Package match defines the data model for the scoring core: ball events,
// match configuration, and the reconstructed match/innings/player state.
//
// Everything in this package is pure data. The types here are consumed by the
// engine (which folds events into state), the stats/analytics/broadcast
// derivations (which scan raw event slices), and the harness (which compares
// canonical serializations of two states).
//
// Two rules govern the package:
//
//  1. Events are immutable and ordered. A BallEvent's position in the log is
//     its only identity; no event references another.
//
//  2. State is never mutated in place. The engine produces a fresh MatchState
//     on every application; the Clone helpers here copy only what a transition
//     touches.
//
// Canonical serialization (canonical.go, hash.go) exists so that two states
// can be compared byte-for-byte. It sorts object keys, NFC-normalizes
// strings, and forbids floats, so the same state always produces the same
// bytes regardless of how it was reached.
package match
