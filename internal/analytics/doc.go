// Package analytics computes presentation-grade derivations: run-rate
// progression, short-window momentum, chase pressure, a win-probability
// heuristic, and per-phase breakdowns.
//
// Everything here is a pure function over an event slice plus
// engine-reconstructed state. The win probability is an explicit heuristic,
// not a statistical model - it exists to drive a gauge on a spectator
// screen, and its only hard requirement is determinism.
package analytics
