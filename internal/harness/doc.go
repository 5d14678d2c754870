// Package harness provides the determinism validator and a scenario-based
// conformance runner for the scoring engine.
//
// The validator replays an event log two ways - one full fold, and an
// incremental fold that reuses each intermediate state - and asserts the
// results are byte-identical under canonical serialization. On divergence it
// reports the first differing path with expected and actual values rather
// than failing fast, so a batch of scenarios always runs to completion.
//
// Scenarios are yaml files describing a match configuration, a flow of
// deliveries in compact scorebook notation, and assertions on the final
// state. The scenario compiler stamps striker/non-striker/bowler identities
// deterministically by folding the engine as it generates events, the same
// way a scoring app stamps them from its live view. Golden scorecard
// snapshots (goldie, regenerate with -update) pin the exact derived output
// for known logs.
package harness
