// Package bundle composes the engine and the derivation packages into a
// four-layer, access-triggered computation graph over one event log.
//
// The Core layer (reconstructed state, score projection, current over, chase
// info) is computed eagerly at construction; the Phase, Analytics and
// Broadcast layers are computed on first access and cached for the bundle's
// lifetime. The layers share one memoized phase-filtered event slice so the
// log is partitioned at most once.
//
// A Bundle is immutable after construction: a new event list or replay index
// means a new bundle, never an update in place. Lazy fields are plain
// pointers, not closures, and are not synchronized - a bundle belongs to the
// single goroutine that built it, which is cheap because construction is.
package bundle
