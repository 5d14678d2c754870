package engine

// Metrics counts reducer activity for diagnostics and stress harnesses.
//
// A Metrics instance is owned by the Reducer it was handed to; it is not
// shared through package state, so concurrent reducers never contend on the
// same counters. Pass nil to NewReducer to skip counting entirely.
type Metrics struct {
	// Applied counts events that changed score state.
	Applied int

	// NoOps counts structurally absorbed events (unknown kinds, rejected
	// interruptions).
	NoOps int

	// Ghosts counts deliveries absorbed by the boundary or terminal-lock
	// rules (post-completion balls, ceiling-violating balls).
	Ghosts int
}

// Total returns the number of events the reducer has seen.
func (m *Metrics) Total() int {
	return m.Applied + m.NoOps + m.Ghosts
}
