// Package store provides SQLite-backed durable storage for match ball logs.
//
// One matches row per match (its immutable configuration as JSON), plus an
// append-only balls table holding the event log. Nothing derived is ever
// stored: scorecards, analytics and results are recomputed from the log on
// read, so the log is the single source of truth.
//
// Ordering uses seq INTEGER (the event's 0-based log position), never
// timestamps. Appends are idempotent via the (match_id, seq) primary key -
// replaying a write is a no-op and an occupied slot is never overwritten.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
