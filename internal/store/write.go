package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/willowlog/willow/internal/match"
)

// CreateMatch inserts a match record and returns its id. When the config
// carries no MatchID a uuidv7 is minted so ids sort by creation time.
//
// Uses ON CONFLICT(id) DO NOTHING for idempotency - re-creating an existing
// match is a no-op and the stored config wins.
func (s *Store) CreateMatch(ctx context.Context, cfg match.MatchConfig) (string, error) {
	if cfg.MatchID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("create match: mint id: %w", err)
		}
		cfg.MatchID = id.String()
	}

	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("create match: marshal config: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO matches (id, config)
		VALUES (?, ?)
		ON CONFLICT(id) DO NOTHING
	`, cfg.MatchID, string(cfgJSON))
	if err != nil {
		return "", fmt.Errorf("create match: %w", err)
	}

	return cfg.MatchID, nil
}

// AppendBall inserts one event at the given log position.
// Returns whether a new row was inserted.
//
// Uses ON CONFLICT(match_id, seq) DO NOTHING for idempotency - replaying the
// same append is silently ignored, and an event already occupying the slot is
// never overwritten.
func (s *Store) AppendBall(ctx context.Context, matchID string, seq int, e match.BallEvent) (bool, error) {
	eventJSON, err := json.Marshal(e)
	if err != nil {
		return false, fmt.Errorf("append ball: marshal event: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO balls (match_id, seq, event)
		VALUES (?, ?, ?)
		ON CONFLICT(match_id, seq) DO NOTHING
	`, matchID, seq, string(eventJSON))
	if err != nil {
		return false, fmt.Errorf("append ball: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("append ball: rows affected: %w", err)
	}
	return affected > 0, nil
}

// AppendBalls appends a batch of events starting at the current tail of the
// log, in a single transaction. Returns the seq of the first event written.
func (s *Store) AppendBalls(ctx context.Context, matchID string, events []match.BallEvent) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("append balls: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	var next int
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(seq) + 1, 0) FROM balls WHERE match_id = ?
	`, matchID).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("append balls: next seq: %w", err)
	}

	first := next
	for _, e := range events {
		eventJSON, err := json.Marshal(e)
		if err != nil {
			return 0, fmt.Errorf("append balls: marshal event %d: %w", next, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO balls (match_id, seq, event)
			VALUES (?, ?, ?)
		`, matchID, next, string(eventJSON)); err != nil {
			return 0, fmt.Errorf("append balls: insert %d: %w", next, err)
		}
		next++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("append balls: commit: %w", err)
	}
	return first, nil
}
