package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/willowlog/willow/internal/match"
)

// ErrMatchNotFound is returned when no match record exists for an id.
var ErrMatchNotFound = errors.New("match not found")

// MatchRecord is one row of the matches table.
type MatchRecord struct {
	ID        string
	Config    match.MatchConfig
	CreatedAt string
	Balls     int
}

// ReadConfig retrieves the stored configuration of a match.
func (s *Store) ReadConfig(ctx context.Context, matchID string) (match.MatchConfig, error) {
	var cfgJSON string
	err := s.db.QueryRowContext(ctx, `
		SELECT config FROM matches WHERE id = ?
	`, matchID).Scan(&cfgJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return match.MatchConfig{}, fmt.Errorf("read config %s: %w", matchID, ErrMatchNotFound)
	}
	if err != nil {
		return match.MatchConfig{}, fmt.Errorf("read config: %w", err)
	}

	var cfg match.MatchConfig
	if err := json.Unmarshal([]byte(cfgJSON), &cfg); err != nil {
		return match.MatchConfig{}, fmt.Errorf("read config: unmarshal: %w", err)
	}
	return cfg, nil
}

// ReadBalls returns the full event log of a match ordered by seq.
func (s *Store) ReadBalls(ctx context.Context, matchID string) ([]match.BallEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT event FROM balls
		WHERE match_id = ?
		ORDER BY seq ASC
	`, matchID)
	if err != nil {
		return nil, fmt.Errorf("read balls: %w", err)
	}
	defer rows.Close()

	var events []match.BallEvent
	for rows.Next() {
		var eventJSON string
		if err := rows.Scan(&eventJSON); err != nil {
			return nil, fmt.Errorf("read balls: scan: %w", err)
		}
		var e match.BallEvent
		if err := json.Unmarshal([]byte(eventJSON), &e); err != nil {
			return nil, fmt.Errorf("read balls: unmarshal seq %d: %w", len(events), err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read balls: %w", err)
	}
	return events, nil
}

// BallCount returns the length of a match's event log.
func (s *Store) BallCount(ctx context.Context, matchID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM balls WHERE match_id = ?
	`, matchID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("ball count: %w", err)
	}
	return n, nil
}

// ListMatches returns all stored matches newest first, with their log sizes.
func (s *Store) ListMatches(ctx context.Context) ([]MatchRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT m.id, m.config, m.created_at, COUNT(b.seq)
		FROM matches m
		LEFT JOIN balls b ON b.match_id = m.id
		GROUP BY m.id
		ORDER BY m.created_at DESC, m.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		var cfgJSON string
		if err := rows.Scan(&rec.ID, &cfgJSON, &rec.CreatedAt, &rec.Balls); err != nil {
			return nil, fmt.Errorf("list matches: scan: %w", err)
		}
		if err := json.Unmarshal([]byte(cfgJSON), &rec.Config); err != nil {
			return nil, fmt.Errorf("list matches: unmarshal %s: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return records, nil
}
