package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one finished playthrough.
type Run struct {
	ID        string // assigned by SaveRun when empty
	GameID    string
	Player    string // SSH user or local user name
	Skin      int
	Score     int
	Level     int // zero-based level reached
	Deaths    int
	Duration  time.Duration
	CreatedAt time.Time
}

// SaveRun records a finished run and returns its id.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, game_id, player, skin, score, level, deaths, duration_ms, seq)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM runs))`,
		run.ID, run.GameID, run.Player, run.Skin, run.Score, run.Level, run.Deaths,
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

// RecentRuns returns the latest runs of a game, newest first.
// An empty gameID returns runs of every game.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, skin, score, level, deaths, duration_ms, created_at
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY seq DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Player, &r.Skin, &r.Score, &r.Level,
			&r.Deaths, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}
