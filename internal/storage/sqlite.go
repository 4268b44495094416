// Package storage provides SQLite-based persistence for game results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/match-league/internal/engine"
	"github.com/vovakirdan/match-league/internal/results"
)

// DefaultRankingSize is the ranking board length when none is requested.
const DefaultRankingSize = 10

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Record is one saved game result.
type Record struct {
	ID        int64
	Player    string
	Tier      string
	BatchID   int64
	Score     int
	Elapsed   int // Seconds
	Moves     int
	Completed bool
	CreatedAt time.Time
}

// PlayerStats aggregates every result of one player.
type PlayerStats struct {
	Player      string
	GamesPlayed int
	BestScore   int
	TotalScore  int
	Completed   int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			tier TEXT NOT NULL DEFAULT '',
			batch_id INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL,
			elapsed_secs INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			completed INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_score ON results(score DESC);
		CREATE INDEX IF NOT EXISTS idx_results_board ON results(completed, score DESC, elapsed_secs ASC);
		CREATE INDEX IF NOT EXISTS idx_results_player ON results(player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a result and returns its ID and ranking position: the
// number of saved results with a strictly higher score, plus one.
func (s *Store) SaveResult(ctx context.Context, r Record) (id int64, ranking int, err error) {
	created := r.CreatedAt
	if created.IsZero() {
		created = s.now()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO results (player, tier, batch_id, score, elapsed_secs, moves, completed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Player, r.Tier, r.BatchID, r.Score, r.Elapsed, r.Moves, r.Completed,
		created.UTC().Format(sqliteTime),
	)
	if err != nil {
		return 0, 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err = res.LastInsertId()
	if err != nil {
		return 0, 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	ranking, err = s.RankingPosition(ctx, r.Score)
	if err != nil {
		return id, 0, err
	}
	return id, ranking, nil
}

// RankingPosition returns where score would place among saved results.
func (s *Store) RankingPosition(ctx context.Context, score int) (int, error) {
	var higher int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM results WHERE score > ?",
		score,
	).Scan(&higher)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query ranking: %w", err)
	}
	return higher + 1, nil
}

// Submit implements results.Submitter.
func (s *Store) Submit(ctx context.Context, r engine.Result) (results.Receipt, error) {
	id, ranking, err := s.SaveResult(ctx, RecordFromResult(r))
	if err != nil {
		return results.Receipt{}, err
	}
	return results.Receipt{ResultID: id, Ranking: ranking, Message: "saved"}, nil
}

// RecordFromResult converts an engine result for storage.
func RecordFromResult(r engine.Result) Record {
	return Record{
		Player:    r.Player,
		Tier:      string(r.Tier),
		BatchID:   r.BatchID,
		Score:     r.Score,
		Elapsed:   r.ElapsedSeconds,
		Moves:     r.Moves,
		Completed: r.Completed,
		CreatedAt: r.FinishedAt,
	}
}

// TopResults returns the ranking board: completed games ordered by score
// descending, then time ascending.
func (s *Store) TopResults(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = DefaultRankingSize
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, player, tier, batch_id, score, elapsed_secs, moves, completed, created_at
		 FROM results
		 WHERE completed = 1
		 ORDER BY score DESC, elapsed_secs ASC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Tier, &r.BatchID, &r.Score,
			&r.Elapsed, &r.Moves, &r.Completed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats returns the aggregate results for player. Unknown players get zero
// stats.
func (s *Store) Stats(ctx context.Context, player string) (PlayerStats, error) {
	stats := PlayerStats{Player: player}
	var best, total, completed sql.NullInt64

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), MAX(score), SUM(score), SUM(completed)
		 FROM results
		 WHERE player = ?`,
		player,
	).Scan(&stats.GamesPlayed, &best, &total, &completed)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	stats.BestScore = int(best.Int64)
	stats.TotalScore = int(total.Int64)
	stats.Completed = int(completed.Int64)
	return stats, nil
}

// HighScore returns the best completed score. Returns 0 if none exist.
func (s *Store) HighScore(ctx context.Context) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		"SELECT MAX(score) FROM results WHERE completed = 1",
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(score.Int64), nil
}

// ClearResults deletes every saved result.
func (s *Store) ClearResults(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
