// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// timeLayout sorts lexically in the same order as time.
const timeLayout = "2006-01-02 15:04:05.000000"

// Outcomes stored in the results table.
const (
	OutcomeCleared   = "cleared"
	OutcomeTimeout   = "timeout"
	OutcomeAbandoned = "abandoned"
)

// Store manages the SQLite database connection for game results.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Result is one finished game.
type Result struct {
	ID        string // uuid, assigned on save
	Player    string // SSH user, empty for local play
	BoardSize int
	TimeLimit int // seconds
	Matches   int
	Pairs     int
	Elapsed   time.Duration
	Outcome   string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL DEFAULT '',
			board_size INTEGER NOT NULL,
			time_limit_secs INTEGER NOT NULL,
			matches INTEGER NOT NULL DEFAULT 0,
			pairs INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_results_board ON results(board_size, outcome, elapsed_ms);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
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

// SaveResult records a finished game. A missing ID or CreatedAt is filled in;
// the stored record is returned.
func (s *Store) SaveResult(r Result) (Result, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}
	r.CreatedAt = r.CreatedAt.UTC()

	_, err := s.db.Exec(
		`INSERT INTO results
		 (id, player, board_size, time_limit_secs, matches, pairs, elapsed_ms, outcome, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.Player,
		r.BoardSize,
		r.TimeLimit,
		r.Matches,
		r.Pairs,
		r.Elapsed.Milliseconds(),
		r.Outcome,
		r.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return Result{}, fmt.Errorf("storage: cannot save result: %w", err)
	}
	return r, nil
}

// ResultByID returns a single result, or nil if it does not exist.
func (s *Store) ResultByID(id string) (*Result, error) {
	row := s.db.QueryRow(
		`SELECT id, player, board_size, time_limit_secs, matches, pairs, elapsed_ms, outcome, created_at
		 FROM results WHERE id = ?`,
		id,
	)
	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}
	return &r, nil
}

// RecentResults returns the latest results across all boards, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryResults(
		`SELECT id, player, board_size, time_limit_secs, matches, pairs, elapsed_ms, outcome, created_at
		 FROM results
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
}

// BestTimes returns the fastest cleared games on a board, fastest first.
func (s *Store) BestTimes(boardSize, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT id, player, board_size, time_limit_secs, matches, pairs, elapsed_ms, outcome, created_at
		 FROM results
		 WHERE board_size = ? AND outcome = ?
		 ORDER BY elapsed_ms ASC, created_at ASC
		 LIMIT ?`,
		boardSize, OutcomeCleared, limit,
	)
}

func (s *Store) queryResults(query string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(sc scanner) (Result, error) {
	var (
		r         Result
		elapsedMS int64
		createdAt any
	)
	if err := sc.Scan(&r.ID, &r.Player, &r.BoardSize, &r.TimeLimit, &r.Matches, &r.Pairs, &elapsedMS, &r.Outcome, &createdAt); err != nil {
		return Result{}, err
	}
	r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string column values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	case []byte:
		if parsed, err := time.Parse(timeLayout, string(t)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Stats contains aggregated statistics for one board size.
type Stats struct {
	BoardSize  int
	Games      int
	Cleared    int
	Timeouts   int
	Abandoned  int
	Best       time.Duration // fastest clear, 0 if never cleared
	AvgMatches float64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for a board size.
func (s *Store) Stats(boardSize int) (*Stats, error) {
	all, err := s.AllStats()
	if err != nil {
		return nil, err
	}
	if st, ok := all[boardSize]; ok {
		return st, nil
	}
	return &Stats{BoardSize: boardSize}, nil
}

// AllStats retrieves statistics for every board size that has been played.
func (s *Store) AllStats() (map[int]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT board_size,
		        COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'cleared' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'timeout' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'abandoned' THEN 1 ELSE 0 END), 0),
		        COALESCE(MIN(CASE WHEN outcome = 'cleared' THEN elapsed_ms END), 0),
		        COALESCE(AVG(matches), 0),
		        MAX(created_at)
		 FROM results
		 GROUP BY board_size`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int]*Stats)
	for rows.Next() {
		var (
			st         Stats
			bestMS     int64
			lastPlayed any
		)
		if err := rows.Scan(&st.BoardSize, &st.Games, &st.Cleared, &st.Timeouts, &st.Abandoned, &bestMS, &st.AvgMatches, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.Best = time.Duration(bestMS) * time.Millisecond
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.BoardSize] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearResults deletes every result for a board size.
func (s *Store) ClearResults(boardSize int) error {
	_, err := s.db.Exec("DELETE FROM results WHERE board_size = ?", boardSize)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
