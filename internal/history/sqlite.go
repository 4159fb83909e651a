// Package history archives resolved days to a local SQLite database so a
// player can review past performance across sessions. The archive is a
// secondary record: the live game state never reads from it.
package history

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/appengine-ltd/yukemuri/internal/game"
)

// Archive stores one row per resolved day, keyed by day number. Saving the
// same day twice overwrites the earlier row, which keeps replays from a
// rolled-back save file consistent.
type Archive struct {
	db *sql.DB
}

// Open creates or opens the archive at path, creating parent directories as
// needed.
func Open(path string) (*Archive, error) {
	if path == "" {
		return nil, errors.New("history: empty archive path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("history: create archive dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open archive: %w", err)
	}
	// The engine is single threaded; one connection avoids locking surprises.
	db.SetMaxOpenConns(1)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Archive{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("history: apply pragma: %w", err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS days (
			day INTEGER PRIMARY KEY,
			season TEXT NOT NULL,
			weather TEXT NOT NULL,
			customers INTEGER NOT NULL,
			revenue INTEGER NOT NULL,
			expenses INTEGER NOT NULL,
			profit INTEGER NOT NULL,
			cash INTEGER NOT NULL,
			reputation REAL NOT NULL,
			raw_json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_days_profit ON days(profit);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("history: create schema: %w", err)
		}
	}
	return nil
}

// Close releases the underlying database. The archive is unusable afterwards.
func (a *Archive) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

// SaveDay records a resolved day. The full result is stored as JSON alongside
// the queryable columns.
func (a *Archive) SaveDay(result game.DailyResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("history: encode day %d: %w", result.Day, err)
	}
	_, err = a.db.Exec(
		`INSERT OR REPLACE INTO days
			(day, season, weather, customers, revenue, expenses, profit, cash, reputation, raw_json)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		result.Day,
		string(result.Season),
		string(result.Weather.Type),
		result.CustomerCount,
		result.Revenue.Total(),
		result.Expenses.Total(),
		result.Profit,
		result.Cash,
		result.Reputation,
		string(raw),
	)
	if err != nil {
		return fmt.Errorf("history: save day %d: %w", result.Day, err)
	}
	return nil
}

// LoadDay returns the archived result for one day, or an error if the day was
// never recorded.
func (a *Archive) LoadDay(day int) (game.DailyResult, error) {
	var raw string
	err := a.db.QueryRow(`SELECT raw_json FROM days WHERE day = ?;`, day).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return game.DailyResult{}, fmt.Errorf("history: day %d not archived", day)
	}
	if err != nil {
		return game.DailyResult{}, fmt.Errorf("history: load day %d: %w", day, err)
	}
	var result game.DailyResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return game.DailyResult{}, fmt.Errorf("history: decode day %d: %w", day, err)
	}
	return result, nil
}

// DaySummary is a compact row for listings, without the full result payload.
type DaySummary struct {
	Day        int
	Season     string
	Weather    string
	Customers  int
	Profit     int
	Cash       int
	Reputation float64
}

// RecentDays returns up to limit archived days, newest first.
func (a *Archive) RecentDays(limit int) ([]DaySummary, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := a.db.Query(
		`SELECT day, season, weather, customers, profit, cash, reputation
			FROM days ORDER BY day DESC LIMIT ?;`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: list days: %w", err)
	}
	defer rows.Close()

	var out []DaySummary
	for rows.Next() {
		var s DaySummary
		if err := rows.Scan(&s.Day, &s.Season, &s.Weather, &s.Customers, &s.Profit, &s.Cash, &s.Reputation); err != nil {
			return nil, fmt.Errorf("history: scan day row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: list days: %w", err)
	}
	return out, nil
}

// BestDay returns the archived day with the highest profit, or an error if
// the archive is empty.
func (a *Archive) BestDay() (DaySummary, error) {
	var s DaySummary
	err := a.db.QueryRow(
		`SELECT day, season, weather, customers, profit, cash, reputation
			FROM days ORDER BY profit DESC, day ASC LIMIT 1;`).
		Scan(&s.Day, &s.Season, &s.Weather, &s.Customers, &s.Profit, &s.Cash, &s.Reputation)
	if errors.Is(err, sql.ErrNoRows) {
		return DaySummary{}, errors.New("history: archive is empty")
	}
	if err != nil {
		return DaySummary{}, fmt.Errorf("history: best day: %w", err)
	}
	return s, nil
}
