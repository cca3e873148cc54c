// Package journal records session events and daily reports to SQLite.
// It is an append-only log; nothing in it is loaded back into a session.
package journal

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/yarml/farmer/internal/engine"
)

// DB wraps a SQLite connection for the event journal.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		seed INTEGER NOT NULL,
		level TEXT NOT NULL,
		started_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id INTEGER NOT NULL REFERENCES sessions(id),
		tick INTEGER NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS day_reports (
		session_id INTEGER NOT NULL REFERENCES sessions(id),
		day INTEGER NOT NULL,
		harvested INTEGER NOT NULL,
		stats_json TEXT NOT NULL,
		PRIMARY KEY (session_id, day)
	);

	CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id, tick);
	CREATE INDEX IF NOT EXISTS idx_events_category ON events(category);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// StartSession registers a new session and returns its ID.
func (db *DB) StartSession(seed int64, level string) (int64, error) {
	res, err := db.conn.Exec(
		"INSERT INTO sessions (seed, level, started_at) VALUES (?, ?, ?)",
		seed, level, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}
	return res.LastInsertId()
}

// SaveEvents appends events for a session.
func (db *DB) SaveEvents(sessionID int64, events []engine.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(
		"INSERT INTO events (session_id, tick, description, category) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.Exec(sessionID, e.Tick, e.Description, e.Category); err != nil {
			return fmt.Errorf("insert event at tick %d: %w", e.Tick, err)
		}
	}

	return tx.Commit()
}

// SaveReport stores the statistics for a day, replacing any earlier report
// for the same day.
func (db *DB) SaveReport(sessionID int64, stats engine.SessionStats) error {
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	_, err = db.conn.Exec(
		"INSERT OR REPLACE INTO day_reports (session_id, day, harvested, stats_json) VALUES (?, ?, ?, ?)",
		sessionID, stats.Day, stats.Harvested, string(statsJSON),
	)
	return err
}

// Flush writes the session's buffered events and current report.
func (db *DB) Flush(sessionID int64, sess *engine.Session) error {
	events := sess.DrainEvents()
	if err := db.SaveEvents(sessionID, events); err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	stats := sess.Report()
	if err := db.SaveReport(sessionID, stats); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	slog.Debug("journal flushed", "session", sessionID, "events", len(events), "day", stats.Day)
	return nil
}

// RecentEvents returns the most recent N events of a session, newest first.
func (db *DB) RecentEvents(sessionID int64, limit int) ([]engine.Event, error) {
	var events []engine.Event
	err := db.conn.Select(&events,
		"SELECT tick, description, category FROM events WHERE session_id = ? ORDER BY id DESC LIMIT ?",
		sessionID, limit,
	)
	return events, err
}

// Report returns the stored statistics for a session day.
func (db *DB) Report(sessionID int64, day int) (engine.SessionStats, error) {
	var stats engine.SessionStats
	var raw string
	if err := db.conn.Get(&raw,
		"SELECT stats_json FROM day_reports WHERE session_id = ? AND day = ?", sessionID, day); err != nil {
		return stats, err
	}
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return stats, fmt.Errorf("decode report: %w", err)
	}
	return stats, nil
}

// HarvestTotal returns the latest harvest total recorded for a session.
func (db *DB) HarvestTotal(sessionID int64) (int, error) {
	var total int
	err := db.conn.Get(&total,
		"SELECT COALESCE(MAX(harvested), 0) FROM day_reports WHERE session_id = ?", sessionID)
	return total, err
}
