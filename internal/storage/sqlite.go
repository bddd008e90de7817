package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/logger"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS time_entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT UNIQUE NOT NULL,
	in_time TEXT NOT NULL,
	out_time TEXT NOT NULL,
	total_hours REAL NOT NULL,
	deviation_minutes INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// memoryPath opens a private in-memory database.
const memoryPath = ":memory:"

// SQLiteStore implements Store on a local SQLite file.
type SQLiteStore struct {
	db     *sql.DB
	logger logger.Logger
}

// NewSQLiteStore opens (creating if needed) the database at path and
// ensures the schema exists.
func NewSQLiteStore(ctx context.Context, path string, log logger.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		log.Errorf("failed to open sqlite database %s: %v", path, err)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if path == memoryPath {
		// each pooled connection would get its own empty in-memory database
		db.SetMaxOpenConns(1)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		log.Errorf("failed to migrate sqlite database %s: %v", path, err)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLiteStore{db: db, logger: log}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Exists(ctx context.Context, date string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM time_entries WHERE date = ?`, date).Scan(&n)
	if err != nil {
		s.logger.Errorf("failed to check entry %s: %v", date, err)
		return false, fmt.Errorf("failed to check entry: %w", err)
	}
	return n > 0, nil
}

func (s *SQLiteStore) Get(ctx context.Context, date string) (*entry.TimeEntry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, date, in_time, out_time, total_hours, deviation_minutes, created_at
		FROM time_entries WHERE date = ?`, date)

	var e entry.TimeEntry
	if err := row.Scan(&e.ID, &e.Date, &e.InTime, &e.OutTime, &e.TotalHours, &e.DeviationMinutes, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.logger.Errorf("failed to get entry %s: %v", date, err)
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return &e, nil
}

func (s *SQLiteStore) QueryRange(ctx context.Context, start, end string) ([]entry.TimeEntry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, date, in_time, out_time, total_hours, deviation_minutes, created_at
		FROM time_entries WHERE date BETWEEN ? AND ? ORDER BY date ASC`, start, end)
	if err != nil {
		s.logger.Errorf("failed to query entries %s..%s: %v", start, end, err)
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []entry.TimeEntry{}
	for rows.Next() {
		var e entry.TimeEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.InTime, &e.OutTime, &e.TotalHours, &e.DeviationMinutes, &e.CreatedAt); err != nil {
			s.logger.Errorf("failed to scan entry: %v", err)
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		s.logger.Errorf("failed to read entries: %v", err)
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return entries, nil
}

func (s *SQLiteStore) Insert(ctx context.Context, e *entry.TimeEntry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO time_entries (date, in_time, out_time, total_hours, deviation_minutes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.Date, e.InTime, e.OutTime, e.TotalHours, e.DeviationMinutes, e.CreatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return ErrDuplicateKey
		}
		s.logger.Errorf("failed to insert entry %s: %v", e.Date, err)
		return fmt.Errorf("failed to insert entry: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		e.ID = id
	}
	return nil
}

func (s *SQLiteStore) Update(ctx context.Context, date, inTime, outTime string, totalHours float64, deviationMinutes int) error {
	res, err := s.db.ExecContext(ctx, `UPDATE time_entries
		SET in_time = ?, out_time = ?, total_hours = ?, deviation_minutes = ?
		WHERE date = ?`, inTime, outTime, totalHours, deviationMinutes, date)
	if err != nil {
		s.logger.Errorf("failed to update entry %s: %v", date, err)
		return fmt.Errorf("failed to update entry: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, date string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM time_entries WHERE date = ?`, date); err != nil {
		s.logger.Errorf("failed to delete entry %s: %v", date, err)
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

var _ Store = (*SQLiteStore)(nil)
