package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/logger"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS time_entries (
	id BIGSERIAL PRIMARY KEY,
	date TEXT UNIQUE NOT NULL,
	in_time TEXT NOT NULL,
	out_time TEXT NOT NULL,
	total_hours DOUBLE PRECISION NOT NULL,
	deviation_minutes INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// PostgresStore implements Store on a PostgreSQL connection pool.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresStore(ctx context.Context, dsn string, log logger.Logger) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Errorf("failed to connect to postgres: %v", err)
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		log.Errorf("failed to migrate postgres: %v", err)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &PostgresStore{pool: pool, logger: log}, nil
}

func (p *PostgresStore) Close() error {
	p.pool.Close()
	return nil
}

func (p *PostgresStore) Exists(ctx context.Context, date string) (bool, error) {
	var exists bool
	err := p.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM time_entries WHERE date = $1)`, date).Scan(&exists)
	if err != nil {
		p.logger.Errorf("failed to check entry %s: %v", date, err)
		return false, fmt.Errorf("failed to check entry: %w", err)
	}
	return exists, nil
}

func (p *PostgresStore) Get(ctx context.Context, date string) (*entry.TimeEntry, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, date, in_time, out_time, total_hours, deviation_minutes, created_at
		FROM time_entries WHERE date = $1`, date)

	var e entry.TimeEntry
	if err := row.Scan(&e.ID, &e.Date, &e.InTime, &e.OutTime, &e.TotalHours, &e.DeviationMinutes, &e.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		p.logger.Errorf("failed to get entry %s: %v", date, err)
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return &e, nil
}

func (p *PostgresStore) QueryRange(ctx context.Context, start, end string) ([]entry.TimeEntry, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, date, in_time, out_time, total_hours, deviation_minutes, created_at
		FROM time_entries WHERE date BETWEEN $1 AND $2 ORDER BY date ASC`, start, end)
	if err != nil {
		p.logger.Errorf("failed to query entries %s..%s: %v", start, end, err)
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []entry.TimeEntry{}
	for rows.Next() {
		var e entry.TimeEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.InTime, &e.OutTime, &e.TotalHours, &e.DeviationMinutes, &e.CreatedAt); err != nil {
			p.logger.Errorf("failed to scan entry: %v", err)
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		p.logger.Errorf("failed to read entries: %v", err)
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return entries, nil
}

func (p *PostgresStore) Insert(ctx context.Context, e *entry.TimeEntry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	err := p.pool.QueryRow(ctx, `INSERT INTO time_entries (date, in_time, out_time, total_hours, deviation_minutes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		e.Date, e.InTime, e.OutTime, e.TotalHours, e.DeviationMinutes, e.CreatedAt).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		p.logger.Errorf("failed to insert entry %s: %v", e.Date, err)
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

func (p *PostgresStore) Update(ctx context.Context, date, inTime, outTime string, totalHours float64, deviationMinutes int) error {
	tag, err := p.pool.Exec(ctx, `UPDATE time_entries
		SET in_time = $1, out_time = $2, total_hours = $3, deviation_minutes = $4
		WHERE date = $5`, inTime, outTime, totalHours, deviationMinutes, date)
	if err != nil {
		p.logger.Errorf("failed to update entry %s: %v", date, err)
		return fmt.Errorf("failed to update entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, date string) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM time_entries WHERE date = $1`, date); err != nil {
		p.logger.Errorf("failed to delete entry %s: %v", date, err)
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

var _ Store = (*PostgresStore)(nil)
