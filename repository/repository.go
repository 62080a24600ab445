// Package repository stores sleep diary entries in PostgreSQL.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/insomniacure/insomnia/sleeplog"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const entryColumns = `id, sleep_date, to_char(bedtime, 'HH24:MI'), to_char(wakeup_time, 'HH24:MI'),
	sleep_duration, sleep_latency, sleep_quality, stress_level,
	caffeine_intake, exercise, notes, created_at`

const (
	listEntries = `SELECT ` + entryColumns + ` FROM sleep_log
	ORDER BY sleep_date DESC, wakeup_time DESC, id DESC`

	recentEntries = `SELECT ` + entryColumns + ` FROM sleep_log
	ORDER BY sleep_date DESC, wakeup_time DESC, id DESC LIMIT $1`

	getEntry = `SELECT ` + entryColumns + ` FROM sleep_log WHERE id = $1`

	createEntry = `INSERT INTO sleep_log (
		sleep_date, bedtime, wakeup_time, sleep_duration, sleep_latency,
		sleep_quality, stress_level, caffeine_intake, exercise, notes
	) VALUES ($1, $2::text::time, $3::text::time, $4, $5, $6, $7, $8, $9, $10)
	RETURNING ` + entryColumns

	updateEntry = `UPDATE sleep_log SET
		sleep_date = $2, bedtime = $3::text::time, wakeup_time = $4::text::time,
		sleep_duration = $5, sleep_latency = $6, sleep_quality = $7,
		stress_level = $8, caffeine_intake = $9, exercise = $10, notes = $11
	WHERE id = $1
	RETURNING ` + entryColumns

	deleteEntry = `DELETE FROM sleep_log WHERE id = $1`
)

// Repository reads and writes sleep_log rows.
type Repository struct {
	db DBTX
}

// New creates a Repository on top of a pool, connection or transaction.
func New(db DBTX) *Repository {
	return &Repository{db: db}
}

// List returns all entries, newest night first.
func (r *Repository) List(ctx context.Context) ([]sleeplog.Entry, error) {
	rows, err := r.db.Query(ctx, listEntries)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	entries, err := pgx.CollectRows(rows, collectEntry)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Recent returns at most limit entries, newest night first.
func (r *Repository) Recent(ctx context.Context, limit int) ([]sleeplog.Entry, error) {
	rows, err := r.db.Query(ctx, recentEntries, limit)
	if err != nil {
		return nil, fmt.Errorf("recent entries: %w", err)
	}
	entries, err := pgx.CollectRows(rows, collectEntry)
	if err != nil {
		return nil, fmt.Errorf("recent entries: %w", err)
	}
	return entries, nil
}

// Get returns the entry with the given id or sleeplog.ErrNotFound.
func (r *Repository) Get(ctx context.Context, id int64) (sleeplog.Entry, error) {
	e, err := scanEntry(r.db.QueryRow(ctx, getEntry, id))
	if err != nil {
		return sleeplog.Entry{}, wrapErr("get entry", err)
	}
	return e, nil
}

// Create stores a new entry. The sleep duration is derived from the params.
func (r *Repository) Create(ctx context.Context, p sleeplog.Params) (sleeplog.Entry, error) {
	e, err := scanEntry(r.db.QueryRow(ctx, createEntry,
		p.SleepDate, p.Bedtime, p.WakeupTime, p.Duration(), p.SleepLatency,
		p.SleepQuality, p.StressLevel, p.CaffeineIntake, p.Exercise, p.Notes,
	))
	if err != nil {
		return sleeplog.Entry{}, fmt.Errorf("create entry: %w", err)
	}
	return e, nil
}

// Update replaces the editable fields of an entry or returns sleeplog.ErrNotFound.
func (r *Repository) Update(ctx context.Context, id int64, p sleeplog.Params) (sleeplog.Entry, error) {
	e, err := scanEntry(r.db.QueryRow(ctx, updateEntry, id,
		p.SleepDate, p.Bedtime, p.WakeupTime, p.Duration(), p.SleepLatency,
		p.SleepQuality, p.StressLevel, p.CaffeineIntake, p.Exercise, p.Notes,
	))
	if err != nil {
		return sleeplog.Entry{}, wrapErr("update entry", err)
	}
	return e, nil
}

// Delete removes an entry or returns sleeplog.ErrNotFound.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteEntry, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sleeplog.ErrNotFound
	}
	return nil
}

func collectEntry(row pgx.CollectableRow) (sleeplog.Entry, error) {
	return scanEntry(row)
}

func scanEntry(row pgx.Row) (sleeplog.Entry, error) {
	var e sleeplog.Entry
	err := row.Scan(
		&e.ID, &e.SleepDate, &e.Bedtime, &e.WakeupTime,
		&e.SleepDuration, &e.SleepLatency, &e.SleepQuality, &e.StressLevel,
		&e.CaffeineIntake, &e.Exercise, &e.Notes, &e.CreatedAt,
	)
	return e, err
}

func wrapErr(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return sleeplog.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
