package tracker

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const rateSettingKey = "tracker_hourly_rate"

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const sessionColumns = `id, project, task, started_at, ended_at, billable, hours, amount`

func (s *Store) Insert(ctx context.Context, sess Session) (*Session, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO tracker_sessions (project, task, started_at, ended_at, billable, hours, amount)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING `+sessionColumns+`
  `, sess.Project, sess.Task, sess.StartedAt, sess.EndedAt, sess.Billable, sess.Hours, sess.Amount).
		Scan(&sess.ID, &sess.Project, &sess.Task, &sess.StartedAt, &sess.EndedAt, &sess.Billable, &sess.Hours, &sess.Amount)
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	var sess Session
	err := s.DB.QueryRow(ctx, `
    SELECT `+sessionColumns+` FROM tracker_sessions WHERE id = $1
  `, id).Scan(&sess.ID, &sess.Project, &sess.Task, &sess.StartedAt, &sess.EndedAt, &sess.Billable, &sess.Hours, &sess.Amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sess, nil
}

// Active returns the running session, or ErrNoActiveTimer.
func (s *Store) Active(ctx context.Context) (*Session, error) {
	var sess Session
	err := s.DB.QueryRow(ctx, `
    SELECT `+sessionColumns+`
    FROM tracker_sessions
    WHERE ended_at IS NULL
    ORDER BY started_at DESC
    LIMIT 1
  `).Scan(&sess.ID, &sess.Project, &sess.Task, &sess.StartedAt, &sess.EndedAt, &sess.Billable, &sess.Hours, &sess.Amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoActiveTimer
		}
		return nil, err
	}
	return &sess, nil
}

func (s *Store) List(ctx context.Context) ([]Session, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+sessionColumns+`
    FROM tracker_sessions
    ORDER BY started_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.ID, &sess.Project, &sess.Task, &sess.StartedAt, &sess.EndedAt, &sess.Billable, &sess.Hours, &sess.Amount); err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

func (s *Store) Update(ctx context.Context, sess Session) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE tracker_sessions
    SET project = $1, task = $2, started_at = $3, ended_at = $4,
        billable = $5, hours = $6, amount = $7
    WHERE id = $8
  `, sess.Project, sess.Task, sess.StartedAt, sess.EndedAt,
		sess.Billable, sess.Hours, sess.Amount, sess.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	cmd, err := s.DB.Exec(ctx, `DELETE FROM tracker_sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// HourlyRate reads the persisted billing rate, falling back to the
// configured default when no one has set one yet.
func (s *Store) HourlyRate(ctx context.Context, fallback float64) (float64, error) {
	var raw string
	err := s.DB.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, rateSettingKey).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fallback, nil
		}
		return 0, err
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback, nil
	}
	return rate, nil
}

func (s *Store) SetHourlyRate(ctx context.Context, rate float64) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO settings (key, value) VALUES ($1, $2)
    ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
  `, rateSettingKey, strconv.FormatFloat(rate, 'f', -1, 64))
	return err
}
