package dtr

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) EntryExists(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM time_entries
    WHERE employee_id = $1 AND entry_date = $2
  `, employeeID, date).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) Get(ctx context.Context, id string) (*TimeEntry, error) {
	var entry TimeEntry
	err := s.DB.QueryRow(ctx, `
    SELECT id, entry_date, employee_id, employee_name, time_in, time_out,
           reg_hours, ot_hours, is_holiday, notes, created_at
    FROM time_entries
    WHERE id = $1
  `, id).Scan(
		&entry.ID, &entry.Date, &entry.EmployeeID, &entry.Name,
		&entry.TimeIn, &entry.TimeOut, &entry.RegHours, &entry.OTHours,
		&entry.IsHoliday, &entry.Notes, &entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (s *Store) Insert(ctx context.Context, entry TimeEntry) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO time_entries (entry_date, employee_id, employee_name, time_in, time_out,
      reg_hours, ot_hours, is_holiday, notes)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING id
  `, entry.Date, entry.EmployeeID, entry.Name, entry.TimeIn, entry.TimeOut,
		entry.RegHours, entry.OTHours, entry.IsHoliday, entry.Notes).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) List(ctx context.Context, limit, offset int) ([]TimeEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, entry_date, employee_id, employee_name, time_in, time_out,
           reg_hours, ot_hours, is_holiday, notes, created_at
    FROM time_entries
    ORDER BY entry_date DESC, employee_id
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (s *Store) ListRange(ctx context.Context, start, end time.Time) ([]TimeEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, entry_date, employee_id, employee_name, time_in, time_out,
           reg_hours, ot_hours, is_holiday, notes, created_at
    FROM time_entries
    WHERE entry_date >= $1 AND entry_date <= $2
    ORDER BY entry_date, employee_id
  `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (s *Store) Update(ctx context.Context, entry TimeEntry) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE time_entries
    SET entry_date = $1,
        time_in = $2,
        time_out = $3,
        reg_hours = $4,
        ot_hours = $5,
        is_holiday = $6,
        notes = $7
    WHERE id = $8
  `, entry.Date, entry.TimeIn, entry.TimeOut, entry.RegHours, entry.OTHours,
		entry.IsHoliday, entry.Notes, entry.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM time_entries WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEntries(rows rowScanner) ([]TimeEntry, error) {
	var out []TimeEntry
	for rows.Next() {
		var entry TimeEntry
		if err := rows.Scan(
			&entry.ID, &entry.Date, &entry.EmployeeID, &entry.Name,
			&entry.TimeIn, &entry.TimeOut, &entry.RegHours, &entry.OTHours,
			&entry.IsHoliday, &entry.Notes, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	// A broken connection surfaces here, not in Next; without this a
	// partial read would pass for a complete one.
	return out, rows.Err()
}
