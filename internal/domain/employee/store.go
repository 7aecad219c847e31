package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// NextEmployeeID draws from a database sequence so concurrent creations
// can never hand out the same EMP-NNN number.
func (s *Store) NextEmployeeID(ctx context.Context) (string, error) {
	var n int64
	if err := s.DB.QueryRow(ctx, "SELECT nextval('employee_numbers')").Scan(&n); err != nil {
		return "", err
	}
	return fmt.Sprintf("EMP-%03d", n), nil
}

func (s *Store) Create(ctx context.Context, emp Employee) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO employees (employee_id, name, position, start_date, status,
      daily_rate, hourly_rate, ot_rate, holiday_rate)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
  `, emp.EmployeeID, emp.Name, emp.Position, emp.StartDate, emp.Status,
		emp.DailyRate, emp.HourlyRate, emp.OTRate, emp.HolidayRate)
	return err
}

func (s *Store) Get(ctx context.Context, employeeID string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT employee_id, name, position, start_date, status,
           daily_rate, hourly_rate, ot_rate, holiday_rate, created_at, updated_at
    FROM employees
    WHERE employee_id = $1
  `, employeeID)

	var emp Employee
	if err := row.Scan(
		&emp.EmployeeID, &emp.Name, &emp.Position, &emp.StartDate, &emp.Status,
		&emp.DailyRate, &emp.HourlyRate, &emp.OTRate, &emp.HolidayRate,
		&emp.CreatedAt, &emp.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, name, position, start_date, status,
           daily_rate, hourly_rate, ot_rate, holiday_rate, created_at, updated_at
    FROM employees
    ORDER BY employee_id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(
			&emp.EmployeeID, &emp.Name, &emp.Position, &emp.StartDate, &emp.Status,
			&emp.DailyRate, &emp.HourlyRate, &emp.OTRate, &emp.HolidayRate,
			&emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) Update(ctx context.Context, emp Employee) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET name = $1,
        position = $2,
        start_date = $3,
        status = $4,
        daily_rate = $5,
        hourly_rate = $6,
        ot_rate = $7,
        holiday_rate = $8,
        updated_at = now()
    WHERE employee_id = $9
  `, emp.Name, emp.Position, emp.StartDate, emp.Status,
		emp.DailyRate, emp.HourlyRate, emp.OTRate, emp.HolidayRate, emp.EmployeeID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Exists(ctx context.Context, employeeID string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM employees
    WHERE employee_id = $1
  `, employeeID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
