package leave

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Insert(ctx context.Context, employeeID, name string, leaveDate time.Time, leaveType string) (*Leave, error) {
	var l Leave
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leaves (employee_id, name, leave_date, leave_type, status)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id, employee_id, name, leave_date, leave_type, status, created_at
  `, employeeID, name, leaveDate, leaveType, StatusApproved).Scan(
		&l.ID, &l.EmployeeID, &l.Name, &l.LeaveDate, &l.LeaveType, &l.Status, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Store) List(ctx context.Context) ([]Leave, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, name, leave_date, leave_type, status, created_at
    FROM leaves
    ORDER BY leave_date DESC, created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Leave
	for rows.Next() {
		var l Leave
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.Name, &l.LeaveDate, &l.LeaveType, &l.Status, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *Store) ListForEmployee(ctx context.Context, employeeID string) ([]Leave, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, name, leave_date, leave_type, status, created_at
    FROM leaves
    WHERE employee_id = $1
    ORDER BY leave_date DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Leave
	for rows.Next() {
		var l Leave
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.Name, &l.LeaveDate, &l.LeaveType, &l.Status, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
