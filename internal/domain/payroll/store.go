package payroll

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"koala/internal/domain/employee"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// ListJoined loads the period's time entries left-joined with the
// employee registry. A missing registry row surfaces as nil rates, not
// a dropped entry.
func (s *Store) ListJoined(ctx context.Context, start, end time.Time) ([]JoinedEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT t.entry_date, t.employee_id, t.employee_name,
           t.reg_hours, t.ot_hours, t.is_holiday,
           e.hourly_rate, e.ot_rate, e.holiday_rate
    FROM time_entries t
    LEFT JOIN employees e ON t.employee_id = e.employee_id
    WHERE t.entry_date >= $1 AND t.entry_date <= $2
    ORDER BY t.entry_date, t.employee_id
  `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []JoinedEntry
	for rows.Next() {
		var entry JoinedEntry
		var hourly, ot, holiday *float64
		if err := rows.Scan(
			&entry.Date, &entry.EmployeeID, &entry.Name,
			&entry.RegHours, &entry.OTHours, &entry.IsHoliday,
			&hourly, &ot, &holiday,
		); err != nil {
			return nil, err
		}
		if hourly == nil || ot == nil || holiday == nil {
			entry.RateMissing = true
		} else {
			entry.Rates = employee.RateCard{HourlyRate: *hourly, OTRate: *ot, HolidayRate: *holiday}
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}
