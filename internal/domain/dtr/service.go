package dtr

import (
	"context"

	"koala/internal/domain/employee"
)

type Service struct {
	store     *Store
	employees *employee.Service
	breakRule BreakRule
}

func NewService(store *Store, employees *employee.Service, rule BreakRule) *Service {
	return &Service{store: store, employees: employees, breakRule: rule}
}

func (s *Service) BreakRule() BreakRule {
	return s.breakRule
}

// LogTime validates and records one clock pair. One entry per employee
// per date; time out must land after time in on the same day.
func (s *Service) LogTime(ctx context.Context, in LogInput) (*TimeEntry, error) {
	timeIn, err := ParseClock(in.TimeIn)
	if err != nil {
		return nil, err
	}
	timeOut, err := ParseClock(in.TimeOut)
	if err != nil {
		return nil, err
	}
	if !timeOut.After(timeIn) {
		return nil, ErrInvalidInterval
	}

	emp, err := s.employees.Get(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}

	exists, err := s.store.EntryExists(ctx, in.EmployeeID, in.Date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEntry
	}

	reg, ot := SplitHours(timeIn, timeOut, s.breakRule)
	entry := TimeEntry{
		Date:       in.Date,
		EmployeeID: in.EmployeeID,
		Name:       emp.Name,
		TimeIn:     in.TimeIn,
		TimeOut:    in.TimeOut,
		RegHours:   reg,
		OTHours:    ot,
		IsHoliday:  in.IsHoliday,
		Notes:      in.Notes,
	}
	id, err := s.store.Insert(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return &entry, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]TimeEntry, error) {
	return s.store.List(ctx, limit, offset)
}

// Update rewrites an edited row. Derived hours are recomputed from the
// clock pair rather than trusted from the editor, so the stored
// Reg/OT columns never drift from the times. The employee identity and
// creation stamp come from the stored row, not the edit payload.
func (s *Service) Update(ctx context.Context, entry TimeEntry) (*TimeEntry, error) {
	timeIn, err := ParseClock(entry.TimeIn)
	if err != nil {
		return nil, err
	}
	timeOut, err := ParseClock(entry.TimeOut)
	if err != nil {
		return nil, err
	}
	if !timeOut.After(timeIn) {
		return nil, ErrInvalidInterval
	}

	existing, err := s.store.Get(ctx, entry.ID)
	if err != nil {
		return nil, err
	}
	entry.EmployeeID = existing.EmployeeID
	entry.Name = existing.Name
	entry.CreatedAt = existing.CreatedAt

	entry.RegHours, entry.OTHours = SplitHours(timeIn, timeOut, s.breakRule)
	if err := s.store.Update(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
