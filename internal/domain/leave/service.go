package leave

import (
	"context"

	"koala/internal/domain/employee"
)

type Service struct {
	store     *Store
	employees *employee.Service
}

func NewService(store *Store, employees *employee.Service) *Service {
	return &Service{store: store, employees: employees}
}

// File records a leave for the employee. The employee's name is
// denormalized onto the row so listings stay readable even if the
// registry record is renamed later.
func (s *Service) File(ctx context.Context, in FileInput) (*Leave, error) {
	if !ValidType(in.LeaveType) {
		return nil, ErrInvalidType
	}
	emp, err := s.employees.Get(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	return s.store.Insert(ctx, emp.EmployeeID, emp.Name, in.LeaveDate, in.LeaveType)
}

func (s *Service) List(ctx context.Context) ([]Leave, error) {
	return s.store.List(ctx)
}

func (s *Service) ListForEmployee(ctx context.Context, employeeID string) ([]Leave, error) {
	return s.store.ListForEmployee(ctx, employeeID)
}
