package employee

import (
	"context"
	"time"
)

// RateDefaults carries the configured fallback multipliers applied to
// new employees that do not specify their own.
type RateDefaults struct {
	OTRate      float64
	HolidayRate float64
}

func StandardRateDefaults() RateDefaults {
	return RateDefaults{OTRate: DefaultOTRate, HolidayRate: DefaultHolidayRate}
}

type Service struct {
	store    *Store
	defaults RateDefaults
}

func NewService(store *Store, defaults RateDefaults) *Service {
	if defaults.OTRate == 0 {
		defaults.OTRate = DefaultOTRate
	}
	if defaults.HolidayRate == 0 {
		defaults.HolidayRate = DefaultHolidayRate
	}
	return &Service{store: store, defaults: defaults}
}

type CreateInput struct {
	Name        string
	Position    string
	StartDate   time.Time
	Status      string
	DailyRate   float64
	HourlyRate  float64
	OTRate      float64
	HolidayRate float64
}

// withDefaults fills in the rate-card conventions: hourly defaults to
// daily/8, multipliers fall back to the configured defaults.
func (in CreateInput) withDefaults(defaults RateDefaults) CreateInput {
	if in.Status == "" {
		in.Status = StatusProbationary
	}
	if in.HourlyRate == 0 && in.DailyRate > 0 {
		in.HourlyRate = in.DailyRate / hoursPerWorkday
	}
	if in.OTRate == 0 {
		in.OTRate = defaults.OTRate
	}
	if in.HolidayRate == 0 {
		in.HolidayRate = defaults.HolidayRate
	}
	return in
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Employee, error) {
	in = in.withDefaults(s.defaults)
	if !ValidStatus(in.Status) {
		return nil, ErrInvalidStatus
	}

	id, err := s.store.NextEmployeeID(ctx)
	if err != nil {
		return nil, err
	}

	emp := Employee{
		EmployeeID:  id,
		Name:        in.Name,
		Position:    in.Position,
		StartDate:   in.StartDate,
		Status:      in.Status,
		DailyRate:   in.DailyRate,
		HourlyRate:  in.HourlyRate,
		OTRate:      in.OTRate,
		HolidayRate: in.HolidayRate,
	}
	if err := s.store.Create(ctx, emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Service) Get(ctx context.Context, employeeID string) (*Employee, error) {
	return s.store.Get(ctx, employeeID)
}

// List returns the registry with display tenure filled in.
func (s *Service) List(ctx context.Context) ([]Employee, error) {
	employees, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	today := time.Now()
	for i := range employees {
		employees[i].Tenure = Tenure(employees[i].StartDate, today)
	}
	return employees, nil
}

func (s *Service) Update(ctx context.Context, emp Employee) error {
	if !ValidStatus(emp.Status) {
		return ErrInvalidStatus
	}
	return s.store.Update(ctx, emp)
}

func (s *Service) Exists(ctx context.Context, employeeID string) (bool, error) {
	return s.store.Exists(ctx, employeeID)
}
