package payroll

import (
	"context"
	"time"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Generate builds the payroll summary for the closed interval
// [start, end]. A period with no entries yields an empty result, not
// an error; the caller decides how to present that.
func (s *Service) Generate(ctx context.Context, start, end time.Time) (Result, error) {
	entries, err := s.store.ListJoined(ctx, start, end)
	if err != nil {
		return Result{}, err
	}
	return Aggregate(entries, start, end), nil
}
