package tracker

import (
	"context"
	"errors"
	"strings"
	"time"
)

type Service struct {
	store       *Store
	defaultRate float64
	now         func() time.Time
}

func NewService(store *Store, defaultRate float64) *Service {
	return &Service{store: store, defaultRate: defaultRate, now: time.Now}
}

// Start opens a new session. Only one timer runs at a time.
func (s *Service) Start(ctx context.Context, in StartInput) (*Session, error) {
	if _, err := s.store.Active(ctx); err == nil {
		return nil, ErrTimerRunning
	} else if !errors.Is(err, ErrNoActiveTimer) {
		return nil, err
	}

	return s.store.Insert(ctx, Session{
		Project:   strings.TrimSpace(in.Project),
		Task:      strings.TrimSpace(in.Task),
		StartedAt: s.now(),
		Billable:  in.Billable,
	})
}

// Stop closes the running session and bills it at the current rate.
func (s *Service) Stop(ctx context.Context) (*Session, error) {
	sess, err := s.store.Active(ctx)
	if err != nil {
		return nil, err
	}

	rate, err := s.store.HourlyRate(ctx, s.defaultRate)
	if err != nil {
		return nil, err
	}

	ended := s.now()
	sess.EndedAt = &ended
	sess.Hours = SessionHours(sess.StartedAt, ended)
	sess.Amount = SessionAmount(sess.Hours, sess.Billable, rate)

	if err := s.store.Update(ctx, *sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Edit replaces a session's fields and recomputes hours and amount.
func (s *Service) Edit(ctx context.Context, id string, in EditInput) (*Session, error) {
	if !in.EndedAt.After(in.StartedAt) {
		return nil, ErrInvalidSpan
	}

	rate, err := s.store.HourlyRate(ctx, s.defaultRate)
	if err != nil {
		return nil, err
	}

	hours := SessionHours(in.StartedAt, in.EndedAt)
	sess := Session{
		ID:        id,
		Project:   strings.TrimSpace(in.Project),
		Task:      strings.TrimSpace(in.Task),
		StartedAt: in.StartedAt,
		EndedAt:   &in.EndedAt,
		Billable:  in.Billable,
		Hours:     hours,
		Amount:    SessionAmount(hours, in.Billable, rate),
	}
	if err := s.store.Update(ctx, sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Session, error) {
	return s.store.List(ctx)
}

func (s *Service) Active(ctx context.Context) (*Session, error) {
	return s.store.Active(ctx)
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	sessions, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	rate, err := s.store.HourlyRate(ctx, s.defaultRate)
	if err != nil {
		return nil, err
	}
	overview := BuildOverview(sessions, s.now(), rate)
	return &overview, nil
}

func (s *Service) HourlyRate(ctx context.Context) (float64, error) {
	return s.store.HourlyRate(ctx, s.defaultRate)
}

func (s *Service) SetHourlyRate(ctx context.Context, rate float64) error {
	if rate < 0 {
		return ErrInvalidRate
	}
	return s.store.SetHourlyRate(ctx, rate)
}
