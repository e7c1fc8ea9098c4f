package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bandroom/internal/domain"
	"bandroom/internal/pkg/opentime"
	"bandroom/internal/pkg/slots"
	"bandroom/internal/pkg/validator"
	"bandroom/internal/repository"
)

const EventOpenTimeUpdated = "open_time.updated"

const localLayout = "2006-01-02T15:04"

type Service struct {
	settings SettingRepository
	visible  VisibleDateRepository
	events   EventPublisher
	loc      *time.Location
	now      func() time.Time
}

func NewService(settings SettingRepository, visible VisibleDateRepository, events EventPublisher, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		settings: settings,
		visible:  visible,
		events:   events,
		loc:      loc,
		now:      time.Now,
	}
}

// SetClock replaces the time source, for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// OpenTime returns the stored open instant, or nil when none is set.
func (s *Service) OpenTime(ctx context.Context) (*time.Time, error) {
	st, err := s.settings.Get(ctx, domain.SettingReservationOpenTime)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load open time: %w", err)
	}
	if strings.TrimSpace(st.Value) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, st.Value)
	if err != nil {
		return nil, fmt.Errorf("stored open time %q: %w", st.Value, err)
	}
	return &t, nil
}

// IsOpen reports whether reservations may be created right now.
func (s *Service) IsOpen(ctx context.Context) (bool, *time.Time, error) {
	openAt, err := s.OpenTime(ctx)
	if err != nil {
		return false, nil, err
	}
	return opentime.IsOpen(openAt, s.now()), openAt, nil
}

func (s *Service) Status(ctx context.Context) (GateStatus, error) {
	open, openAt, err := s.IsOpen(ctx)
	if err != nil {
		return GateStatus{}, err
	}
	return GateStatus{IsOpen: open, OpenAt: openAt}, nil
}

// SetOpenTime stores the instant in UTC, replacing any previous one.
func (s *Service) SetOpenTime(ctx context.Context, raw string) (time.Time, error) {
	t, err := s.parseInstant(raw)
	if err != nil {
		return time.Time{}, err
	}
	if err := s.settings.Upsert(ctx, domain.SettingReservationOpenTime, t.Format(time.RFC3339)); err != nil {
		return time.Time{}, fmt.Errorf("store open time: %w", err)
	}

	s.publish(&t)
	return t, nil
}

func (s *Service) ClearOpenTime(ctx context.Context) error {
	if err := s.settings.Delete(ctx, domain.SettingReservationOpenTime); err != nil {
		return fmt.Errorf("clear open time: %w", err)
	}
	s.publish(nil)
	return nil
}

func (s *Service) publish(openAt *time.Time) {
	if s.events == nil {
		return
	}
	s.events.Publish(EventOpenTimeUpdated, GateStatus{IsOpen: opentime.IsOpen(openAt, s.now()), OpenAt: openAt})
}

func (s *Service) parseInstant(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrValidation
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC().Truncate(time.Second), nil
	}
	if t, err := time.ParseInLocation(localLayout, raw, s.loc); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrValidation
}

func (s *Service) VisibleDates(ctx context.Context) ([]domain.VisibleDate, error) {
	out, err := s.visible.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list visible dates: %w", err)
	}
	if out == nil {
		out = []domain.VisibleDate{}
	}
	return out, nil
}

func (s *Service) AddVisibleDate(ctx context.Context, req VisibleDateRequest) (*domain.VisibleDate, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}
	d, _ := slots.ParseDate(req.Date)

	v := &domain.VisibleDate{Date: d.Format(slots.DateLayout), WeekNumber: req.WeekNumber}
	if err := s.visible.Create(ctx, v); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDateVisible
		}
		return nil, fmt.Errorf("add visible date: %w", err)
	}
	return v, nil
}

func (s *Service) DeleteVisibleDate(ctx context.Context, id int64) error {
	ok, err := s.visible.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete visible date %d: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
