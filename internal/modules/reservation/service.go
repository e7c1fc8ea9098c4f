package reservation

import (
	"context"
	"errors"
	"fmt"

	"bandroom/internal/domain"
	"bandroom/internal/pkg/slots"
	"bandroom/internal/repository"
)

const (
	EventReservationCreated = "reservation.created"
	EventReservationDeleted = "reservation.deleted"
)

type Service struct {
	reservations ReservationRepository
	blocked      BlockedTimeChecker
	bands        BandRepository
	gate         OpenGate
	events       EventPublisher
	enforceGate  bool
}

// NewService wires the conflict resolver. When enforceGate is false the open
// time is only advisory and creation ignores it.
func NewService(
	reservations ReservationRepository,
	blocked BlockedTimeChecker,
	bands BandRepository,
	gate OpenGate,
	events EventPublisher,
	enforceGate bool,
) *Service {
	return &Service{
		reservations: reservations,
		blocked:      blocked,
		bands:        bands,
		gate:         gate,
		events:       events,
		enforceGate:  enforceGate,
	}
}

// Create reserves one half-hour slot for a band. Rejections leave no row behind.
func (s *Service) Create(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	date, start, end, err := normalize(req)
	if err != nil {
		return nil, err
	}

	if s.enforceGate && s.gate != nil {
		open, _, err := s.gate.IsOpen(ctx)
		if err != nil {
			return nil, fmt.Errorf("check open time: %w", err)
		}
		if !open {
			return nil, ErrNotOpen
		}
	}

	if _, err := s.bands.GetByID(ctx, req.BandID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBandNotFound
		}
		return nil, fmt.Errorf("load band %d: %w", req.BandID, err)
	}

	blocked, err := s.blocked.Covers(ctx, date, start.String())
	if err != nil {
		return nil, fmt.Errorf("check blocked time: %w", err)
	}
	if blocked {
		return nil, ErrBlocked
	}

	taken, err := s.reservations.ExistsAt(ctx, date, start.String())
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}
	if taken {
		return nil, ErrConflict
	}

	r := &domain.Reservation{
		BandID:    req.BandID,
		Date:      date,
		StartTime: start.String(),
		EndTime:   end.String(),
	}
	if err := s.reservations.Create(ctx, r); err != nil {
		// the unique index wins races the pre-check could not see
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	if s.events != nil {
		s.events.Publish(EventReservationCreated, r)
	}
	return r, nil
}

// Delete removes a reservation on behalf of the band that owns it.
func (s *Service) Delete(ctx context.Context, id, bandID int64) error {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("load reservation %d: %w", id, err)
	}
	if r.BandID != bandID {
		return ErrForbidden
	}
	return s.remove(ctx, r, false)
}

// AdminDelete removes any reservation without an ownership check.
func (s *Service) AdminDelete(ctx context.Context, id int64) error {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("load reservation %d: %w", id, err)
	}
	return s.remove(ctx, r, true)
}

func (s *Service) remove(ctx context.Context, r *domain.Reservation, byAdmin bool) error {
	ok, err := s.reservations.Delete(ctx, r.ID)
	if err != nil {
		return fmt.Errorf("delete reservation %d: %w", r.ID, err)
	}
	if !ok {
		return ErrNotFound
	}

	if s.events != nil {
		s.events.Publish(EventReservationDeleted, DeletedEvent{
			ID:        r.ID,
			BandID:    r.BandID,
			Date:      r.Date,
			StartTime: r.StartTime,
			ByAdmin:   byAdmin,
		})
	}
	return nil
}

// List returns reservations for one date, an inclusive range, or all of them.
func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.ReservationView, error) {
	f := repository.ReservationFilter{}
	switch {
	case q.Date != "":
		d, err := slots.ParseDate(q.Date)
		if err != nil {
			return nil, ErrValidation
		}
		f.Date = d.Format(slots.DateLayout)
	case q.StartDate != "" && q.EndDate != "":
		from, err := slots.ParseDate(q.StartDate)
		if err != nil {
			return nil, ErrValidation
		}
		to, err := slots.ParseDate(q.EndDate)
		if err != nil {
			return nil, ErrValidation
		}
		f.StartDate = from.Format(slots.DateLayout)
		f.EndDate = to.Format(slots.DateLayout)
	}

	rows, err := s.reservations.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	if rows == nil {
		rows = []domain.ReservationView{}
	}
	return rows, nil
}

func normalize(req CreateReservationRequest) (string, slots.Slot, slots.Slot, error) {
	if req.BandID <= 0 {
		return "", slots.Slot{}, slots.Slot{}, ErrValidation
	}
	d, err := slots.ParseDate(req.Date)
	if err != nil {
		return "", slots.Slot{}, slots.Slot{}, ErrValidation
	}
	start, err := slots.Parse(req.StartTime)
	if err != nil {
		return "", slots.Slot{}, slots.Slot{}, ErrValidation
	}
	end := start.Next()

	if req.EndTime != "" {
		given, err := slots.ParseClock(req.EndTime)
		if err != nil || given != end {
			return "", slots.Slot{}, slots.Slot{}, ErrValidation
		}
	}
	return d.Format(slots.DateLayout), start, end, nil
}
