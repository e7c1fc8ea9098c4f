package reservation

import (
	"context"
	"time"

	"bandroom/internal/domain"
	"bandroom/internal/repository"
)

// ReservationRepository defines the interface for reservation storage
type ReservationRepository interface {
	ExistsAt(ctx context.Context, date, startTime string) (bool, error)
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, f repository.ReservationFilter) ([]domain.ReservationView, error)
}

// BlockedTimeChecker answers whether a slot falls inside an admin blocked range
type BlockedTimeChecker interface {
	Covers(ctx context.Context, date, startTime string) (bool, error)
}

type BandRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Band, error)
}

// OpenGate reports whether reservations are currently permitted
type OpenGate interface {
	IsOpen(ctx context.Context) (bool, *time.Time, error)
}

type EventPublisher interface {
	Publish(eventType string, data any)
}
