package band

import (
	"context"

	"bandroom/internal/domain"
)

// BandRepository defines the interface for band storage
type BandRepository interface {
	List(ctx context.Context) ([]domain.Band, error)
	GetByID(ctx context.Context, id int64) (*domain.Band, error)
	Create(ctx context.Context, b *domain.Band) error
	Update(ctx context.Context, b *domain.Band) error
	DeleteWithReservations(ctx context.Context, id int64) (found bool, removed int64, err error)
}

type EventPublisher interface {
	Publish(eventType string, data any)
}
