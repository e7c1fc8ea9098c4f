package settings

import (
	"context"

	"bandroom/internal/domain"
)

type SettingRepository interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Upsert(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type VisibleDateRepository interface {
	List(ctx context.Context) ([]domain.VisibleDate, error)
	Create(ctx context.Context, v *domain.VisibleDate) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type EventPublisher interface {
	Publish(eventType string, data any)
}
