package blocking

import (
	"context"

	"bandroom/internal/domain"
)

type BlockedTimeRepository interface {
	List(ctx context.Context) ([]domain.BlockedTime, error)
	Create(ctx context.Context, b *domain.BlockedTime) error
	Delete(ctx context.Context, id int64) (bool, error)
}
