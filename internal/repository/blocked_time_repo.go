package repository

import (
	"context"

	"gorm.io/gorm"

	"bandroom/internal/domain"
)

type BlockedTimeRepository struct {
	db *gorm.DB
}

func NewBlockedTimeRepository(db *gorm.DB) *BlockedTimeRepository {
	return &BlockedTimeRepository{db: db}
}

// Covers reports whether a blocked range on date contains the slot starting at
// startTime. Clock values are zero padded extended hours, so string order is
// time order.
func (r *BlockedTimeRepository) Covers(ctx context.Context, date, startTime string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.BlockedTime{}).
		Where("date = ?", date).
		Where("start_time <= ? AND end_time > ?", startTime, startTime).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *BlockedTimeRepository) List(ctx context.Context) ([]domain.BlockedTime, error) {
	var out []domain.BlockedTime
	err := r.db.WithContext(ctx).
		Order("date").
		Order("start_time").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BlockedTimeRepository) Create(ctx context.Context, b *domain.BlockedTime) error {
	return translate(r.db.WithContext(ctx).Create(b).Error)
}

func (r *BlockedTimeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&domain.BlockedTime{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
