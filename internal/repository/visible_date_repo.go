package repository

import (
	"context"

	"gorm.io/gorm"

	"bandroom/internal/domain"
)

type VisibleDateRepository struct {
	db *gorm.DB
}

func NewVisibleDateRepository(db *gorm.DB) *VisibleDateRepository {
	return &VisibleDateRepository{db: db}
}

func (r *VisibleDateRepository) List(ctx context.Context) ([]domain.VisibleDate, error) {
	var out []domain.VisibleDate
	if err := r.db.WithContext(ctx).Order("date").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *VisibleDateRepository) Create(ctx context.Context, v *domain.VisibleDate) error {
	return translate(r.db.WithContext(ctx).Create(v).Error)
}

func (r *VisibleDateRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&domain.VisibleDate{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
