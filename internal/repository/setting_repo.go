package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bandroom/internal/domain"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	var s domain.Setting
	if err := r.db.WithContext(ctx).Where(&domain.Setting{Key: key}).First(&s).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

// Upsert creates the setting if absent, else replaces its value.
func (r *SettingRepository) Upsert(ctx context.Context, key, value string) error {
	now := time.Now()
	s := domain.Setting{Key: key, Value: value, CreatedAt: now, UpdatedAt: now}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&s).Error
}

func (r *SettingRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where(&domain.Setting{Key: key}).Delete(&domain.Setting{}).Error
}
