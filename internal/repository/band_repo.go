package repository

import (
	"context"

	"gorm.io/gorm"

	"bandroom/internal/domain"
)

type BandRepository struct {
	db *gorm.DB
}

func NewBandRepository(db *gorm.DB) *BandRepository {
	return &BandRepository{db: db}
}

// List returns bands newest first.
func (r *BandRepository) List(ctx context.Context) ([]domain.Band, error) {
	var bands []domain.Band
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&bands).Error
	if err != nil {
		return nil, err
	}
	return bands, nil
}

func (r *BandRepository) GetByID(ctx context.Context, id int64) (*domain.Band, error) {
	var b domain.Band
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BandRepository) Create(ctx context.Context, b *domain.Band) error {
	return translate(r.db.WithContext(ctx).Create(b).Error)
}

// Update renames and recolors a band in place.
func (r *BandRepository) Update(ctx context.Context, b *domain.Band) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Band{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{"name": b.Name, "color": b.Color})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return r.db.WithContext(ctx).First(b, b.ID).Error
}

// DeleteWithReservations removes the band and every reservation it owns in a
// single transaction. It reports whether the band existed and how many
// reservations went with it.
func (r *BandRepository) DeleteWithReservations(ctx context.Context, id int64) (bool, int64, error) {
	var found bool
	var removed int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("band_id = ?", id).Delete(&domain.Reservation{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected

		res = tx.Delete(&domain.Band{}, id)
		if res.Error != nil {
			return res.Error
		}
		found = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return found, removed, nil
}
