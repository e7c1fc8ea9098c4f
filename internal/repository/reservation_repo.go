package repository

import (
	"context"

	"gorm.io/gorm"

	"bandroom/internal/domain"
	"bandroom/internal/pkg/slots"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// ReservationFilter selects one date, an inclusive date range, or everything.
type ReservationFilter struct {
	Date      string
	StartDate string
	EndDate   string
}

// ExistsAt is the pre-check for an occupied slot. The unique index on
// (date, start_time) stays the authoritative guard.
func (r *ReservationRepository) ExistsAt(ctx context.Context, date, startTime string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("date = ? AND start_time = ?", date, startTime).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// Create inserts the reservation. A lost race on the slot surfaces as ErrDuplicate.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	return translate(r.db.WithContext(ctx).Create(res).Error)
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, translate(err)
	}
	return &res, nil
}

// Delete removes one reservation and reports whether it existed.
func (r *ReservationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&domain.Reservation{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *ReservationRepository) List(ctx context.Context, f ReservationFilter) ([]domain.ReservationView, error) {
	q := r.db.WithContext(ctx).
		Table("reservations AS r").
		Select(`r.id, r.band_id, b.name AS band_name, b.color AS color,
			r.date, r.start_time, r.end_time, r.created_at`).
		Joins("JOIN bands b ON b.id = r.band_id")

	switch {
	case f.Date != "":
		q = q.Where("r.date = ?", f.Date)
	case f.StartDate != "" && f.EndDate != "":
		q = q.Where("r.date BETWEEN ? AND ?", f.StartDate, f.EndDate)
	}

	var rows []domain.ReservationView
	if err := q.Order("r.date").Order("r.start_time").Scan(&rows).Error; err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].StartLabel = labelOf(rows[i].StartTime)
		rows[i].EndLabel = labelOf(rows[i].EndTime)
	}
	return rows, nil
}

func labelOf(clock string) string {
	s, err := slots.ParseClock(clock)
	if err != nil {
		return clock
	}
	return s.Label()
}
