package domain

import "time"

// Reservation occupies one half-hour slot. Date is "2006-01-02"; StartTime and
// EndTime use the extended-hour clock ("24:30", "25:00") of the venue day.
type Reservation struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	BandID    int64     `json:"band_id" gorm:"not null;index"`
	Date      string    `json:"date" gorm:"type:varchar(10);not null;uniqueIndex:idx_reservation_slot,priority:1"`
	StartTime string    `json:"start_time" gorm:"type:varchar(5);not null;uniqueIndex:idx_reservation_slot,priority:2"`
	EndTime   string    `json:"end_time" gorm:"type:varchar(5);not null"`
	CreatedAt time.Time `json:"created_at"`

	Band *Band `json:"-" gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
}

func (Reservation) TableName() string { return "reservations" }

// ReservationView is a reservation joined with its band for display.
type ReservationView struct {
	ID         int64     `json:"id"`
	BandID     int64     `json:"band_id"`
	BandName   string    `json:"band_name"`
	Color      string    `json:"color"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	StartLabel string    `json:"start_label" gorm:"-"`
	EndLabel   string    `json:"end_label" gorm:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
