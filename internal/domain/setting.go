package domain

import "time"

const SettingReservationOpenTime = "reservation_open_time"

type Setting struct {
	Key       string    `json:"key" gorm:"primaryKey;type:varchar(64)"`
	Value     string    `json:"value" gorm:"type:varchar(64);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string { return "settings" }

// VisibleDate is advisory metadata about which dates are surfaced to users.
type VisibleDate struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	Date       string    `json:"date" gorm:"type:varchar(10);not null;uniqueIndex"`
	WeekNumber int       `json:"week_number"`
	CreatedAt  time.Time `json:"created_at"`
}

func (VisibleDate) TableName() string { return "visible_dates" }
