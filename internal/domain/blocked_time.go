package domain

import "time"

// BlockedTime closes [StartTime, EndTime) on Date for new reservations.
type BlockedTime struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Date      string    `json:"date" gorm:"type:varchar(10);not null;index"`
	StartTime string    `json:"start_time" gorm:"type:varchar(5);not null"`
	EndTime   string    `json:"end_time" gorm:"type:varchar(5);not null"`
	Reason    *string   `json:"reason,omitempty" gorm:"type:varchar(200)"`
	CreatedAt time.Time `json:"created_at"`
}

func (BlockedTime) TableName() string { return "blocked_times" }
