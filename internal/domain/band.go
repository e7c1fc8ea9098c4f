package domain

import "time"

type Band struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null" validate:"required"`
	Color     string    `json:"color" gorm:"type:varchar(20);not null" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Band) TableName() string { return "bands" }
