package models

import "time"

// Base replaces gorm.Model for catalog records. Rows are deleted for real so a
// removed enrollment or submission never blocks its unique pair.
type Base struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
