package models

import "time"

// Subject is a school subject referenced by schedule slots and homework.
type Subject struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(50);index" json:"user_id"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	Color     string    `gorm:"type:varchar(30)" json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
