package models

import "time"

// User is a diary owner. Accounts are created through the guest login flow,
// every other row in the database is scoped to a user id.
type User struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(100)" json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
