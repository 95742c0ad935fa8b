package models

import (
	"time"
)

// User is a dashboard login. Password holds a bcrypt hash and is never
// serialized.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username string `gorm:"uniqueIndex;size:150" json:"username"`
	Password string `gorm:"size:255" json:"-"`
	Role     string `gorm:"size:64" json:"role"`
}
