package models

import (
	"time"
)

const (
	StaffStatusActive   = "Active"
	StaffStatusInactive = "Inactive"
)

type Staff struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FirstName  string    `gorm:"column:first_name;size:128" json:"first_name"`
	LastName   string    `gorm:"column:last_name;size:128;index" json:"last_name"`
	Email      string    `gorm:"uniqueIndex;size:255" json:"email"`
	Phone      string    `gorm:"size:64" json:"phone"`
	Role       string    `gorm:"size:128" json:"role"`
	Department string    `gorm:"size:128" json:"department"`
	Salary     float64   `json:"salary"`
	Status     string    `gorm:"size:32" json:"status"`
	JoinDate   time.Time `gorm:"column:join_date;type:date" json:"join_date"`
}

func (Staff) TableName() string {
	return "staff"
}
