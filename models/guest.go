package models

import (
	"time"
)

type Guest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FirstName   string `gorm:"column:first_name;size:128" json:"first_name"`
	LastName    string `gorm:"column:last_name;size:128;index" json:"last_name"`
	Email       string `gorm:"uniqueIndex;size:255" json:"email"`
	Phone       string `gorm:"size:64" json:"phone"`
	IDType      string `gorm:"column:id_type;size:64" json:"id_type"`
	IDNumber    string `gorm:"column:id_number;size:128" json:"id_number"`
	Nationality string `gorm:"size:128" json:"nationality"`
	Address     string `gorm:"type:text" json:"address"`
}

// FullName is the display form used on enriched booking responses.
func (g Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}
