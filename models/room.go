package models

import (
	"time"
)

// Room status values. Occupied/Available are driven by booking transitions;
// Maintenance is only ever set by a direct room update.
const (
	RoomStatusAvailable   = "Available"
	RoomStatusOccupied    = "Occupied"
	RoomStatusMaintenance = "Maintenance"
)

// Room type values accepted on create/update.
const (
	RoomTypeStandard     = "Standard"
	RoomTypeDeluxe       = "Deluxe"
	RoomTypeSuite        = "Suite"
	RoomTypePresidential = "Presidential"
)

type Room struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	RoomNumber    string  `gorm:"column:room_number;uniqueIndex;type:varchar(50)" json:"room_number"`
	Type          string  `gorm:"size:64" json:"type"`
	Floor         int     `json:"floor"`
	Capacity      int     `json:"capacity"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"price_per_night"`
	Status        string  `gorm:"size:32" json:"status"`
	Amenities     string  `gorm:"type:text" json:"amenities"`
	Description   string  `gorm:"type:text" json:"description"`
}
