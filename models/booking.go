package models

import (
	"time"
)

// Booking status values. Confirmed is the initial state; Checked Out and
// Cancelled are terminal.
const (
	BookingStatusConfirmed  = "Confirmed"
	BookingStatusCheckedOut = "Checked Out"
	BookingStatusCancelled  = "Cancelled"
)

// Payment status values, tracked independently of booking status.
const (
	PaymentStatusPending  = "Pending"
	PaymentStatusPaid     = "Paid"
	PaymentStatusRefunded = "Refunded"
)

// DateLayout is the calendar-date wire format for check_in/check_out.
const DateLayout = "2006-01-02"

// Booking holds an occupancy interval [CheckIn, CheckOut) on one room.
// Deletes are hard deletes so availability scans only ever see live rows.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	GuestID uint `gorm:"column:guest_id;index" json:"guest_id"`
	RoomID  uint `gorm:"column:room_id;index" json:"room_id"`

	CheckIn  time.Time `gorm:"column:check_in;type:date" json:"-"`
	CheckOut time.Time `gorm:"column:check_out;type:date" json:"-"`

	Adults          int     `gorm:"default:1" json:"adults"`
	Children        int     `gorm:"default:0" json:"children"`
	TotalAmount     float64 `gorm:"column:total_amount" json:"total_amount"`
	Status          string  `gorm:"size:32;index" json:"status"`
	PaymentStatus   string  `gorm:"column:payment_status;size:32" json:"payment_status"`
	SpecialRequests string  `gorm:"column:special_requests;type:text" json:"special_requests"`

	Guest Guest `gorm:"foreignKey:GuestID;references:ID" json:"-"`
	Room  Room  `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}

// IsTerminal reports whether the booking can no longer transition.
func (b Booking) IsTerminal() bool {
	return b.Status == BookingStatusCheckedOut || b.Status == BookingStatusCancelled
}

// BookingView is the read-time projection returned by the API: the stored
// booking plus display fields copied from the related guest and room. The
// copied fields are never persisted on the booking row.
type BookingView struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	GuestID  uint   `json:"guest_id"`
	RoomID   uint   `json:"room_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`

	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	TotalAmount     float64 `json:"total_amount"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"payment_status"`
	SpecialRequests string  `json:"special_requests"`

	GuestName     string  `json:"guest_name"`
	GuestEmail    string  `json:"guest_email"`
	GuestPhone    string  `json:"guest_phone"`
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
}

// View flattens the preloaded relations into the response projection.
func (b Booking) View() BookingView {
	return BookingView{
		ID:              b.ID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
		GuestID:         b.GuestID,
		RoomID:          b.RoomID,
		CheckIn:         b.CheckIn.Format(DateLayout),
		CheckOut:        b.CheckOut.Format(DateLayout),
		Adults:          b.Adults,
		Children:        b.Children,
		TotalAmount:     b.TotalAmount,
		Status:          b.Status,
		PaymentStatus:   b.PaymentStatus,
		SpecialRequests: b.SpecialRequests,
		GuestName:       b.Guest.FullName(),
		GuestEmail:      b.Guest.Email,
		GuestPhone:      b.Guest.Phone,
		RoomNumber:      b.Room.RoomNumber,
		RoomType:        b.Room.Type,
		PricePerNight:   b.Room.PricePerNight,
	}
}
