package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"hms-backend/apperrors"
	"hms-backend/models"
)

// BookingService drives the booking lifecycle: availability checking on
// create, status transitions, and the room-status synchronization that
// follows every transition.
type BookingService struct {
	DB *gorm.DB

	roomLocks sync.Map
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// CreateBookingInput carries the create payload. TotalAmount is a pointer so
// the handler can tell a missing field from an explicit zero.
type CreateBookingInput struct {
	GuestID         uint
	RoomID          uint
	CheckIn         string
	CheckOut        string
	Adults          int
	Children        int
	TotalAmount     *float64
	Status          string
	PaymentStatus   string
	SpecialRequests string
}

// UpdateBookingInput carries a partial update. Nil means "leave unchanged";
// a present zero value is honored as-is.
type UpdateBookingInput struct {
	GuestID         *uint
	RoomID          *uint
	CheckIn         *string
	CheckOut        *string
	Adults          *int
	Children        *int
	TotalAmount     *float64
	Status          *string
	PaymentStatus   *string
	SpecialRequests *string
}

func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.Validation(fmt.Sprintf("invalid %s date, expected YYYY-MM-DD", field))
	}
	return t, nil
}

// lockRoom returns the per-room mutex that serializes the availability check
// and insert for a single room within this process.
func (s *BookingService) lockRoom(roomID uint) *sync.Mutex {
	mu, _ := s.roomLocks.LoadOrStore(roomID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// IsRoomAvailable reports whether any non-terminal booking on the room
// overlaps [checkIn, checkOut). Intervals are half-open, so a checkout day
// equal to the next check-in day does not conflict. excludeBookingID, when
// non-zero, removes that booking from the scan. The check has no side
// effects.
func (s *BookingService) IsRoomAvailable(roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	return s.isAvailable(s.DB, roomID, checkIn, checkOut, excludeBookingID)
}

func (s *BookingService) isAvailable(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	q := tx.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status NOT IN ?", []string{models.BookingStatusCancelled, models.BookingStatusCheckedOut}).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeBookingID != 0 {
		q = q.Where("id <> ?", excludeBookingID)
	}

	var conflicts int64
	if err := q.Count(&conflicts).Error; err != nil {
		return false, apperrors.Store("failed to check availability", err)
	}
	return conflicts == 0, nil
}

// syncRoomStatus mirrors a booking status change onto the room. Terminal
// statuses free the room, Confirmed occupies it. The synchronizer only ever
// writes Available or Occupied; Maintenance is operator-controlled and is
// never produced here.
func syncRoomStatus(tx *gorm.DB, roomID uint, bookingStatus string) error {
	var target string
	switch bookingStatus {
	case models.BookingStatusConfirmed:
		target = models.RoomStatusOccupied
	case models.BookingStatusCheckedOut, models.BookingStatusCancelled:
		target = models.RoomStatusAvailable
	default:
		return nil
	}

	if err := tx.Model(&models.Room{}).Where("id = ?", roomID).
		Update("status", target).Error; err != nil {
		return apperrors.Store("failed to sync room status", err)
	}
	return nil
}

// Create validates the payload, checks availability and inserts the booking.
// The check and insert run inside one transaction while holding the room's
// mutex, so two concurrent creates on the same room cannot both pass the
// availability scan. The room status sync shares the transaction: if the
// insert fails, the room is never touched.
func (s *BookingService) Create(in CreateBookingInput) (models.BookingView, error) {
	var view models.BookingView

	if in.GuestID == 0 || in.RoomID == 0 || in.CheckIn == "" || in.CheckOut == "" || in.TotalAmount == nil {
		return view, apperrors.Validation("guest_id, room_id, check_in, check_out, total_amount are required")
	}

	checkIn, err := parseDate(in.CheckIn, "check_in")
	if err != nil {
		return view, err
	}
	checkOut, err := parseDate(in.CheckOut, "check_out")
	if err != nil {
		return view, err
	}
	if !checkOut.After(checkIn) {
		return view, apperrors.Validation("check_out must be after check_in")
	}

	booking := models.Booking{
		GuestID:         in.GuestID,
		RoomID:          in.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          in.Adults,
		Children:        in.Children,
		TotalAmount:     *in.TotalAmount,
		Status:          in.Status,
		PaymentStatus:   in.PaymentStatus,
		SpecialRequests: in.SpecialRequests,
	}
	if booking.Adults <= 0 {
		booking.Adults = 1
	}
	if booking.Children < 0 {
		booking.Children = 0
	}
	if booking.Status == "" {
		booking.Status = models.BookingStatusConfirmed
	}
	if booking.PaymentStatus == "" {
		booking.PaymentStatus = models.PaymentStatusPending
	}

	mu := s.lockRoom(in.RoomID)
	mu.Lock()
	defer mu.Unlock()

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		if err := tx.First(&guest, in.GuestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Guest not found")
			}
			return apperrors.Store("failed to load guest", err)
		}

		var room models.Room
		if err := tx.First(&room, in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Room not found")
			}
			return apperrors.Store("failed to load room", err)
		}

		available, err := s.isAvailable(tx, in.RoomID, checkIn, checkOut, 0)
		if err != nil {
			return err
		}
		if !available {
			return apperrors.Conflict("Room is not available for selected dates")
		}

		if err := tx.Create(&booking).Error; err != nil {
			return apperrors.Store("failed to create booking", err)
		}

		return syncRoomStatus(tx, booking.RoomID, booking.Status)
	})
	if txErr != nil {
		return view, txErr
	}

	return s.Get(booking.ID)
}

// Update applies a partial update: every omitted field keeps its stored
// value. Dates and room may change without an availability re-check; the
// room status is then synced from the new status and the effective room.
// A terminal booking's status cannot change again.
func (s *BookingService) Update(bookingID uint, in UpdateBookingInput) (models.BookingView, error) {
	var view models.BookingView

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Booking not found")
			}
			return apperrors.Store("failed to load booking", err)
		}

		if in.Status != nil && *in.Status != booking.Status && booking.IsTerminal() {
			return apperrors.Conflict(fmt.Sprintf("booking is already %s", booking.Status))
		}

		if in.GuestID != nil {
			booking.GuestID = *in.GuestID
		}
		if in.RoomID != nil {
			booking.RoomID = *in.RoomID
		}
		if in.CheckIn != nil {
			t, err := parseDate(*in.CheckIn, "check_in")
			if err != nil {
				return err
			}
			booking.CheckIn = t
		}
		if in.CheckOut != nil {
			t, err := parseDate(*in.CheckOut, "check_out")
			if err != nil {
				return err
			}
			booking.CheckOut = t
		}
		if !booking.CheckOut.After(booking.CheckIn) {
			return apperrors.Validation("check_out must be after check_in")
		}
		if in.Adults != nil {
			booking.Adults = *in.Adults
		}
		if in.Children != nil {
			booking.Children = *in.Children
		}
		if in.TotalAmount != nil {
			booking.TotalAmount = *in.TotalAmount
		}
		if in.Status != nil {
			booking.Status = *in.Status
		}
		if in.PaymentStatus != nil {
			booking.PaymentStatus = *in.PaymentStatus
		}
		if in.SpecialRequests != nil {
			booking.SpecialRequests = *in.SpecialRequests
		}

		if err := tx.Save(&booking).Error; err != nil {
			return apperrors.Store("failed to update booking", err)
		}

		return syncRoomStatus(tx, booking.RoomID, booking.Status)
	})
	if txErr != nil {
		return view, txErr
	}

	return s.Get(bookingID)
}

// Checkout transitions the booking to Checked Out, leaving every other field
// untouched, and frees the room through the synchronizer.
func (s *BookingService) Checkout(bookingID uint) (models.BookingView, error) {
	status := models.BookingStatusCheckedOut
	return s.Update(bookingID, UpdateBookingInput{Status: &status})
}

// Delete removes the booking permanently. The room is forced back to
// Available first, without checking other bookings on it.
func (s *BookingService) Delete(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Booking not found")
			}
			return apperrors.Store("failed to load booking", err)
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).
			Update("status", models.RoomStatusAvailable).Error; err != nil {
			return apperrors.Store("failed to release room", err)
		}

		if err := tx.Delete(&booking).Error; err != nil {
			return apperrors.Store("failed to delete booking", err)
		}
		return nil
	})
}

// Get returns one booking enriched with guest and room display fields.
func (s *BookingService) Get(bookingID uint) (models.BookingView, error) {
	var booking models.Booking
	if err := s.DB.Preload("Guest").Preload("Room").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.BookingView{}, apperrors.NotFound("Booking not found")
		}
		return models.BookingView{}, apperrors.Store("failed to load booking", err)
	}
	return booking.View(), nil
}

// List returns all bookings newest-created-first, enriched for display.
func (s *BookingService) List() ([]models.BookingView, error) {
	var bookings []models.Booking
	if err := s.DB.Preload("Guest").Preload("Room").
		Order("created_at DESC, id DESC").
		Find(&bookings).Error; err != nil {
		return nil, apperrors.Store("failed to list bookings", err)
	}

	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, b.View())
	}
	return views, nil
}
