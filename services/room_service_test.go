package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms-backend/apperrors"
	"hms-backend/models"
)

func TestCreateRoomDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	room, err := svc.Create(CreateRoomInput{
		RoomNumber:    "201",
		Type:          models.RoomTypeDeluxe,
		PricePerNight: floatPtr(180),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, room.Floor)
	assert.Equal(t, 2, room.Capacity)
	assert.Equal(t, models.RoomStatusAvailable, room.Status)
}

func TestCreateRoomRequiresFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	_, err := svc.Create(CreateRoomInput{RoomNumber: "201"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.Get(err).Code)
}

func TestDuplicateRoomNumberConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	_, err := svc.Create(CreateRoomInput{
		RoomNumber:    "301",
		Type:          models.RoomTypeSuite,
		PricePerNight: floatPtr(400),
	})
	require.NoError(t, err)

	_, err = svc.Create(CreateRoomInput{
		RoomNumber:    "301",
		Type:          models.RoomTypeStandard,
		PricePerNight: floatPtr(90),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeConflict, apperrors.Get(err).Code)
}

func TestMaintenanceIsOperatorControlled(t *testing.T) {
	db := newTestDB(t)
	roomSvc := NewRoomService(db)
	bookingSvc := NewBookingService(db)
	guest := createTestGuest(t, db, "ada@example.com")

	room, err := roomSvc.Create(CreateRoomInput{
		RoomNumber:    "401",
		Type:          models.RoomTypePresidential,
		PricePerNight: floatPtr(900),
	})
	require.NoError(t, err)

	// operator parks the room in Maintenance through a direct update
	room, err = roomSvc.Update(room.ID, UpdateRoomInput{Status: strPtr(models.RoomStatusMaintenance)})
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusMaintenance, room.Status)

	// a booking transition on a DIFFERENT room never touches it
	other := createTestRoom(t, db, "402")
	view := mustCreateBooking(t, bookingSvc, guest.ID, other.ID, "2024-05-01", "2024-05-03")
	_, err = bookingSvc.Checkout(view.ID)
	require.NoError(t, err)

	assert.Equal(t, models.RoomStatusMaintenance, roomStatus(t, bookingSvc, room.ID))
}

func TestRoomUpdateMergesFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	room, err := svc.Create(CreateRoomInput{
		RoomNumber:    "105",
		Type:          models.RoomTypeStandard,
		PricePerNight: floatPtr(100),
		Amenities:     "wifi",
	})
	require.NoError(t, err)

	updated, err := svc.Update(room.ID, UpdateRoomInput{PricePerNight: floatPtr(120)})
	require.NoError(t, err)
	assert.Equal(t, 120.0, updated.PricePerNight)
	assert.Equal(t, "105", updated.RoomNumber)
	assert.Equal(t, "wifi", updated.Amenities)
}

func TestRoomNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	_, err := svc.Get(9000)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.Get(err).Code)

	err = svc.Delete(9000)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.Get(err).Code)
}

func TestListRoomsOrderedByNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	for _, number := range []string{"305", "101", "202"} {
		_, err := svc.Create(CreateRoomInput{
			RoomNumber:    number,
			Type:          models.RoomTypeStandard,
			PricePerNight: floatPtr(100),
		})
		require.NoError(t, err)
	}

	rooms, err := svc.List()
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, "101", rooms[0].RoomNumber)
	assert.Equal(t, "202", rooms[1].RoomNumber)
	assert.Equal(t, "305", rooms[2].RoomNumber)
}
