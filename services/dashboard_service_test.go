package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms-backend/models"
)

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	guest := createTestGuest(t, db, "ada@example.com")
	occupied := createTestRoom(t, db, "101")
	require.NoError(t, db.Model(&occupied).Update("status", models.RoomStatusOccupied).Error)
	createTestRoom(t, db, "102")
	maintenance := createTestRoom(t, db, "103")
	require.NoError(t, db.Model(&maintenance).Update("status", models.RoomStatusMaintenance).Error)

	staff := models.Staff{
		FirstName: "Tom", LastName: "Baker", Email: "tom@example.com",
		Role: "Receptionist", Department: "Front Desk",
		Status: models.StaffStatusActive, JoinDate: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&staff).Error)

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	newBooking := func(createdAt time.Time, amount float64, paymentStatus, status string) {
		booking := models.Booking{
			GuestID:       guest.ID,
			RoomID:        occupied.ID,
			CheckIn:       createdAt,
			CheckOut:      createdAt.AddDate(0, 0, 2),
			Adults:        1,
			TotalAmount:   amount,
			Status:        status,
			PaymentStatus: paymentStatus,
			CreatedAt:     createdAt,
		}
		require.NoError(t, db.Create(&booking).Error)
	}

	// paid this month, paid last month, pending this month, paid today
	newBooking(time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC), 300, models.PaymentStatusPaid, models.BookingStatusConfirmed)
	newBooking(time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC), 500, models.PaymentStatusPaid, models.BookingStatusCheckedOut)
	newBooking(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC), 150, models.PaymentStatusPending, models.BookingStatusConfirmed)
	newBooking(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), 200, models.PaymentStatusPaid, models.BookingStatusConfirmed)

	stats, err := svc.Stats(now)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalRooms)
	assert.Equal(t, int64(1), stats.AvailableRooms)
	assert.Equal(t, int64(1), stats.OccupiedRooms)
	assert.Equal(t, int64(1), stats.MaintenanceRooms)
	assert.Equal(t, int64(1), stats.TotalGuests)
	assert.Equal(t, int64(1), stats.TotalStaff)
	assert.Equal(t, int64(4), stats.TotalBookings)
	assert.Equal(t, int64(3), stats.ActiveBookings)
	assert.Equal(t, 1, stats.TodayBookings)
	assert.Equal(t, 1000.0, stats.TotalRevenue)
	assert.Equal(t, 500.0, stats.MonthlyRevenue)
	assert.Equal(t, 33, stats.OccupancyRate)

	require.Len(t, stats.MonthlyStats, 2)
	assert.Equal(t, "2024-02", stats.MonthlyStats[0].Month)
	assert.Equal(t, 1, stats.MonthlyStats[0].Bookings)
	assert.Equal(t, 500.0, stats.MonthlyStats[0].Revenue)
	assert.Equal(t, "2024-03", stats.MonthlyStats[1].Month)
	assert.Equal(t, 3, stats.MonthlyStats[1].Bookings)
	assert.Equal(t, 500.0, stats.MonthlyStats[1].Revenue)

	require.Len(t, stats.RoomTypeStats, 1)
	assert.Equal(t, models.RoomTypeStandard, stats.RoomTypeStats[0].Type)
	assert.Equal(t, 3, stats.RoomTypeStats[0].Count)

	require.Len(t, stats.RecentBookings, 4)
	assert.Equal(t, "Ada Lovelace", stats.RecentBookings[0].GuestName)
	assert.Equal(t, "101", stats.RecentBookings[0].RoomNumber)
}

func TestDashboardStatsIsPureInNow(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	guest := createTestGuest(t, db, "ada@example.com")
	room := createTestRoom(t, db, "101")

	booking := models.Booking{
		GuestID:       guest.ID,
		RoomID:        room.ID,
		CheckIn:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
		Adults:        1,
		TotalAmount:   250,
		Status:        models.BookingStatusConfirmed,
		PaymentStatus: models.PaymentStatusPaid,
		CreatedAt:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&booking).Error)

	march := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	statsA, err := svc.Stats(march)
	require.NoError(t, err)
	statsB, err := svc.Stats(march)
	require.NoError(t, err)
	assert.Equal(t, statsA, statsB)

	// shifting the reference instant moves the booking out of "this month"
	april := time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC)
	statsApril, err := svc.Stats(april)
	require.NoError(t, err)
	assert.Equal(t, 250.0, statsApril.TotalRevenue)
	assert.Equal(t, 0.0, statsApril.MonthlyRevenue)
}
