package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hms-backend/models"
)

// newTestDB opens an in-memory SQLite database for one test. The pool is
// pinned to a single connection so every query sees the same memory DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Guest{},
		&models.Staff{},
		&models.Booking{},
	))
	return db
}

func createTestGuest(t *testing.T, db *gorm.DB, email string) models.Guest {
	t.Helper()
	guest := models.Guest{FirstName: "Ada", LastName: "Lovelace", Email: email}
	require.NoError(t, db.Create(&guest).Error)
	return guest
}

func createTestRoom(t *testing.T, db *gorm.DB, number string) models.Room {
	t.Helper()
	room := models.Room{
		RoomNumber:    number,
		Type:          models.RoomTypeStandard,
		Floor:         1,
		Capacity:      2,
		PricePerNight: 100,
		Status:        models.RoomStatusAvailable,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
