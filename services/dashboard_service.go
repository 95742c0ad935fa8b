package services

import (
	"math"
	"sort"
	"time"

	"gorm.io/gorm"

	"hms-backend/apperrors"
	"hms-backend/models"
)

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

type MonthlyStat struct {
	Month    string  `json:"month"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type RoomTypeStat struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type DashboardStats struct {
	TotalRooms       int64                `json:"totalRooms"`
	AvailableRooms   int64                `json:"availableRooms"`
	OccupiedRooms    int64                `json:"occupiedRooms"`
	MaintenanceRooms int64                `json:"maintenanceRooms"`
	TotalGuests      int64                `json:"totalGuests"`
	TotalStaff       int64                `json:"totalStaff"`
	TotalBookings    int64                `json:"totalBookings"`
	ActiveBookings   int64                `json:"activeBookings"`
	TodayBookings    int                  `json:"todayBookings"`
	TotalRevenue     float64              `json:"totalRevenue"`
	MonthlyRevenue   float64              `json:"monthlyRevenue"`
	OccupancyRate    int                  `json:"occupancyRate"`
	RecentBookings   []models.BookingView `json:"recentBookings"`
	MonthlyStats     []MonthlyStat        `json:"monthlyStats"`
	RoomTypeStats    []RoomTypeStat       `json:"roomTypeStats"`
}

// Stats aggregates the dashboard numbers. The reference instant is passed in
// explicitly so revenue-by-month is a pure function of the store contents
// and now.
func (s *DashboardService) Stats(now time.Time) (DashboardStats, error) {
	var stats DashboardStats

	type countQuery struct {
		dest  *int64
		model interface{}
		conds []interface{}
	}
	counts := []countQuery{
		{&stats.TotalRooms, &models.Room{}, nil},
		{&stats.AvailableRooms, &models.Room{}, []interface{}{"status = ?", models.RoomStatusAvailable}},
		{&stats.OccupiedRooms, &models.Room{}, []interface{}{"status = ?", models.RoomStatusOccupied}},
		{&stats.MaintenanceRooms, &models.Room{}, []interface{}{"status = ?", models.RoomStatusMaintenance}},
		{&stats.TotalGuests, &models.Guest{}, nil},
		{&stats.TotalStaff, &models.Staff{}, nil},
		{&stats.TotalBookings, &models.Booking{}, nil},
		{&stats.ActiveBookings, &models.Booking{}, []interface{}{"status = ?", models.BookingStatusConfirmed}},
	}
	for _, q := range counts {
		query := s.DB.Model(q.model)
		if q.conds != nil {
			query = query.Where(q.conds[0], q.conds[1:]...)
		}
		if err := query.Count(q.dest).Error; err != nil {
			return stats, apperrors.Store("failed to count records", err)
		}
	}

	var bookings []models.Booking
	if err := s.DB.Select("total_amount", "payment_status", "created_at").
		Find(&bookings).Error; err != nil {
		return stats, apperrors.Store("failed to load bookings", err)
	}

	thisMonth := now.Format("2006-01")
	today := now.Format("2006-01-02")
	monthlyMap := map[string]*MonthlyStat{}

	for _, b := range bookings {
		month := b.CreatedAt.Format("2006-01")
		ms, ok := monthlyMap[month]
		if !ok {
			ms = &MonthlyStat{Month: month}
			monthlyMap[month] = ms
		}
		ms.Bookings++

		if b.CreatedAt.Format("2006-01-02") == today {
			stats.TodayBookings++
		}
		if b.PaymentStatus == models.PaymentStatusPaid {
			stats.TotalRevenue += b.TotalAmount
			ms.Revenue += b.TotalAmount
			if month == thisMonth {
				stats.MonthlyRevenue += b.TotalAmount
			}
		}
	}

	if stats.TotalRooms > 0 {
		stats.OccupancyRate = int(math.Round(float64(stats.OccupiedRooms) / float64(stats.TotalRooms) * 100))
	}

	sixMonthsAgo := now.AddDate(0, -6, 0).Format("2006-01")
	stats.MonthlyStats = make([]MonthlyStat, 0, len(monthlyMap))
	for month, ms := range monthlyMap {
		if month < sixMonthsAgo {
			continue
		}
		ms.Revenue = math.Round(ms.Revenue)
		stats.MonthlyStats = append(stats.MonthlyStats, *ms)
	}
	sort.Slice(stats.MonthlyStats, func(i, j int) bool {
		return stats.MonthlyStats[i].Month < stats.MonthlyStats[j].Month
	})

	var rooms []models.Room
	if err := s.DB.Select("type").Find(&rooms).Error; err != nil {
		return stats, apperrors.Store("failed to load rooms", err)
	}
	typeCount := map[string]int{}
	for _, r := range rooms {
		typeCount[r.Type]++
	}
	stats.RoomTypeStats = make([]RoomTypeStat, 0, len(typeCount))
	for roomType, count := range typeCount {
		stats.RoomTypeStats = append(stats.RoomTypeStats, RoomTypeStat{Type: roomType, Count: count})
	}
	sort.Slice(stats.RoomTypeStats, func(i, j int) bool {
		return stats.RoomTypeStats[i].Type < stats.RoomTypeStats[j].Type
	})

	var recent []models.Booking
	if err := s.DB.Preload("Guest").Preload("Room").
		Order("created_at DESC, id DESC").Limit(5).
		Find(&recent).Error; err != nil {
		return stats, apperrors.Store("failed to load recent bookings", err)
	}
	stats.RecentBookings = make([]models.BookingView, 0, len(recent))
	for _, b := range recent {
		stats.RecentBookings = append(stats.RecentBookings, b.View())
	}

	return stats, nil
}
