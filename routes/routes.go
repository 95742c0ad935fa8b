package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hms-backend/controllers"
	"hms-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers into the gin engine. Everything under /api
// except the auth endpoints sits behind the bearer-token middleware.
func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	gc *controllers.GuestController,
	sc *controllers.StaffController,
	bc *controllers.BookingController,
	dc *controllers.DashboardController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
			auth.POST("/register", ac.Register)
			auth.POST("/change-password", middleware.Auth(), ac.ChangePassword)
		}

		rooms := api.Group("/rooms", middleware.Auth())
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:id", rc.GetRoom)
			rooms.POST("", rc.CreateRoom)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.PATCH("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		guests := api.Group("/guests", middleware.Auth())
		{
			guests.GET("", gc.GetGuests)
			guests.GET("/:id", gc.GetGuest)
			guests.POST("", gc.CreateGuest)
			guests.PUT("/:id", gc.UpdateGuest)
			guests.DELETE("/:id", gc.DeleteGuest)
		}

		staff := api.Group("/staff", middleware.Auth())
		{
			staff.GET("", sc.GetStaff)
			staff.GET("/:id", sc.GetStaffMember)
			staff.POST("", sc.CreateStaffMember)
			staff.PUT("/:id", sc.UpdateStaffMember)
			staff.DELETE("/:id", sc.DeleteStaffMember)
		}

		bookings := api.Group("/bookings", middleware.Auth())
		{
			bookings.GET("", bc.GetBookings)
			bookings.GET("/:id", bc.GetBooking)
			bookings.POST("", bc.CreateBooking)
			bookings.PUT("/:id", bc.UpdateBooking)
			bookings.POST("/:id/checkout", bc.CheckoutBooking)
			bookings.DELETE("/:id", bc.DeleteBooking)
		}

		dashboard := api.Group("/dashboard", middleware.Auth())
		{
			dashboard.GET("/stats", dc.GetStats)
		}
	}

	return r
}
