package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hms-backend/config"
	"hms-backend/controllers"
	"hms-backend/routes"
	"hms-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	log.Println("Database connection established and migrations applied")

	// Optional Redis cache for dashboard stats
	rdb := config.ConnectRedis(context.Background())

	// Initialize services
	authService := services.NewAuthService(db)
	roomService := services.NewRoomService(db)
	guestService := services.NewGuestService(db)
	staffService := services.NewStaffService(db)
	bookingService := services.NewBookingService(db)
	dashboardService := services.NewDashboardService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	roomController := controllers.NewRoomController(roomService, rdb)
	guestController := controllers.NewGuestController(guestService)
	staffController := controllers.NewStaffController(staffService)
	bookingController := controllers.NewBookingController(bookingService, rdb)
	dashboardController := controllers.NewDashboardController(dashboardService, rdb)

	router := routes.SetupRouter(
		authController,
		roomController,
		guestController,
		staffController,
		bookingController,
		dashboardController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal, then shut down with a timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
