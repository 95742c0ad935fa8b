package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"hms-backend/services"
	"hms-backend/utils"
)

type createBookingRequest struct {
	GuestID         uint     `json:"guest_id"`
	RoomID          uint     `json:"room_id"`
	CheckIn         string   `json:"check_in"`
	CheckOut        string   `json:"check_out"`
	Adults          int      `json:"adults"`
	Children        int      `json:"children"`
	TotalAmount     *float64 `json:"total_amount"`
	Status          string   `json:"status"`
	PaymentStatus   string   `json:"payment_status"`
	SpecialRequests string   `json:"special_requests"`
}

// updateBookingRequest uses pointers throughout so an omitted field can be
// told apart from an explicit zero (children: 0 must stick).
type updateBookingRequest struct {
	GuestID         *uint    `json:"guest_id"`
	RoomID          *uint    `json:"room_id"`
	CheckIn         *string  `json:"check_in"`
	CheckOut        *string  `json:"check_out"`
	Adults          *int     `json:"adults"`
	Children        *int     `json:"children"`
	TotalAmount     *float64 `json:"total_amount"`
	Status          *string  `json:"status"`
	PaymentStatus   *string  `json:"payment_status"`
	SpecialRequests *string  `json:"special_requests"`
}

type BookingController struct {
	Svc   *services.BookingService
	Cache *redis.Client
}

func NewBookingController(svc *services.BookingService, cache *redis.Client) *BookingController {
	return &BookingController{Svc: svc, Cache: cache}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (ctrl *BookingController) invalidateStats(c *gin.Context) {
	if ctrl.Cache == nil {
		return
	}
	_ = services.DeleteFromCache(c.Request.Context(), ctrl.Cache, DashboardStatsCacheKey)
}

// GetBookings GET /api/bookings
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	views, err := ctrl.Svc.List()
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetBooking GET /api/bookings/:id
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
		return
	}

	view, err := ctrl.Svc.Get(id)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreateBooking POST /api/bookings
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	view, err := ctrl.Svc.Create(services.CreateBookingInput{
		GuestID:         req.GuestID,
		RoomID:          req.RoomID,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Adults:          req.Adults,
		Children:        req.Children,
		TotalAmount:     req.TotalAmount,
		Status:          req.Status,
		PaymentStatus:   req.PaymentStatus,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}

	ctrl.invalidateStats(c)
	c.JSON(http.StatusCreated, view)
}

// UpdateBooking PUT /api/bookings/:id
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
		return
	}

	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	view, err := ctrl.Svc.Update(id, services.UpdateBookingInput{
		GuestID:         req.GuestID,
		RoomID:          req.RoomID,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Adults:          req.Adults,
		Children:        req.Children,
		TotalAmount:     req.TotalAmount,
		Status:          req.Status,
		PaymentStatus:   req.PaymentStatus,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}

	ctrl.invalidateStats(c)
	c.JSON(http.StatusOK, view)
}

// CheckoutBooking POST /api/bookings/:id/checkout
func (ctrl *BookingController) CheckoutBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
		return
	}

	view, err := ctrl.Svc.Checkout(id)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}

	ctrl.invalidateStats(c)
	c.JSON(http.StatusOK, view)
}

// DeleteBooking DELETE /api/bookings/:id
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
		return
	}

	if err := ctrl.Svc.Delete(id); err != nil {
		utils.JSONAppError(c, err)
		return
	}

	ctrl.invalidateStats(c)
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
