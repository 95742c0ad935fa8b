package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"hms-backend/services"
	"hms-backend/utils"
)

type createRoomRequest struct {
	RoomNumber    string   `json:"room_number"`
	Type          string   `json:"type"`
	Floor         *int     `json:"floor"`
	Capacity      *int     `json:"capacity"`
	PricePerNight *float64 `json:"price_per_night"`
	Status        string   `json:"status"`
	Amenities     string   `json:"amenities"`
	Description   string   `json:"description"`
}

type updateRoomRequest struct {
	RoomNumber    *string  `json:"room_number"`
	Type          *string  `json:"type"`
	Floor         *int     `json:"floor"`
	Capacity      *int     `json:"capacity"`
	PricePerNight *float64 `json:"price_per_night"`
	Status        *string  `json:"status"`
	Amenities     *string  `json:"amenities"`
	Description   *string  `json:"description"`
}

type RoomController struct {
	Svc   *services.RoomService
	Cache *redis.Client
}

func NewRoomController(svc *services.RoomService, cache *redis.Client) *RoomController {
	return &RoomController{Svc: svc, Cache: cache}
}

func (ctrl *RoomController) invalidateStats(c *gin.Context) {
	if ctrl.Cache == nil {
		return
	}
	_ = services.DeleteFromCache(c.Request.Context(), ctrl.Cache, DashboardStatsCacheKey)
}

// GetRooms GET /api/rooms
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.Svc.List()
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom GET /api/rooms/:id
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}

	room, err := ctrl.Svc.Get(id)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateRoom POST /api/rooms
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	room, err := ctrl.Svc.Create(services.CreateRoomInput{
		RoomNumber:    req.RoomNumber,
		Type:          req.Type,
		Floor:         req.Floor,
		Capacity:      req.Capacity,
		PricePerNight: req.PricePerNight,
		Status:        req.Status,
		Amenities:     req.Amenities,
		Description:   req.Description,
	})
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}

	ctrl.invalidateStats(c)
	c.JSON(http.StatusCreated, room)
}

// UpdateRoom PUT /api/rooms/:id
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}

	var req updateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	room, err := ctrl.Svc.Update(id, services.UpdateRoomInput{
		RoomNumber:    req.RoomNumber,
		Type:          req.Type,
		Floor:         req.Floor,
		Capacity:      req.Capacity,
		PricePerNight: req.PricePerNight,
		Status:        req.Status,
		Amenities:     req.Amenities,
		Description:   req.Description,
	})
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}

	ctrl.invalidateStats(c)
	c.JSON(http.StatusOK, room)
}

// DeleteRoom DELETE /api/rooms/:id
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}

	if err := ctrl.Svc.Delete(id); err != nil {
		utils.JSONAppError(c, err)
		return
	}

	ctrl.invalidateStats(c)
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
