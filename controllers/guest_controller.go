package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hms-backend/services"
	"hms-backend/utils"
)

type createGuestRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	IDType      string `json:"id_type"`
	IDNumber    string `json:"id_number"`
	Nationality string `json:"nationality"`
	Address     string `json:"address"`
}

type updateGuestRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	IDType      *string `json:"id_type"`
	IDNumber    *string `json:"id_number"`
	Nationality *string `json:"nationality"`
	Address     *string `json:"address"`
}

type GuestController struct {
	Svc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{Svc: svc}
}

// GetGuests GET /api/guests
func (ctrl *GuestController) GetGuests(c *gin.Context) {
	guests, err := ctrl.Svc.List()
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// GetGuest GET /api/guests/:id
func (ctrl *GuestController) GetGuest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Guest not found")
		return
	}

	guest, err := ctrl.Svc.Get(id)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// CreateGuest POST /api/guests
func (ctrl *GuestController) CreateGuest(c *gin.Context) {
	var req createGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	guest, err := ctrl.Svc.Create(services.CreateGuestInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		IDType:      req.IDType,
		IDNumber:    req.IDNumber,
		Nationality: req.Nationality,
		Address:     req.Address,
	})
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, guest)
}

// UpdateGuest PUT /api/guests/:id
func (ctrl *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Guest not found")
		return
	}

	var req updateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	guest, err := ctrl.Svc.Update(id, services.UpdateGuestInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		IDType:      req.IDType,
		IDNumber:    req.IDNumber,
		Nationality: req.Nationality,
		Address:     req.Address,
	})
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// DeleteGuest DELETE /api/guests/:id
func (ctrl *GuestController) DeleteGuest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Guest not found")
		return
	}

	if err := ctrl.Svc.Delete(id); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Guest deleted successfully"})
}
