package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hms-backend/services"
	"hms-backend/utils"
)

type createStaffRequest struct {
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Role       string   `json:"role"`
	Department string   `json:"department"`
	Salary     *float64 `json:"salary"`
	Status     string   `json:"status"`
	JoinDate   string   `json:"join_date"`
}

type updateStaffRequest struct {
	FirstName  *string  `json:"first_name"`
	LastName   *string  `json:"last_name"`
	Email      *string  `json:"email"`
	Phone      *string  `json:"phone"`
	Role       *string  `json:"role"`
	Department *string  `json:"department"`
	Salary     *float64 `json:"salary"`
	Status     *string  `json:"status"`
	JoinDate   *string  `json:"join_date"`
}

type StaffController struct {
	Svc *services.StaffService
}

func NewStaffController(svc *services.StaffService) *StaffController {
	return &StaffController{Svc: svc}
}

// GetStaff GET /api/staff
func (ctrl *StaffController) GetStaff(c *gin.Context) {
	staff, err := ctrl.Svc.List()
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// GetStaffMember GET /api/staff/:id
func (ctrl *StaffController) GetStaffMember(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Staff member not found")
		return
	}

	member, err := ctrl.Svc.Get(id)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// CreateStaffMember POST /api/staff
func (ctrl *StaffController) CreateStaffMember(c *gin.Context) {
	var req createStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	member, err := ctrl.Svc.Create(services.CreateStaffInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       req.Role,
		Department: req.Department,
		Salary:     req.Salary,
		Status:     req.Status,
		JoinDate:   req.JoinDate,
	})
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// UpdateStaffMember PUT /api/staff/:id
func (ctrl *StaffController) UpdateStaffMember(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Staff member not found")
		return
	}

	var req updateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	member, err := ctrl.Svc.Update(id, services.UpdateStaffInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       req.Role,
		Department: req.Department,
		Salary:     req.Salary,
		Status:     req.Status,
		JoinDate:   req.JoinDate,
	})
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteStaffMember DELETE /api/staff/:id
func (ctrl *StaffController) DeleteStaffMember(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Staff member not found")
		return
	}

	if err := ctrl.Svc.Delete(id); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
}
