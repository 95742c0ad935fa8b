package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"hms-backend/apperrors"
	"hms-backend/models"
)

type StaffService struct {
	DB *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{DB: db}
}

type CreateStaffInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Role       string
	Department string
	Salary     *float64
	Status     string
	JoinDate   string
}

type UpdateStaffInput struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Phone      *string
	Role       *string
	Department *string
	Salary     *float64
	Status     *string
	JoinDate   *string
}

func (s *StaffService) List() ([]models.Staff, error) {
	var staff []models.Staff
	if err := s.DB.Order("last_name").Find(&staff).Error; err != nil {
		return nil, apperrors.Store("failed to list staff", err)
	}
	return staff, nil
}

func (s *StaffService) Get(id uint) (models.Staff, error) {
	var member models.Staff
	if err := s.DB.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return member, apperrors.NotFound("Staff member not found")
		}
		return member, apperrors.Store("failed to load staff member", err)
	}
	return member, nil
}

func (s *StaffService) Create(in CreateStaffInput) (models.Staff, error) {
	var member models.Staff
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Role == "" || in.Department == "" {
		return member, apperrors.Validation("first_name, last_name, email, role, department are required")
	}

	joinDate := time.Now().UTC().Truncate(24 * time.Hour)
	if in.JoinDate != "" {
		t, err := parseDate(in.JoinDate, "join_date")
		if err != nil {
			return member, err
		}
		joinDate = t
	}

	member = models.Staff{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Phone:      in.Phone,
		Role:       in.Role,
		Department: in.Department,
		Status:     models.StaffStatusActive,
		JoinDate:   joinDate,
	}
	if in.Salary != nil {
		member.Salary = *in.Salary
	}
	if in.Status != "" {
		member.Status = in.Status
	}

	if err := s.DB.Create(&member).Error; err != nil {
		if isDuplicateErr(err) {
			return member, apperrors.Conflict("Staff with this email already exists")
		}
		return member, apperrors.Store("failed to create staff member", err)
	}
	return member, nil
}

func (s *StaffService) Update(id uint, in UpdateStaffInput) (models.Staff, error) {
	member, err := s.Get(id)
	if err != nil {
		return member, err
	}

	if in.FirstName != nil && *in.FirstName != "" {
		member.FirstName = *in.FirstName
	}
	if in.LastName != nil && *in.LastName != "" {
		member.LastName = *in.LastName
	}
	if in.Email != nil && *in.Email != "" {
		member.Email = *in.Email
	}
	if in.Phone != nil {
		member.Phone = *in.Phone
	}
	if in.Role != nil && *in.Role != "" {
		member.Role = *in.Role
	}
	if in.Department != nil && *in.Department != "" {
		member.Department = *in.Department
	}
	if in.Salary != nil {
		member.Salary = *in.Salary
	}
	if in.Status != nil && *in.Status != "" {
		member.Status = *in.Status
	}
	if in.JoinDate != nil && *in.JoinDate != "" {
		t, err := parseDate(*in.JoinDate, "join_date")
		if err != nil {
			return member, err
		}
		member.JoinDate = t
	}

	if err := s.DB.Save(&member).Error; err != nil {
		if isDuplicateErr(err) {
			return member, apperrors.Conflict("Staff with this email already exists")
		}
		return member, apperrors.Store("failed to update staff member", err)
	}
	return member, nil
}

func (s *StaffService) Delete(id uint) error {
	member, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(&member).Error; err != nil {
		return apperrors.Store("failed to delete staff member", err)
	}
	return nil
}
