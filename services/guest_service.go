package services

import (
	"errors"

	"gorm.io/gorm"

	"hms-backend/apperrors"
	"hms-backend/models"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

type CreateGuestInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	IDType      string
	IDNumber    string
	Nationality string
	Address     string
}

type UpdateGuestInput struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Phone       *string
	IDType      *string
	IDNumber    *string
	Nationality *string
	Address     *string
}

func (s *GuestService) List() ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.DB.Order("last_name").Find(&guests).Error; err != nil {
		return nil, apperrors.Store("failed to list guests", err)
	}
	return guests, nil
}

func (s *GuestService) Get(id uint) (models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return guest, apperrors.NotFound("Guest not found")
		}
		return guest, apperrors.Store("failed to load guest", err)
	}
	return guest, nil
}

func (s *GuestService) Create(in CreateGuestInput) (models.Guest, error) {
	var guest models.Guest
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		return guest, apperrors.Validation("first_name, last_name, and email are required")
	}

	guest = models.Guest{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		IDType:      in.IDType,
		IDNumber:    in.IDNumber,
		Nationality: in.Nationality,
		Address:     in.Address,
	}

	if err := s.DB.Create(&guest).Error; err != nil {
		if isDuplicateErr(err) {
			return guest, apperrors.Conflict("Guest with this email already exists")
		}
		return guest, apperrors.Store("failed to create guest", err)
	}
	return guest, nil
}

func (s *GuestService) Update(id uint, in UpdateGuestInput) (models.Guest, error) {
	guest, err := s.Get(id)
	if err != nil {
		return guest, err
	}

	if in.FirstName != nil && *in.FirstName != "" {
		guest.FirstName = *in.FirstName
	}
	if in.LastName != nil && *in.LastName != "" {
		guest.LastName = *in.LastName
	}
	if in.Email != nil && *in.Email != "" {
		guest.Email = *in.Email
	}
	if in.Phone != nil {
		guest.Phone = *in.Phone
	}
	if in.IDType != nil {
		guest.IDType = *in.IDType
	}
	if in.IDNumber != nil {
		guest.IDNumber = *in.IDNumber
	}
	if in.Nationality != nil {
		guest.Nationality = *in.Nationality
	}
	if in.Address != nil {
		guest.Address = *in.Address
	}

	if err := s.DB.Save(&guest).Error; err != nil {
		if isDuplicateErr(err) {
			return guest, apperrors.Conflict("Guest with this email already exists")
		}
		return guest, apperrors.Store("failed to update guest", err)
	}
	return guest, nil
}

func (s *GuestService) Delete(id uint) error {
	guest, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(&guest).Error; err != nil {
		return apperrors.Store("failed to delete guest", err)
	}
	return nil
}
