package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hms-backend/apperrors"
	"hms-backend/models"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type CreateRoomInput struct {
	RoomNumber    string
	Type          string
	Floor         *int
	Capacity      *int
	PricePerNight *float64
	Status        string
	Amenities     string
	Description   string
}

type UpdateRoomInput struct {
	RoomNumber    *string
	Type          *string
	Floor         *int
	Capacity      *int
	PricePerNight *float64
	Status        *string
	Amenities     *string
	Description   *string
}

func (s *RoomService) List() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, apperrors.Store("failed to list rooms", err)
	}
	return rooms, nil
}

func (s *RoomService) Get(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, apperrors.NotFound("Room not found")
		}
		return room, apperrors.Store("failed to load room", err)
	}
	return room, nil
}

func (s *RoomService) Create(in CreateRoomInput) (models.Room, error) {
	var room models.Room
	if in.RoomNumber == "" || in.Type == "" || in.PricePerNight == nil {
		return room, apperrors.Validation("room_number, type, and price_per_night are required")
	}

	room = models.Room{
		RoomNumber:    in.RoomNumber,
		Type:          in.Type,
		Floor:         1,
		Capacity:      2,
		PricePerNight: *in.PricePerNight,
		Status:        models.RoomStatusAvailable,
		Amenities:     in.Amenities,
		Description:   in.Description,
	}
	if in.Floor != nil {
		room.Floor = *in.Floor
	}
	if in.Capacity != nil {
		room.Capacity = *in.Capacity
	}
	if in.Status != "" {
		room.Status = in.Status
	}

	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateErr(err) {
			return room, apperrors.Conflict("Room number already exists")
		}
		return room, apperrors.Store("failed to create room", err)
	}
	return room, nil
}

// Update merges the provided fields onto the stored room. Setting status to
// Maintenance (or back) happens here, never through the booking synchronizer.
func (s *RoomService) Update(id uint, in UpdateRoomInput) (models.Room, error) {
	room, err := s.Get(id)
	if err != nil {
		return room, err
	}

	if in.RoomNumber != nil && *in.RoomNumber != "" {
		room.RoomNumber = *in.RoomNumber
	}
	if in.Type != nil && *in.Type != "" {
		room.Type = *in.Type
	}
	if in.Floor != nil {
		room.Floor = *in.Floor
	}
	if in.Capacity != nil {
		room.Capacity = *in.Capacity
	}
	if in.PricePerNight != nil {
		room.PricePerNight = *in.PricePerNight
	}
	if in.Status != nil && *in.Status != "" {
		room.Status = *in.Status
	}
	if in.Amenities != nil {
		room.Amenities = *in.Amenities
	}
	if in.Description != nil {
		room.Description = *in.Description
	}

	if err := s.DB.Save(&room).Error; err != nil {
		if isDuplicateErr(err) {
			return room, apperrors.Conflict(fmt.Sprintf("Room number '%s' already exists", room.RoomNumber))
		}
		return room, apperrors.Store("failed to update room", err)
	}
	return room, nil
}

func (s *RoomService) Delete(id uint) error {
	room, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(&room).Error; err != nil {
		return apperrors.Store("failed to delete room", err)
	}
	return nil
}
