package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms-backend/apperrors"
	"hms-backend/models"
)

func TestCreateStaffRequiresFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(db)

	_, err := svc.Create(CreateStaffInput{FirstName: "Tom", LastName: "Baker", Email: "tom@example.com"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.Get(err).Code)
}

func TestCreateStaffDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(db)

	member, err := svc.Create(CreateStaffInput{
		FirstName:  "Tom",
		LastName:   "Baker",
		Email:      "tom@example.com",
		Role:       "Receptionist",
		Department: "Front Desk",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StaffStatusActive, member.Status)
	assert.Equal(t, 0.0, member.Salary)
	assert.False(t, member.JoinDate.IsZero())
}

func TestCreateStaffWithJoinDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(db)

	member, err := svc.Create(CreateStaffInput{
		FirstName:  "Sara",
		LastName:   "Cole",
		Email:      "sara@example.com",
		Role:       "Manager",
		Department: "Operations",
		Salary:     floatPtr(52000),
		JoinDate:   "2023-06-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "2023-06-15", member.JoinDate.Format(models.DateLayout))
	assert.Equal(t, 52000.0, member.Salary)
}

func TestDuplicateStaffEmailConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(db)

	in := CreateStaffInput{
		FirstName:  "Tom",
		LastName:   "Baker",
		Email:      "tom@example.com",
		Role:       "Receptionist",
		Department: "Front Desk",
	}
	_, err := svc.Create(in)
	require.NoError(t, err)

	in.FirstName = "Other"
	_, err = svc.Create(in)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeConflict, apperrors.Get(err).Code)
}

func TestStaffUpdateHonorsExplicitZeroSalary(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(db)

	member, err := svc.Create(CreateStaffInput{
		FirstName:  "Tom",
		LastName:   "Baker",
		Email:      "tom@example.com",
		Role:       "Receptionist",
		Department: "Front Desk",
		Salary:     floatPtr(30000),
	})
	require.NoError(t, err)

	updated, err := svc.Update(member.ID, UpdateStaffInput{Salary: floatPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.Salary)
	assert.Equal(t, "Receptionist", updated.Role)
}

func TestStaffNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(db)

	_, err := svc.Get(55)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.Get(err).Code)
}
