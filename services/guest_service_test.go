package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms-backend/apperrors"
)

func TestCreateGuestRequiresFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestService(db)

	_, err := svc.Create(CreateGuestInput{FirstName: "Grace"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.Get(err).Code)
}

func TestDuplicateGuestEmailConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestService(db)

	_, err := svc.Create(CreateGuestInput{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"})
	require.NoError(t, err)

	_, err = svc.Create(CreateGuestInput{FirstName: "Other", LastName: "Person", Email: "grace@example.com"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeConflict, apperrors.Get(err).Code)
}

func TestGuestUpdatePreservesOmittedFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestService(db)

	guest, err := svc.Create(CreateGuestInput{
		FirstName:   "Grace",
		LastName:    "Hopper",
		Email:       "grace@example.com",
		Phone:       "555-1234",
		Nationality: "US",
	})
	require.NoError(t, err)

	updated, err := svc.Update(guest.ID, UpdateGuestInput{Phone: strPtr("555-9999")})
	require.NoError(t, err)
	assert.Equal(t, "555-9999", updated.Phone)
	assert.Equal(t, "Grace", updated.FirstName)
	assert.Equal(t, "US", updated.Nationality)

	// free-text fields accept explicit empty strings
	updated, err = svc.Update(guest.ID, UpdateGuestInput{Nationality: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Nationality)
}

func TestListGuestsOrderedByLastName(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestService(db)

	for _, g := range []CreateGuestInput{
		{FirstName: "A", LastName: "Zimmer", Email: "z@example.com"},
		{FirstName: "B", LastName: "Adams", Email: "a@example.com"},
		{FirstName: "C", LastName: "Miller", Email: "m@example.com"},
	} {
		_, err := svc.Create(g)
		require.NoError(t, err)
	}

	guests, err := svc.List()
	require.NoError(t, err)
	require.Len(t, guests, 3)
	assert.Equal(t, "Adams", guests[0].LastName)
	assert.Equal(t, "Miller", guests[1].LastName)
	assert.Equal(t, "Zimmer", guests[2].LastName)
}

func TestGuestNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestService(db)

	_, err := svc.Get(777)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.Get(err).Code)
}
