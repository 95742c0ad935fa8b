package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms-backend/apperrors"
	"hms-backend/utils"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register("manager", "s3cret", "")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)
	assert.NotEqual(t, "s3cret", user.Password)

	token, loggedIn, err := svc.Login("manager", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	claims, err := utils.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "manager", claims["username"])
	assert.Equal(t, "admin", claims["role"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("manager", "s3cret", "")
	require.NoError(t, err)

	_, _, err = svc.Login("manager", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("manager", "s3cret", "")
	require.NoError(t, err)

	_, err = svc.Register("manager", "other", "")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeConflict, apperrors.Get(err).Code)
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("manager", "s3cret", "")
	require.NoError(t, err)

	err = svc.ChangePassword("manager", "wrong", "newpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.ChangePassword("nobody", "s3cret", "newpass")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.Get(err).Code)

	require.NoError(t, svc.ChangePassword("manager", "s3cret", "newpass"))

	_, _, err = svc.Login("manager", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login("manager", "newpass")
	require.NoError(t, err)
}
