package services

import (
	"testing"
	"time"

	"adira_backend/internal/models"
	"adira_backend/internal/services/dto"
	"adira_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, repo *memUserRepo) *models.User {
	t.Helper()

	user := &models.User{
		Username:      "alice",
		Email:         "alice@example.com",
		PasswordHash:  "hash",
		FirstName:     "Alice",
		EmailVerified: true,
		DateJoined:    time.Now(),
	}
	require.NoError(t, repo.Create(user))
	return user
}

func TestGetProfile(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	user := seedUser(t, repo)
	svc := NewUserService(repo)

	resp, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "alice@example.com", resp.Email)

	_, err = svc.GetProfile("missing-id")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateProfile_Partial(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	user := seedUser(t, repo)
	svc := NewUserService(repo)

	lastName := "Smith"
	dob := "1990-05-01"
	resp, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		LastName:    &lastName,
		DateOfBirth: &dob,
	})
	require.NoError(t, err)

	// Непереданные поля не изменились
	assert.Equal(t, "Alice", resp.FirstName)
	assert.Equal(t, "Smith", resp.LastName)
	require.NotNil(t, resp.DateOfBirth)
	assert.Equal(t, "1990-05-01", *resp.DateOfBirth)
}

func TestUpdateProfile_BadDate(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	user := seedUser(t, repo)
	svc := NewUserService(repo)

	dob := "01/05/1990"
	_, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{DateOfBirth: &dob})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}
