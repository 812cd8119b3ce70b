package dto

import (
	"time"

	"adira_backend/internal/models"
)

const dateLayout = "2006-01-02"

// UserResponse - публичное представление пользователя.
// Пароль, токен верификации и staff-флаг наружу не отдаются.
type UserResponse struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	DateOfBirth   *string   `json:"date_of_birth"`
	DateJoined    time.Time `json:"date_joined"`
	EmailVerified bool      `json:"email_verified"`
}

// NewUserResponse строит UserResponse из модели
func NewUserResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		DateJoined:    user.DateJoined,
		EmailVerified: user.EmailVerified,
	}
	if user.DateOfBirth != nil {
		dob := user.DateOfBirth.Format(dateLayout)
		resp.DateOfBirth = &dob
	}
	return resp
}

// UpdateProfileRequest - PATCH профиля. Поля-указатели:
// отсутствующее поле не трогается. Email, пароль, verified
// и staff через профиль не изменяются.
type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,max=150"`
	LastName    *string `json:"last_name" validate:"omitempty,max=150"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=32"`
}
