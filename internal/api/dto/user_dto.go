package dto

import (
	"time"

	"github.com/spec-kit/aerobook/internal/domain"
)

// UserRegisterRequest payload for new accounts.
type UserRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserLoginRequest payload for login.
type UserLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UpdateProfileRequest payload; only the listed fields are honored.
type UpdateProfileRequest struct {
	Name                *string `json:"name"`
	Phone               *string `json:"phone"`
	Address             *string `json:"address"`
	FrequentFlyerNumber *string `json:"frequent_flyer_number"`
	DateOfBirth         *string `json:"date_of_birth"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ProfileResponse serializes an account profile.
type ProfileResponse struct {
	ID                  string    `json:"id"`
	Email               string    `json:"email"`
	Name                string    `json:"name"`
	Phone               *string   `json:"phone"`
	DateOfBirth         *string   `json:"date_of_birth"`
	Address             *string   `json:"address"`
	FrequentFlyerNumber *string   `json:"frequent_flyer_number"`
	CreatedAt           time.Time `json:"created_at"`
}

// NewProfileResponse maps a domain user to its wire form.
func NewProfileResponse(user *domain.User) ProfileResponse {
	resp := ProfileResponse{
		ID:                  user.ID,
		Email:               user.Email,
		Name:                user.Name,
		Phone:               user.Phone,
		Address:             user.Address,
		FrequentFlyerNumber: user.FrequentFlyerNumber,
		CreatedAt:           user.CreatedAt,
	}
	if user.DateOfBirth != nil {
		dob := user.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &dob
	}
	return resp
}
