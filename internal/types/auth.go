package types

import (
	"time"

	"rentledger/internal/models"
)

type RegisterRequest struct {
	FullName    string `json:"fullName"    validate:"required,max=255"`
	Email       string `json:"email"       validate:"required,email,max=255"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=6,max=20"`
	Password    string `json:"password"    validate:"required,min=8,max=72"`
	Role        string `json:"role"        validate:"required,oneof=HOUSEOWNER RENTER"`
}

type LoginRequest struct {
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string             `json:"accessToken"`
	TokenType   string             `json:"tokenType"`
	ExpiresAt   time.Time          `json:"expiresAt"`
	User        models.UserSummary `json:"user"`
}
