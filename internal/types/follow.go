package types

import (
	"rentledger/internal/models"

	"github.com/google/uuid"
)

type FollowRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

type FollowListResponse struct {
	Users []models.UserSummary `json:"users"`
	Count int                  `json:"count"`
}
