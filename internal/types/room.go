package types

import (
	"rentledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	RoomName string           `json:"roomName" validate:"required,max=255"`
	Price    *decimal.Decimal `json:"price"    validate:"required"`
	Images   []string         `json:"images"   validate:"omitempty,max=20,dive,url"`
	FloorID  uuid.UUID        `json:"floorId"  validate:"required"`
}

type UpdateRoomRequest struct {
	RoomName *string          `json:"roomName" validate:"omitempty,min=1,max=255"`
	Price    *decimal.Decimal `json:"price"`
	Images   []string         `json:"images"   validate:"omitempty,max=20,dive,url"`
	FloorID  *uuid.UUID       `json:"floorId"`
}

type AssignRenterRequest struct {
	RenterID uuid.UUID `json:"renterId" validate:"required"`
}

type RoomResponse struct {
	ID          uuid.UUID           `json:"id"`
	RoomName    string              `json:"roomName"`
	Price       string              `json:"price"`
	Images      []string            `json:"images"`
	FloorID     uuid.UUID           `json:"floorId"`
	FloorNumber int                 `json:"floorNumber"`
	FloorName   *string             `json:"floorName,omitempty"`
	HouseID     uuid.UUID           `json:"houseId"`
	HouseName   string              `json:"houseName"`
	Available   bool                `json:"available"`
	Renter      *models.UserSummary `json:"renter,omitempty"`
}
