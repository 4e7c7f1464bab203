package types

import (
	"time"

	"github.com/google/uuid"
)

type CreateHouseRequest struct {
	HouseName    string  `json:"houseName"    validate:"required,max=255"`
	HouseAddress string  `json:"houseAddress" validate:"required,max=512"`
	HouseImage   *string `json:"houseImage"   validate:"omitempty,url"`
}

type UpdateHouseRequest struct {
	HouseName    *string `json:"houseName"    validate:"omitempty,min=1,max=255"`
	HouseAddress *string `json:"houseAddress" validate:"omitempty,min=1,max=512"`
	HouseImage   *string `json:"houseImage"   validate:"omitempty,url"`
}

type FloorSummary struct {
	ID          uuid.UUID `json:"id"`
	FloorNumber int       `json:"floorNumber"`
	FloorName   *string   `json:"floorName,omitempty"`
	RoomCount   int64     `json:"roomCount"`
}

type HouseResponse struct {
	ID           uuid.UUID      `json:"id"`
	HouseName    string         `json:"houseName"`
	HouseAddress string         `json:"houseAddress"`
	HouseImage   *string        `json:"houseImage,omitempty"`
	OwnerID      uuid.UUID      `json:"ownerId"`
	FloorCount   int            `json:"floorCount"`
	RoomCount    int64          `json:"roomCount"`
	Floors       []FloorSummary `json:"floors"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
