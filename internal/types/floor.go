package types

import "github.com/google/uuid"

type CreateFloorRequest struct {
	HouseID     uuid.UUID `json:"houseId"     validate:"required"`
	FloorNumber int       `json:"floorNumber" validate:"gte=-10,lte=300"`
	FloorName   *string   `json:"floorName"   validate:"omitempty,max=255"`
}

type UpdateFloorRequest struct {
	FloorNumber *int    `json:"floorNumber" validate:"omitempty,gte=-10,lte=300"`
	FloorName   *string `json:"floorName"   validate:"omitempty,max=255"`
}

type FloorResponse struct {
	ID          uuid.UUID `json:"id"`
	FloorNumber int       `json:"floorNumber"`
	FloorName   *string   `json:"floorName,omitempty"`
	HouseID     uuid.UUID `json:"houseId"`
	HouseName   string    `json:"houseName"`
	RoomCount   int64     `json:"roomCount"`
}
