package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateUtilityRequest carries the closing meter reading for a month. OldWater
// is only honoured for a room's first record.
type CreateUtilityRequest struct {
	RoomID   uuid.UUID        `json:"roomId"   validate:"required"`
	Month    string           `json:"month"    validate:"required"`
	OldWater *decimal.Decimal `json:"oldWater"`
	NewWater *decimal.Decimal `json:"newWater" validate:"required"`
}

type MarkPaidRequest struct {
	IsPaid *bool `json:"isPaid" validate:"required"`
}

type UtilityResponse struct {
	ID         uuid.UUID `json:"id"`
	RoomID     uuid.UUID `json:"roomId"`
	RoomName   string    `json:"roomName"`
	FloorName  string    `json:"floorName"`
	HouseID    uuid.UUID `json:"houseId"`
	HouseName  string    `json:"houseName"`
	Month      string    `json:"month"`
	OldWater   string    `json:"oldWater"`
	NewWater   string    `json:"newWater"`
	WaterUsage string    `json:"waterUsage"`
	WaterRate  string    `json:"waterRate"`
	RoomCost   string    `json:"roomCost"`
	WaterCost  string    `json:"waterCost"`
	TotalCost  string    `json:"totalCost"`
	IsPaid     bool      `json:"isPaid"`
	CreatedAt  time.Time `json:"createdAt"`
}
