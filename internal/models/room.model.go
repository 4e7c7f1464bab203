package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Room struct {
	BaseUUIDModel
	Name     string                      `gorm:"type:text;not null"                       json:"roomName"`
	Price    decimal.Decimal             `gorm:"type:numeric(10,2);not null;default:0"    json:"price"`
	Images   datatypes.JSONSlice[string] `gorm:"type:json"                                json:"images"`
	FloorID  uuid.UUID                   `gorm:"type:uuid;not null;index:idx_rooms_floor" json:"floorId"`
	RenterID *uuid.UUID                  `gorm:"type:uuid;index:idx_rooms_renter"         json:"renterId,omitempty"`

	Floor  *Floor `gorm:"foreignKey:FloorID"  json:"-"`
	Renter *User  `gorm:"foreignKey:RenterID" json:"-"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if err := r.BaseUUIDModel.BeforeCreate(tx); err != nil {
		return err
	}
	if r.FloorID == uuid.Nil {
		return gorm.ErrInvalidValue
	}
	if r.Price.IsNegative() {
		return gorm.ErrInvalidValue
	}
	if r.Images == nil {
		r.Images = datatypes.JSONSlice[string]{}
	}
	return nil
}

func (r *Room) IsAvailable() bool {
	return r.RenterID == nil
}
