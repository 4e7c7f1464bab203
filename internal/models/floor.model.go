package models

import (
	"github.com/google/uuid"
)

type Floor struct {
	BaseUUIDModel
	FloorNumber int       `gorm:"type:int;not null;uniqueIndex:idx_floors_house_number,priority:2" json:"floorNumber"`
	FloorName   *string   `gorm:"type:text"                                                       json:"floorName,omitempty"`
	HouseID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_floors_house_number,priority:1" json:"houseId"`

	House *House  `gorm:"foreignKey:HouseID" json:"-"`
	Rooms []*Room `gorm:"foreignKey:FloorID" json:"-"`
}
