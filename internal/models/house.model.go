package models

import (
	"github.com/google/uuid"
)

type House struct {
	BaseUUIDModel
	Name    string    `gorm:"type:text;not null"                         json:"houseName"`
	Address string    `gorm:"type:text;not null"                         json:"houseAddress"`
	Image   *string   `gorm:"type:text"                                  json:"houseImage,omitempty"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index:idx_houses_owner" json:"ownerId"`

	Owner  *User    `gorm:"foreignKey:OwnerID" json:"-"`
	Floors []*Floor `gorm:"foreignKey:HouseID" json:"-"`
}
