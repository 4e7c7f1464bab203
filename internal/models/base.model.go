package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseUUIDModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime"       json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"       json:"updatedAt"`
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (b *BaseUUIDModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID != uuid.Nil {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}
