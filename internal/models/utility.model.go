package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Utility is one monthly billing record for a room. Readings and costs are
// fixed at creation; IsPaid is the only column updated afterwards.
type Utility struct {
	BaseUUIDModel
	RoomID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_utilities_room_month,priority:1" json:"roomId"`
	Month     time.Time       `gorm:"type:date;not null;uniqueIndex:idx_utilities_room_month,priority:2;index:idx_utilities_month" json:"month"`
	OldWater  decimal.Decimal `gorm:"type:numeric;not null"         json:"oldWater"`
	NewWater  decimal.Decimal `gorm:"type:numeric;not null"         json:"newWater"`
	WaterRate decimal.Decimal `gorm:"type:numeric;not null"         json:"waterRate"`
	RoomCost  decimal.Decimal `gorm:"type:numeric;not null"         json:"roomCost"`
	WaterCost decimal.Decimal `gorm:"type:numeric;not null"         json:"waterCost"`
	TotalCost decimal.Decimal `gorm:"type:numeric;not null"         json:"totalCost"`
	IsPaid    bool            `gorm:"type:bool;not null;default:false" json:"isPaid"`

	Room *Room `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *Utility) BeforeCreate(tx *gorm.DB) error {
	if err := u.BaseUUIDModel.BeforeCreate(tx); err != nil {
		return err
	}
	if u.RoomID == uuid.Nil || u.Month.IsZero() {
		return gorm.ErrInvalidValue
	}
	u.Month = NormalizeMonth(u.Month)
	return nil
}

func (u *Utility) WaterUsage() decimal.Decimal {
	return u.NewWater.Sub(u.OldWater)
}

// NormalizeMonth truncates t to midnight UTC on the first day of its month.
func NormalizeMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
