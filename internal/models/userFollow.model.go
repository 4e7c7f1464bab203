package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserFollow struct {
	BaseUUIDModel
	FollowerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_follows_edge,priority:1" json:"followerId"`
	FollowingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_follows_edge,priority:2;index:idx_user_follows_following" json:"followingId"`

	Follower  *User `gorm:"foreignKey:FollowerID"  json:"-"`
	Following *User `gorm:"foreignKey:FollowingID" json:"-"`
}

func (f *UserFollow) BeforeCreate(tx *gorm.DB) error {
	if err := f.BaseUUIDModel.BeforeCreate(tx); err != nil {
		return err
	}
	if f.FollowerID == f.FollowingID {
		return gorm.ErrInvalidValue
	}
	return nil
}
