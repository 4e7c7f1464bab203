package models

import (
	"strings"

	"gorm.io/gorm"
)

type Role string

const (
	RoleHouseOwner Role = "HOUSEOWNER"
	RoleRenter     Role = "RENTER"
	RoleAdmin      Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleHouseOwner, RoleRenter, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	BaseUUIDModel
	FullName     string `gorm:"type:text;not null"        json:"fullName"`
	Email        string `gorm:"type:text;uniqueIndex"     json:"email"`
	PhoneNumber  string `gorm:"type:text;uniqueIndex"     json:"phoneNumber"`
	PasswordHash string `gorm:"type:text;not null"        json:"-"`
	Role         Role   `gorm:"type:varchar(16);not null" json:"role"`
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	u.FullName = strings.TrimSpace(u.FullName)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if !u.Role.Valid() {
		return gorm.ErrInvalidValue
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserSummary is the public view of a user embedded in other responses.
type UserSummary struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        Role   `json:"role"`
}

func (u *User) ToSummary() UserSummary {
	return UserSummary{
		ID:          u.ID.String(),
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
	}
}
