package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNormalizeMonth(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "First of month stays",
			input:    time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Mid month truncates",
			input:    time.Date(2024, time.March, 17, 13, 45, 0, 0, time.UTC),
			expected: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Offset converted to UTC first",
			input:    time.Date(2024, time.April, 1, 2, 0, 0, 0, time.FixedZone("ICT", 7*60*60)),
			expected: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeMonth(tt.input))
		})
	}
}

func TestBaseUUIDModel_BeforeCreate(t *testing.T) {
	t.Run("Assigns a v7 id", func(t *testing.T) {
		var base BaseUUIDModel
		require.NoError(t, base.BeforeCreate(nil))
		assert.NotEqual(t, uuid.Nil, base.ID)
		assert.Equal(t, uuid.Version(7), base.ID.Version())
	})

	t.Run("Keeps a caller id", func(t *testing.T) {
		id := uuid.New()
		base := BaseUUIDModel{ID: id}
		require.NoError(t, base.BeforeCreate(nil))
		assert.Equal(t, id, base.ID)
	})
}

func TestUtility_BeforeCreate(t *testing.T) {
	utility := &Utility{
		RoomID: uuid.New(),
		Month:  time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, utility.BeforeCreate(nil))
	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), utility.Month)

	assert.ErrorIs(t, (&Utility{Month: time.Now()}).BeforeCreate(nil), gorm.ErrInvalidValue)
	assert.ErrorIs(t, (&Utility{RoomID: uuid.New()}).BeforeCreate(nil), gorm.ErrInvalidValue)
}

func TestUtility_WaterUsage(t *testing.T) {
	utility := &Utility{
		OldWater: decimal.RequireFromString("50"),
		NewWater: decimal.RequireFromString("70.25"),
	}
	assert.True(t, decimal.RequireFromString("20.25").Equal(utility.WaterUsage()))
}

func TestUtility_JSONPaidFlag(t *testing.T) {
	payload, err := json.Marshal(&Utility{IsPaid: true})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(payload, &fields))
	assert.Equal(t, true, fields["isPaid"])
	assert.NotContains(t, fields, "isPay")
}

func TestRoom_BeforeCreate(t *testing.T) {
	room := &Room{FloorID: uuid.New(), Price: decimal.NewFromInt(100)}
	require.NoError(t, room.BeforeCreate(nil))
	assert.NotNil(t, room.Images)
	assert.True(t, room.IsAvailable())

	negative := &Room{FloorID: uuid.New(), Price: decimal.NewFromInt(-1)}
	assert.ErrorIs(t, negative.BeforeCreate(nil), gorm.ErrInvalidValue)

	assert.ErrorIs(t, (&Room{}).BeforeCreate(nil), gorm.ErrInvalidValue)

	renterID := uuid.New()
	rented := &Room{RenterID: &renterID}
	assert.False(t, rented.IsAvailable())
}

func TestUser_BeforeSave(t *testing.T) {
	user := &User{FullName: "  Ada  ", Email: " Ada@Example.COM ", Role: RoleRenter}
	require.NoError(t, user.BeforeSave(nil))
	assert.Equal(t, "Ada", user.FullName)
	assert.Equal(t, "ada@example.com", user.Email)

	assert.ErrorIs(t, (&User{Role: "LANDLORD"}).BeforeSave(nil), gorm.ErrInvalidValue)
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
}

func TestUserFollow_RejectsSelfFollow(t *testing.T) {
	id := uuid.New()
	assert.ErrorIs(t, (&UserFollow{FollowerID: id, FollowingID: id}).BeforeCreate(nil), gorm.ErrInvalidValue)
	assert.NoError(t, (&UserFollow{FollowerID: id, FollowingID: uuid.New()}).BeforeCreate(nil))
}
