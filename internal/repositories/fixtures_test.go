package repositories_test

import (
	"context"
	"testing"
	"time"

	"rentledger/internal/database"
	"rentledger/internal/database/dbtest"
	"rentledger/internal/models"
	"rentledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	ctx    context.Context
	db     database.DB
	repos  repositories.Repository
	owner  *models.User
	renter *models.User
	house  *models.House
	floor  *models.Floor
	room   *models.Room
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := dbtest.New(t)
	f := &fixture{
		ctx:   context.Background(),
		db:    db,
		repos: repositories.New(db),
	}

	f.owner = f.user(t, "owner@example.com", "0900000001", models.RoleHouseOwner)
	f.renter = f.user(t, "renter@example.com", "0900000002", models.RoleRenter)
	f.house = f.addHouse(t, f.owner.ID, "Sunrise")
	f.floor = f.addFloor(t, f.house.ID, 1)
	f.room = f.addRoom(t, f.floor.ID, "101")

	return f
}

func (f *fixture) user(t *testing.T, email, phone string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		FullName:     email,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: "hash",
		Role:         role,
	}
	require.NoError(t, f.repos.User.Create(f.ctx, f.db.SQL, user))
	return user
}

func (f *fixture) addHouse(t *testing.T, ownerID uuid.UUID, name string) *models.House {
	t.Helper()
	house := &models.House{Name: name, Address: "1 Main St", OwnerID: ownerID}
	require.NoError(t, f.repos.House.Create(f.ctx, f.db.SQL, house))
	return house
}

func (f *fixture) addFloor(t *testing.T, houseID uuid.UUID, number int) *models.Floor {
	t.Helper()
	floor := &models.Floor{FloorNumber: number, HouseID: houseID}
	require.NoError(t, f.repos.Floor.Create(f.ctx, f.db.SQL, floor))
	return floor
}

func (f *fixture) addRoom(t *testing.T, floorID uuid.UUID, name string) *models.Room {
	t.Helper()
	room := &models.Room{Name: name, Price: decimal.RequireFromString("100.00"), FloorID: floorID}
	require.NoError(t, f.repos.Room.Create(f.ctx, f.db.SQL, room))
	return room
}

func (f *fixture) addUtility(t *testing.T, roomID uuid.UUID, month time.Time, oldWater, newWater int64) *models.Utility {
	t.Helper()
	rate := decimal.NewFromInt(5000)
	usage := decimal.NewFromInt(newWater - oldWater)
	utility := &models.Utility{
		RoomID:    roomID,
		Month:     month,
		OldWater:  decimal.NewFromInt(oldWater),
		NewWater:  decimal.NewFromInt(newWater),
		WaterRate: rate,
		RoomCost:  decimal.RequireFromString("100.00"),
		WaterCost: usage.Mul(rate),
		TotalCost: decimal.RequireFromString("100.00").Add(usage.Mul(rate)),
	}
	require.NoError(t, f.repos.Utility.Create(f.ctx, f.db.SQL, utility))
	return utility
}

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func (f *fixture) addUtilityErr(t *testing.T, m time.Time) error {
	t.Helper()
	return f.repos.Utility.Create(f.ctx, f.db.SQL, &models.Utility{
		RoomID:    f.room.ID,
		Month:     m,
		OldWater:  decimal.Zero,
		NewWater:  decimal.NewFromInt(1),
		WaterRate: decimal.NewFromInt(5000),
		RoomCost:  decimal.Zero,
		WaterCost: decimal.NewFromInt(5000),
		TotalCost: decimal.NewFromInt(5000),
	})
}
