package services

import (
	"context"
	"testing"
	"time"

	"rentledger/internal/database"
	"rentledger/internal/database/dbtest"
	"rentledger/internal/models"
	"rentledger/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type world struct {
	ctx    context.Context
	db     database.DB
	repos  repositories.Repository
	owner  *models.User
	other  *models.User
	renter *models.User
	admin  *models.User
	house  *models.House
	floor  *models.Floor
	room   *models.Room
}

func newWorld(t *testing.T, db database.DB) *world {
	t.Helper()

	w := &world{ctx: context.Background(), db: db, repos: repositories.New(db)}
	w.owner = w.user(t, "owner@example.com", "0900000001", models.RoleHouseOwner)
	w.other = w.user(t, "other@example.com", "0900000002", models.RoleHouseOwner)
	w.renter = w.user(t, "renter@example.com", "0900000003", models.RoleRenter)
	w.admin = w.user(t, "admin@example.com", "0900000004", models.RoleAdmin)

	w.house = &models.House{Name: "Sunrise", Address: "1 Main St", OwnerID: w.owner.ID}
	require.NoError(t, db.SQL.Create(w.house).Error)

	w.floor = &models.Floor{FloorNumber: 1, HouseID: w.house.ID}
	require.NoError(t, db.SQL.Create(w.floor).Error)

	w.room = &models.Room{
		Name:     "101",
		Price:    decimal.RequireFromString("100.00"),
		FloorID:  w.floor.ID,
		RenterID: &w.renter.ID,
	}
	require.NoError(t, db.SQL.Create(w.room).Error)

	return w
}

func (w *world) user(t *testing.T, email, phone string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{FullName: email, Email: email, PhoneNumber: phone, PasswordHash: "x", Role: role}
	require.NoError(t, w.db.SQL.Create(user).Error)
	return user
}

func (w *world) utility(t *testing.T, m time.Time, oldWater, newWater int64) *models.Utility {
	t.Helper()
	utility := &models.Utility{
		RoomID:    w.room.ID,
		Month:     m,
		OldWater:  decimal.NewFromInt(oldWater),
		NewWater:  decimal.NewFromInt(newWater),
		WaterRate: decimal.NewFromInt(5000),
		RoomCost:  w.room.Price,
		WaterCost: decimal.Zero,
		TotalCost: w.room.Price,
	}
	require.NoError(t, w.db.SQL.Create(utility).Error)
	return utility
}
