// Package controllertest wires a full controller stack over an in-memory
// database for controller and handler tests.
package controllertest

import (
	"context"
	"testing"

	"rentledger/config"
	"rentledger/internal/database"
	"rentledger/internal/database/dbtest"
	"rentledger/internal/metrics"
	"rentledger/internal/models"
	"rentledger/internal/repositories"
	"rentledger/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type Env struct {
	Ctx      context.Context
	Config   config.Config
	DB       database.DB
	Repos    repositories.Repository
	Services services.Service

	Owner  *models.User
	Other  *models.User
	Renter *models.User
	Admin  *models.User
}

func Config() config.Config {
	return config.Config{
		Environment:      "test",
		ServerPort:       8280,
		JWTSecret:        "controller-test-secret",
		JWTIssuer:        "rentledger-test",
		JWTExpiryHours:   1,
		BcryptCost:       4,
		WaterRatePerUnit: "5000",
		WaterRate:        decimal.NewFromInt(5000),
	}
}

func New(t *testing.T) *Env {
	t.Helper()

	db := dbtest.New(t)
	cfg := Config()
	repos := repositories.New(db)
	svc, err := services.New(db, repos, cfg, metrics.New())
	require.NoError(t, err)

	env := &Env{
		Ctx:      context.Background(),
		Config:   cfg,
		DB:       db,
		Repos:    repos,
		Services: svc,
	}

	env.Owner = env.User(t, "owner@example.com", "0900000001", models.RoleHouseOwner)
	env.Other = env.User(t, "other@example.com", "0900000002", models.RoleHouseOwner)
	env.Renter = env.User(t, "renter@example.com", "0900000003", models.RoleRenter)
	env.Admin = env.User(t, "admin@example.com", "0900000004", models.RoleAdmin)

	return env
}

func (e *Env) User(t *testing.T, email, phone string, role models.Role) *models.User {
	t.Helper()

	hash, err := e.Services.Password.Hash("password123")
	require.NoError(t, err)

	user := &models.User{
		FullName:     email,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, e.Repos.User.Create(e.Ctx, e.DB.SQL, user))
	return user
}

// Property creates a house with one floor and one room priced at price for
// owner.
func (e *Env) Property(t *testing.T, owner *models.User, price string) (*models.House, *models.Floor, *models.Room) {
	t.Helper()

	house := &models.House{Name: "Sunrise", Address: "1 Main St", OwnerID: owner.ID}
	require.NoError(t, e.Repos.House.Create(e.Ctx, e.DB.SQL, house))

	floor := &models.Floor{FloorNumber: 1, HouseID: house.ID}
	require.NoError(t, e.Repos.Floor.Create(e.Ctx, e.DB.SQL, floor))

	room := &models.Room{Name: "101", Price: decimal.RequireFromString(price), FloorID: floor.ID}
	require.NoError(t, e.Repos.Room.Create(e.Ctx, e.DB.SQL, room))

	return house, floor, room
}

func (e *Env) Token(t *testing.T, user *models.User) string {
	t.Helper()

	issued, err := e.Services.Token.Issue(user)
	require.NoError(t, err)
	return issued.AccessToken
}
