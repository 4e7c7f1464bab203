package seed

import (
	"context"
	"time"

	"rentledger/config"
	"rentledger/internal/database"
	. "rentledger/internal/models"
	"rentledger/internal/repositories"
	"rentledger/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type seedUser struct {
	fullName string
	email    string
	phone    string
	role     Role
}

var users = []seedUser{
	{"Admin User", "admin@example.com", "0900000000", RoleAdmin},
	{"Owner User", "owner@example.com", "0900000001", RoleHouseOwner},
	{"Renter User", "renter@example.com", "0900000002", RoleRenter},
}

// readings are the closing meter values for consecutive months starting at
// the first seeded month.
var readings = []string{"50", "70", "95.5"}

// Seed creates a demo owner with one house, floor and rented room plus a few
// months of billing records. All users share the password "password".
func Seed(db database.DB, config config.Config, log logger.Logger) error {
	log = log.Function("Seed")
	log.Info("Seeding development data")

	ctx := context.Background()
	repos := repositories.New(db)
	passwords := services.NewPasswordService(config.BcryptCost)

	hash, err := passwords.Hash("password")
	if err != nil {
		return log.Err("failed to hash seed password", err)
	}

	created := make(map[Role]*User, len(users))
	for _, u := range users {
		user := &User{
			FullName:     u.fullName,
			Email:        u.email,
			PhoneNumber:  u.phone,
			PasswordHash: hash,
			Role:         u.role,
		}
		if err := repos.User.Create(ctx, db.SQL, user); err != nil {
			return log.Err("failed to create user", err, "email", u.email)
		}
		created[u.role] = user
	}

	return db.SQL.Transaction(func(tx *gorm.DB) error {
		house := &House{Name: "Sunrise Apartments", Address: "12 Riverside Road", OwnerID: created[RoleHouseOwner].ID}
		if err := repos.House.Create(ctx, tx, house); err != nil {
			return err
		}

		floor := &Floor{FloorNumber: 1, HouseID: house.ID}
		if err := repos.Floor.Create(ctx, tx, floor); err != nil {
			return err
		}

		renterID := created[RoleRenter].ID
		room := &Room{Name: "101", Price: decimal.RequireFromString("100.00"), FloorID: floor.ID, RenterID: &renterID}
		if err := repos.Room.Create(ctx, tx, room); err != nil {
			return err
		}

		month := NormalizeMonth(time.Now().AddDate(0, -len(readings), 0))
		opening := decimal.Zero
		for i, value := range readings {
			closing := decimal.RequireFromString(value)
			costs, err := services.ComputeCosts(opening, closing, room.Price, config.WaterRate)
			if err != nil {
				return err
			}

			utility := &Utility{
				RoomID:    room.ID,
				Month:     month.AddDate(0, i, 0),
				OldWater:  opening,
				NewWater:  closing,
				WaterRate: config.WaterRate,
				RoomCost:  costs.RoomCost,
				WaterCost: costs.WaterCost,
				TotalCost: costs.TotalCost,
				IsPaid:    i < len(readings)-1,
			}
			if err := repos.Utility.Create(ctx, tx, utility); err != nil {
				return err
			}
			opening = closing
		}

		log.Info("Seeded property", "houseID", house.ID, "roomID", room.ID, "records", len(readings))
		return nil
	})
}
