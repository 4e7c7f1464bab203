package controllers

import (
	"rentledger/config"
	"rentledger/internal/database"
	"rentledger/internal/repositories"
	"rentledger/internal/services"

	authController "rentledger/internal/controllers/auth"
	floorController "rentledger/internal/controllers/floors"
	followController "rentledger/internal/controllers/follows"
	houseController "rentledger/internal/controllers/houses"
	reportController "rentledger/internal/controllers/reports"
	roomController "rentledger/internal/controllers/rooms"
	userController "rentledger/internal/controllers/users"
	utilityController "rentledger/internal/controllers/utilities"
)

type Controllers struct {
	User    userController.UserControllerInterface
	Auth    authController.AuthControllerInterface
	House   houseController.HouseControllerInterface
	Floor   floorController.FloorControllerInterface
	Room    roomController.RoomControllerInterface
	Utility utilityController.UtilityControllerInterface
	Follow  followController.FollowControllerInterface
	Report  reportController.ReportControllerInterface
}

func New(
	services services.Service,
	repos repositories.Repository,
	config config.Config,
	db database.DB,
) Controllers {
	return Controllers{
		User:    userController.New(repos, services, config, db),
		Auth:    authController.New(services, repos, db),
		House:   houseController.New(repos, services, db),
		Floor:   floorController.New(repos, services, db),
		Room:    roomController.New(repos, services, db),
		Utility: utilityController.New(repos, services, config, db),
		Follow:  followController.New(repos, db),
		Report:  reportController.New(repos, services, db),
	}
}
