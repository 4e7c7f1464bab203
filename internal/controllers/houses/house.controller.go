package houseController

import (
	"context"
	"fmt"

	"rentledger/internal/database"
	. "rentledger/internal/models"
	"rentledger/internal/repositories"
	"rentledger/internal/services"
	"rentledger/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HouseController struct {
	houseRepo   repositories.HouseRepository
	floorRepo   repositories.FloorRepository
	roomRepo    repositories.RoomRepository
	transaction *services.TransactionService
	gate        services.AuthorizationGate
	directory   services.OwnershipDirectory
	db          database.DB
	log         logger.Logger
}

type HouseControllerInterface interface {
	CreateHouse(ctx context.Context, user *User, req types.CreateHouseRequest) (*types.HouseResponse, error)
	GetHouse(ctx context.Context, user *User, id uuid.UUID) (*types.HouseResponse, error)
	ListMine(ctx context.Context, user *User) ([]types.HouseResponse, error)
	UpdateHouse(ctx context.Context, user *User, id uuid.UUID, req types.UpdateHouseRequest) (*types.HouseResponse, error)
	DeleteHouse(ctx context.Context, user *User, id uuid.UUID) error
}

func New(repos repositories.Repository, services services.Service, db database.DB) HouseControllerInterface {
	return &HouseController{
		houseRepo:   repos.House,
		floorRepo:   repos.Floor,
		roomRepo:    repos.Room,
		transaction: services.Transaction,
		gate:        services.Authorization,
		directory:   services.Ownership,
		db:          db,
		log:         logger.New("houseController"),
	}
}

func (hc *HouseController) CreateHouse(
	ctx context.Context,
	user *User,
	req types.CreateHouseRequest,
) (*types.HouseResponse, error) {
	log := hc.log.Function("CreateHouse")

	if err := types.Validate(req); err != nil {
		return nil, err
	}

	house := &House{
		Name:    req.HouseName,
		Address: req.HouseAddress,
		Image:   req.HouseImage,
		OwnerID: user.ID,
	}
	if err := hc.houseRepo.Create(ctx, hc.db.SQL, house); err != nil {
		return nil, err
	}

	log.Info("house created", "houseID", house.ID, "ownerID", user.ID)
	return hc.describe(ctx, hc.db.SQL, house)
}

func (hc *HouseController) GetHouse(
	ctx context.Context,
	user *User,
	id uuid.UUID,
) (*types.HouseResponse, error) {
	if err := hc.gate.AssertViewer(ctx, user.ID, types.ResourceHouse, id); err != nil {
		return nil, err
	}

	house, err := hc.houseRepo.GetByID(ctx, hc.db.SQL, id)
	if err != nil {
		return nil, err
	}
	return hc.describe(ctx, hc.db.SQL, house)
}

func (hc *HouseController) ListMine(ctx context.Context, user *User) ([]types.HouseResponse, error) {
	houses, err := hc.houseRepo.ListByOwner(ctx, hc.db.SQL, user.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]types.HouseResponse, 0, len(houses))
	for _, house := range houses {
		response, err := hc.describe(ctx, hc.db.SQL, house)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *response)
	}
	return responses, nil
}

func (hc *HouseController) UpdateHouse(
	ctx context.Context,
	user *User,
	id uuid.UUID,
	req types.UpdateHouseRequest,
) (*types.HouseResponse, error) {
	log := hc.log.Function("UpdateHouse")

	if err := types.Validate(req); err != nil {
		return nil, err
	}

	var response *types.HouseResponse
	err := hc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := hc.gate.AssertOwner(ctx, user.ID, types.ResourceHouse, id); err != nil {
			return err
		}

		house, err := hc.houseRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}

		if req.HouseName != nil {
			house.Name = *req.HouseName
		}
		if req.HouseAddress != nil {
			house.Address = *req.HouseAddress
		}
		if req.HouseImage != nil {
			house.Image = req.HouseImage
		}

		if err := hc.houseRepo.Update(ctx, tx, house); err != nil {
			return err
		}

		response, err = hc.describe(ctx, tx, house)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info("house updated", "houseID", id)
	return response, nil
}

// DeleteHouse refuses while the house still has floors.
func (hc *HouseController) DeleteHouse(ctx context.Context, user *User, id uuid.UUID) error {
	log := hc.log.Function("DeleteHouse")

	err := hc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := hc.gate.AssertOwner(ctx, user.ID, types.ResourceHouse, id); err != nil {
			return err
		}

		floors, err := hc.floorRepo.CountByHouse(ctx, tx, id)
		if err != nil {
			return err
		}
		if floors > 0 {
			return fmt.Errorf("%w: house still has %d floors", types.ErrConflict, floors)
		}

		return hc.houseRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	hc.directory.Invalidate(ctx, types.ResourceHouse, id)
	log.Info("house deleted", "houseID", id, "userID", user.ID)
	return nil
}

func (hc *HouseController) describe(
	ctx context.Context,
	tx *gorm.DB,
	house *House,
) (*types.HouseResponse, error) {
	floors, err := hc.floorRepo.ListByHouse(ctx, tx, house.ID)
	if err != nil {
		return nil, err
	}

	response := &types.HouseResponse{
		ID:           house.ID,
		HouseName:    house.Name,
		HouseAddress: house.Address,
		HouseImage:   house.Image,
		OwnerID:      house.OwnerID,
		FloorCount:   len(floors),
		Floors:       make([]types.FloorSummary, 0, len(floors)),
		CreatedAt:    house.CreatedAt,
		UpdatedAt:    house.UpdatedAt,
	}

	for _, floor := range floors {
		rooms, err := hc.roomRepo.CountByFloor(ctx, tx, floor.ID)
		if err != nil {
			return nil, err
		}
		response.RoomCount += rooms
		response.Floors = append(response.Floors, types.FloorSummary{
			ID:          floor.ID,
			FloorNumber: floor.FloorNumber,
			FloorName:   floor.FloorName,
			RoomCount:   rooms,
		})
	}

	return response, nil
}
