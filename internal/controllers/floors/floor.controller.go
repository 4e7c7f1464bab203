package floorController

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

type FloorController struct {
	floorRepo   repositories.FloorRepository
	roomRepo    repositories.RoomRepository
	transaction *services.TransactionService
	gate        services.AuthorizationGate
	directory   services.OwnershipDirectory
	db          database.DB
	log         logger.Logger
}

type FloorControllerInterface interface {
	CreateFloor(ctx context.Context, user *User, req types.CreateFloorRequest) (*types.FloorResponse, error)
	GetFloor(ctx context.Context, user *User, id uuid.UUID) (*types.FloorResponse, error)
	UpdateFloor(ctx context.Context, user *User, id uuid.UUID, req types.UpdateFloorRequest) (*types.FloorResponse, error)
	DeleteFloor(ctx context.Context, user *User, id uuid.UUID) error
	ListByHouse(ctx context.Context, user *User, houseID uuid.UUID) ([]types.FloorResponse, error)
	ListMine(ctx context.Context, user *User) ([]types.FloorResponse, error)
}

func New(repos repositories.Repository, services services.Service, db database.DB) FloorControllerInterface {
	return &FloorController{
		floorRepo:   repos.Floor,
		roomRepo:    repos.Room,
		transaction: services.Transaction,
		gate:        services.Authorization,
		directory:   services.Ownership,
		db:          db,
		log:         logger.New("floorController"),
	}
}

func (fc *FloorController) CreateFloor(
	ctx context.Context,
	user *User,
	req types.CreateFloorRequest,
) (*types.FloorResponse, error) {
	log := fc.log.Function("CreateFloor")

	if err := types.Validate(req); err != nil {
		return nil, err
	}

	floor := &Floor{
		FloorNumber: req.FloorNumber,
		FloorName:   req.FloorName,
		HouseID:     req.HouseID,
	}

	err := fc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := fc.gate.AssertOwner(ctx, user.ID, types.ResourceHouse, req.HouseID); err != nil {
			return err
		}

		if err := fc.ensureNumberFree(ctx, tx, req.HouseID, req.FloorNumber); err != nil {
			return err
		}

		return fc.floorRepo.Create(ctx, tx, floor)
	})
	if err != nil {
		return nil, err
	}

	log.Info("floor created", "floorID", floor.ID, "houseID", floor.HouseID)
	return fc.load(ctx, fc.db.SQL, floor.ID)
}

func (fc *FloorController) GetFloor(
	ctx context.Context,
	user *User,
	id uuid.UUID,
) (*types.FloorResponse, error) {
	if err := fc.gate.AssertViewer(ctx, user.ID, types.ResourceFloor, id); err != nil {
		return nil, err
	}
	return fc.load(ctx, fc.db.SQL, id)
}

func (fc *FloorController) UpdateFloor(
	ctx context.Context,
	user *User,
	id uuid.UUID,
	req types.UpdateFloorRequest,
) (*types.FloorResponse, error) {
	log := fc.log.Function("UpdateFloor")

	if err := types.Validate(req); err != nil {
		return nil, err
	}

	var response *types.FloorResponse
	err := fc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := fc.gate.AssertOwner(ctx, user.ID, types.ResourceFloor, id); err != nil {
			return err
		}

		floor, err := fc.floorRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}

		if req.FloorNumber != nil && *req.FloorNumber != floor.FloorNumber {
			if err := fc.ensureNumberFree(ctx, tx, floor.HouseID, *req.FloorNumber); err != nil {
				return err
			}
			floor.FloorNumber = *req.FloorNumber
		}
		if req.FloorName != nil {
			floor.FloorName = req.FloorName
		}

		if err := fc.floorRepo.Update(ctx, tx, floor); err != nil {
			return err
		}

		response, err = fc.load(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info("floor updated", "floorID", id)
	return response, nil
}

// DeleteFloor refuses while rooms remain on the floor.
func (fc *FloorController) DeleteFloor(ctx context.Context, user *User, id uuid.UUID) error {
	log := fc.log.Function("DeleteFloor")

	err := fc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := fc.gate.AssertOwner(ctx, user.ID, types.ResourceFloor, id); err != nil {
			return err
		}

		rooms, err := fc.roomRepo.CountByFloor(ctx, tx, id)
		if err != nil {
			return err
		}
		if rooms > 0 {
			return fmt.Errorf("%w: floor still has %d rooms", types.ErrConflict, rooms)
		}

		return fc.floorRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	fc.directory.Invalidate(ctx, types.ResourceFloor, id)
	log.Info("floor deleted", "floorID", id, "userID", user.ID)
	return nil
}

func (fc *FloorController) ListByHouse(
	ctx context.Context,
	user *User,
	houseID uuid.UUID,
) ([]types.FloorResponse, error) {
	if err := fc.gate.AssertViewer(ctx, user.ID, types.ResourceHouse, houseID); err != nil {
		return nil, err
	}

	floors, err := fc.floorRepo.ListByHouse(ctx, fc.db.SQL, houseID)
	if err != nil {
		return nil, err
	}
	return fc.describeAll(ctx, floors)
}

func (fc *FloorController) ListMine(ctx context.Context, user *User) ([]types.FloorResponse, error) {
	floors, err := fc.floorRepo.ListByOwner(ctx, fc.db.SQL, user.ID)
	if err != nil {
		return nil, err
	}
	return fc.describeAll(ctx, floors)
}

func (fc *FloorController) ensureNumberFree(
	ctx context.Context,
	tx *gorm.DB,
	houseID uuid.UUID,
	number int,
) error {
	taken, err := fc.floorRepo.ExistsByHouseAndNumber(ctx, tx, houseID, number)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: floor %d already exists in this house", types.ErrConflict, number)
	}
	return nil
}

func (fc *FloorController) load(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.FloorResponse, error) {
	floor, err := fc.floorRepo.GetByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	response, err := fc.describe(ctx, tx, floor)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (fc *FloorController) describeAll(ctx context.Context, floors []*Floor) ([]types.FloorResponse, error) {
	responses := make([]types.FloorResponse, 0, len(floors))
	for _, floor := range floors {
		response, err := fc.describe(ctx, fc.db.SQL, floor)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}
	return responses, nil
}

func (fc *FloorController) describe(ctx context.Context, tx *gorm.DB, floor *Floor) (types.FloorResponse, error) {
	rooms, err := fc.roomRepo.CountByFloor(ctx, tx, floor.ID)
	if err != nil {
		return types.FloorResponse{}, err
	}

	response := types.FloorResponse{
		ID:          floor.ID,
		FloorNumber: floor.FloorNumber,
		FloorName:   floor.FloorName,
		HouseID:     floor.HouseID,
		RoomCount:   rooms,
	}
	if floor.House != nil {
		response.HouseName = floor.House.Name
	}
	return response, nil
}
