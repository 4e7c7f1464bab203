package roomController

import (
	"context"
	"errors"
	"fmt"

	"rentledger/internal/database"
	. "rentledger/internal/models"
	"rentledger/internal/repositories"
	"rentledger/internal/services"
	"rentledger/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoomController struct {
	roomRepo    repositories.RoomRepository
	userRepo    repositories.UserRepository
	transaction *services.TransactionService
	gate        services.AuthorizationGate
	directory   services.OwnershipDirectory
	db          database.DB
	log         logger.Logger
}

type RoomControllerInterface interface {
	CreateRoom(ctx context.Context, user *User, req types.CreateRoomRequest) (*types.RoomResponse, error)
	GetRoom(ctx context.Context, user *User, id uuid.UUID) (*types.RoomResponse, error)
	UpdateRoom(ctx context.Context, user *User, id uuid.UUID, req types.UpdateRoomRequest) (*types.RoomResponse, error)
	DeleteRoom(ctx context.Context, user *User, id uuid.UUID) error
	ListMine(ctx context.Context, user *User) ([]types.RoomResponse, error)
	ListByHouse(ctx context.Context, user *User, houseID uuid.UUID) ([]types.RoomResponse, error)
	ListByFloor(ctx context.Context, user *User, floorID uuid.UUID) ([]types.RoomResponse, error)
	ListAvailable(ctx context.Context, user *User, houseID uuid.UUID) ([]types.RoomResponse, error)
	ListRented(ctx context.Context, user *User) ([]types.RoomResponse, error)
	AssignRenter(ctx context.Context, user *User, id uuid.UUID, req types.AssignRenterRequest) (*types.RoomResponse, error)
	RemoveRenter(ctx context.Context, user *User, id uuid.UUID) (*types.RoomResponse, error)
}

func New(repos repositories.Repository, services services.Service, db database.DB) RoomControllerInterface {
	return &RoomController{
		roomRepo:    repos.Room,
		userRepo:    repos.User,
		transaction: services.Transaction,
		gate:        services.Authorization,
		directory:   services.Ownership,
		db:          db,
		log:         logger.New("roomController"),
	}
}

func (rc *RoomController) CreateRoom(
	ctx context.Context,
	user *User,
	req types.CreateRoomRequest,
) (*types.RoomResponse, error) {
	log := rc.log.Function("CreateRoom")

	if err := types.Validate(req); err != nil {
		return nil, err
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", types.ErrValidation)
	}

	room := &Room{
		Name:    req.RoomName,
		Price:   *req.Price,
		Images:  datatypes.JSONSlice[string](req.Images),
		FloorID: req.FloorID,
	}

	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := rc.gate.AssertOwner(ctx, user.ID, types.ResourceFloor, req.FloorID); err != nil {
			return err
		}
		return rc.roomRepo.Create(ctx, tx, room)
	})
	if err != nil {
		return nil, err
	}

	log.Info("room created", "roomID", room.ID, "floorID", room.FloorID)
	return rc.load(ctx, rc.db.SQL, room.ID)
}

func (rc *RoomController) GetRoom(
	ctx context.Context,
	user *User,
	id uuid.UUID,
) (*types.RoomResponse, error) {
	if err := rc.gate.AssertViewer(ctx, user.ID, types.ResourceRoom, id); err != nil {
		return nil, err
	}
	return rc.load(ctx, rc.db.SQL, id)
}

// UpdateRoom moving a room to another floor requires ownership of both the
// current and the target floor.
func (rc *RoomController) UpdateRoom(
	ctx context.Context,
	user *User,
	id uuid.UUID,
	req types.UpdateRoomRequest,
) (*types.RoomResponse, error) {
	log := rc.log.Function("UpdateRoom")

	if err := types.Validate(req); err != nil {
		return nil, err
	}
	if req.Price != nil && req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", types.ErrValidation)
	}

	var (
		response *types.RoomResponse
		moved    bool
	)
	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := rc.gate.AssertOwner(ctx, user.ID, types.ResourceRoom, id); err != nil {
			return err
		}

		room, err := rc.roomRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}

		if req.FloorID != nil && *req.FloorID != room.FloorID {
			if err := rc.gate.AssertMove(
				ctx,
				user.ID,
				types.ResourceFloor,
				room.FloorID,
				types.ResourceFloor,
				*req.FloorID,
			); err != nil {
				return err
			}
			room.FloorID = *req.FloorID
			moved = true
		}
		if req.RoomName != nil {
			room.Name = *req.RoomName
		}
		if req.Price != nil {
			room.Price = *req.Price
		}
		if req.Images != nil {
			room.Images = datatypes.JSONSlice[string](req.Images)
		}

		if err := rc.roomRepo.Update(ctx, tx, room); err != nil {
			return err
		}

		response, err = rc.load(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	if moved {
		rc.directory.Invalidate(ctx, types.ResourceRoom, id)
	}

	log.Info("room updated", "roomID", id, "moved", moved)
	return response, nil
}

// DeleteRoom also removes the room's utility records.
func (rc *RoomController) DeleteRoom(ctx context.Context, user *User, id uuid.UUID) error {
	log := rc.log.Function("DeleteRoom")

	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := rc.gate.AssertOwner(ctx, user.ID, types.ResourceRoom, id); err != nil {
			return err
		}
		return rc.roomRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	rc.directory.Invalidate(ctx, types.ResourceRoom, id)
	log.Info("room deleted", "roomID", id, "userID", user.ID)
	return nil
}

func (rc *RoomController) ListMine(ctx context.Context, user *User) ([]types.RoomResponse, error) {
	rooms, err := rc.roomRepo.ListByOwner(ctx, rc.db.SQL, user.ID)
	if err != nil {
		return nil, err
	}
	return ToRoomResponses(rooms), nil
}

func (rc *RoomController) ListByHouse(
	ctx context.Context,
	user *User,
	houseID uuid.UUID,
) ([]types.RoomResponse, error) {
	return rc.listByHouse(ctx, user, houseID, false)
}

func (rc *RoomController) ListAvailable(
	ctx context.Context,
	user *User,
	houseID uuid.UUID,
) ([]types.RoomResponse, error) {
	return rc.listByHouse(ctx, user, houseID, true)
}

func (rc *RoomController) ListByFloor(
	ctx context.Context,
	user *User,
	floorID uuid.UUID,
) ([]types.RoomResponse, error) {
	if err := rc.gate.AssertViewer(ctx, user.ID, types.ResourceFloor, floorID); err != nil {
		return nil, err
	}

	rooms, err := rc.roomRepo.ListByFloor(ctx, rc.db.SQL, floorID)
	if err != nil {
		return nil, err
	}
	return ToRoomResponses(rooms), nil
}

func (rc *RoomController) ListRented(ctx context.Context, user *User) ([]types.RoomResponse, error) {
	rooms, err := rc.roomRepo.ListByRenter(ctx, rc.db.SQL, user.ID)
	if err != nil {
		return nil, err
	}
	return ToRoomResponses(rooms), nil
}

// AssignRenter accepts only users with the RENTER role and only vacant rooms.
func (rc *RoomController) AssignRenter(
	ctx context.Context,
	user *User,
	id uuid.UUID,
	req types.AssignRenterRequest,
) (*types.RoomResponse, error) {
	log := rc.log.Function("AssignRenter")

	if err := types.Validate(req); err != nil {
		return nil, err
	}

	var response *types.RoomResponse
	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := rc.gate.AssertOwner(ctx, user.ID, types.ResourceRoom, id); err != nil {
			return err
		}

		room, err := rc.roomRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if !room.IsAvailable() {
			return fmt.Errorf("%w: room %s already has a renter", types.ErrConflict, id)
		}

		renter, err := rc.userRepo.GetByID(ctx, tx, req.RenterID)
		if err != nil {
			if errors.Is(err, types.ErrNotFound) {
				return fmt.Errorf("%w: renter %s does not exist", types.ErrValidation, req.RenterID)
			}
			return err
		}
		if renter.Role != RoleRenter {
			return fmt.Errorf("%w: user %s is not a renter", types.ErrValidation, req.RenterID)
		}

		if err := rc.roomRepo.SetRenter(ctx, tx, id, &renter.ID); err != nil {
			return err
		}

		response, err = rc.load(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	rc.directory.Invalidate(ctx, types.ResourceRoom, id)
	log.Info("renter assigned", "roomID", id, "renterID", req.RenterID)
	return response, nil
}

func (rc *RoomController) RemoveRenter(
	ctx context.Context,
	user *User,
	id uuid.UUID,
) (*types.RoomResponse, error) {
	log := rc.log.Function("RemoveRenter")

	var response *types.RoomResponse
	err := rc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := rc.gate.AssertOwner(ctx, user.ID, types.ResourceRoom, id); err != nil {
			return err
		}

		if err := rc.roomRepo.SetRenter(ctx, tx, id, nil); err != nil {
			return err
		}

		var err error
		response, err = rc.load(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	rc.directory.Invalidate(ctx, types.ResourceRoom, id)
	log.Info("renter removed", "roomID", id)
	return response, nil
}

func (rc *RoomController) listByHouse(
	ctx context.Context,
	user *User,
	houseID uuid.UUID,
	vacantOnly bool,
) ([]types.RoomResponse, error) {
	if err := rc.gate.AssertViewer(ctx, user.ID, types.ResourceHouse, houseID); err != nil {
		return nil, err
	}

	rooms, err := rc.roomRepo.ListByHouse(ctx, rc.db.SQL, houseID, vacantOnly)
	if err != nil {
		return nil, err
	}
	return ToRoomResponses(rooms), nil
}

func (rc *RoomController) load(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.RoomResponse, error) {
	room, err := rc.roomRepo.GetByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	response := ToRoomResponse(room)
	return &response, nil
}

func ToRoomResponse(room *Room) types.RoomResponse {
	response := types.RoomResponse{
		ID:        room.ID,
		RoomName:  room.Name,
		Price:     room.Price.StringFixed(2),
		Images:    []string(room.Images),
		FloorID:   room.FloorID,
		Available: room.IsAvailable(),
	}
	if response.Images == nil {
		response.Images = []string{}
	}

	if floor := room.Floor; floor != nil {
		response.FloorNumber = floor.FloorNumber
		response.FloorName = floor.FloorName
		response.HouseID = floor.HouseID
		if floor.House != nil {
			response.HouseName = floor.House.Name
		}
	}
	if room.Renter != nil {
		summary := room.Renter.ToSummary()
		response.Renter = &summary
	}

	return response
}

func ToRoomResponses(rooms []*Room) []types.RoomResponse {
	responses := make([]types.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		responses = append(responses, ToRoomResponse(room))
	}
	return responses
}
