package utilityController

import (
	"context"
	"errors"

	"rentledger/config"
	"rentledger/internal/database"
	"rentledger/internal/metrics"
	. "rentledger/internal/models"
	"rentledger/internal/repositories"
	"rentledger/internal/services"
	"rentledger/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type UtilityController struct {
	utilityRepo repositories.UtilityRepository
	roomRepo    repositories.RoomRepository
	transaction *services.TransactionService
	gate        services.AuthorizationGate
	directory   services.OwnershipDirectory
	meter       *services.MeterService
	metrics     *metrics.Metrics
	waterRate   decimal.Decimal
	db          database.DB
	log         logger.Logger
}

type UtilityControllerInterface interface {
	CreateUtility(ctx context.Context, user *User, req types.CreateUtilityRequest) (*types.UtilityResponse, error)
	GetUtility(ctx context.Context, user *User, id uuid.UUID) (*types.UtilityResponse, error)
	MarkPaid(ctx context.Context, user *User, id uuid.UUID, paid bool) (*types.UtilityResponse, error)
	DeleteUtility(ctx context.Context, user *User, id uuid.UUID) error
	ListByRoom(ctx context.Context, user *User, roomID uuid.UUID) ([]types.UtilityResponse, error)
	ListByHouse(ctx context.Context, user *User, houseID uuid.UUID, month string) ([]types.UtilityResponse, error)
	ListByMonth(ctx context.Context, user *User, month string) ([]types.UtilityResponse, error)
	ListMine(ctx context.Context, user *User, month string) ([]types.UtilityResponse, error)
	ListUnpaid(ctx context.Context, user *User, roomID uuid.UUID) ([]types.UtilityResponse, error)
	LatestForRoom(ctx context.Context, user *User, roomID uuid.UUID) (*types.UtilityResponse, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) UtilityControllerInterface {
	return &UtilityController{
		utilityRepo: repos.Utility,
		roomRepo:    repos.Room,
		transaction: services.Transaction,
		gate:        services.Authorization,
		directory:   services.Ownership,
		meter:       services.Meter,
		metrics:     services.Metrics,
		waterRate:   config.WaterRate,
		db:          db,
		log:         logger.New("utilityController"),
	}
}

// CreateUtility records a month's closing reading. The opening reading is
// carried from the room's latest record when one exists. Every step runs in
// one transaction and the (room, month) unique index settles races.
func (uc *UtilityController) CreateUtility(
	ctx context.Context,
	user *User,
	req types.CreateUtilityRequest,
) (*types.UtilityResponse, error) {
	log := uc.log.Function("CreateUtility")

	if err := types.Validate(req); err != nil {
		return nil, err
	}

	month, err := types.ParseMonth(req.Month)
	if err != nil {
		return nil, err
	}

	var utility *Utility
	err = uc.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := uc.gate.AssertOwner(ctx, user.ID, types.ResourceRoom, req.RoomID); err != nil {
			return err
		}

		room, err := uc.roomRepo.GetByID(ctx, tx, req.RoomID)
		if err != nil {
			return err
		}

		exists, err := uc.utilityRepo.ExistsForRoomMonth(ctx, tx, room.ID, month)
		if err != nil {
			return err
		}
		if exists {
			return types.DuplicateUtility(room.ID, month)
		}

		opening, _, err := uc.meter.ResolveOpeningReading(ctx, tx, room.ID, req.OldWater)
		if err != nil {
			return err
		}

		costs, err := services.ComputeCosts(opening, *req.NewWater, room.Price, uc.waterRate)
		if err != nil {
			return err
		}

		utility = &Utility{
			RoomID:    room.ID,
			Month:     month,
			OldWater:  opening,
			NewWater:  *req.NewWater,
			WaterRate: uc.waterRate,
			RoomCost:  costs.RoomCost,
			WaterCost: costs.WaterCost,
			TotalCost: costs.TotalCost,
		}
		return uc.utilityRepo.Create(ctx, tx, utility)
	})
	if err != nil {
		uc.recordRejection(err)
		return nil, err
	}

	uc.metrics.UtilityCreated()
	log.Info(
		"utility created",
		"utilityID", utility.ID,
		"roomID", utility.RoomID,
		"month", utility.Month.Format("2006-01"),
		"total", utility.TotalCost.String(),
	)

	return uc.load(ctx, utility.ID)
}

func (uc *UtilityController) GetUtility(
	ctx context.Context,
	user *User,
	id uuid.UUID,
) (*types.UtilityResponse, error) {
	if err := uc.gate.AssertViewer(ctx, user.ID, types.ResourceUtility, id); err != nil {
		return nil, err
	}
	return uc.load(ctx, id)
}

// MarkPaid sets the paid flag to the given value; repeating it is a no-op.
func (uc *UtilityController) MarkPaid(
	ctx context.Context,
	user *User,
	id uuid.UUID,
	paid bool,
) (*types.UtilityResponse, error) {
	log := uc.log.Function("MarkPaid")

	if err := uc.gate.AssertOwner(ctx, user.ID, types.ResourceUtility, id); err != nil {
		return nil, err
	}

	if err := uc.utilityRepo.SetPaid(ctx, uc.db.SQL, id, paid); err != nil {
		return nil, err
	}

	log.Info("utility paid flag set", "utilityID", id, "isPaid", paid)
	return uc.load(ctx, id)
}

// DeleteUtility removes one record. Later records keep the opening readings
// they were created with.
func (uc *UtilityController) DeleteUtility(ctx context.Context, user *User, id uuid.UUID) error {
	log := uc.log.Function("DeleteUtility")

	if err := uc.gate.AssertOwner(ctx, user.ID, types.ResourceUtility, id); err != nil {
		return err
	}

	if err := uc.utilityRepo.Delete(ctx, uc.db.SQL, id); err != nil {
		return err
	}
	uc.directory.Invalidate(ctx, types.ResourceUtility, id)

	log.Info("utility deleted", "utilityID", id, "userID", user.ID)
	return nil
}

func (uc *UtilityController) ListByRoom(
	ctx context.Context,
	user *User,
	roomID uuid.UUID,
) ([]types.UtilityResponse, error) {
	if err := uc.gate.AssertViewer(ctx, user.ID, types.ResourceRoom, roomID); err != nil {
		return nil, err
	}

	utilities, err := uc.utilityRepo.ListByRoom(ctx, uc.db.SQL, roomID)
	if err != nil {
		return nil, err
	}
	return ToUtilityResponses(utilities), nil
}

func (uc *UtilityController) ListByHouse(
	ctx context.Context,
	user *User,
	houseID uuid.UUID,
	month string,
) ([]types.UtilityResponse, error) {
	monthFilter, err := types.ParseOptionalMonth(month)
	if err != nil {
		return nil, err
	}

	if err := uc.gate.AssertViewer(ctx, user.ID, types.ResourceHouse, houseID); err != nil {
		return nil, err
	}

	utilities, err := uc.utilityRepo.ListByHouse(ctx, uc.db.SQL, houseID, monthFilter)
	if err != nil {
		return nil, err
	}
	return ToUtilityResponses(utilities), nil
}

// ListByMonth covers every house for administrators, the caller's rented
// rooms for renters, and the caller's own houses otherwise.
func (uc *UtilityController) ListByMonth(
	ctx context.Context,
	user *User,
	month string,
) ([]types.UtilityResponse, error) {
	parsed, err := types.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	var utilities []*Utility
	switch user.Role {
	case RoleAdmin:
		utilities, err = uc.utilityRepo.ListByMonth(ctx, uc.db.SQL, parsed)
	case RoleRenter:
		utilities, err = uc.utilityRepo.ListByRenter(ctx, uc.db.SQL, user.ID, &parsed)
	default:
		utilities, err = uc.utilityRepo.ListByOwner(ctx, uc.db.SQL, user.ID, &parsed)
	}
	if err != nil {
		return nil, err
	}

	return ToUtilityResponses(utilities), nil
}

func (uc *UtilityController) ListMine(
	ctx context.Context,
	user *User,
	month string,
) ([]types.UtilityResponse, error) {
	monthFilter, err := types.ParseOptionalMonth(month)
	if err != nil {
		return nil, err
	}

	var utilities []*Utility
	if user.Role == RoleRenter {
		utilities, err = uc.utilityRepo.ListByRenter(ctx, uc.db.SQL, user.ID, monthFilter)
	} else {
		utilities, err = uc.utilityRepo.ListByOwner(ctx, uc.db.SQL, user.ID, monthFilter)
	}
	if err != nil {
		return nil, err
	}

	return ToUtilityResponses(utilities), nil
}

func (uc *UtilityController) ListUnpaid(
	ctx context.Context,
	user *User,
	roomID uuid.UUID,
) ([]types.UtilityResponse, error) {
	if err := uc.gate.AssertViewer(ctx, user.ID, types.ResourceRoom, roomID); err != nil {
		return nil, err
	}

	utilities, err := uc.utilityRepo.ListUnpaidByRoom(ctx, uc.db.SQL, roomID)
	if err != nil {
		return nil, err
	}
	return ToUtilityResponses(utilities), nil
}

// LatestForRoom returns nil when the room has no records yet.
func (uc *UtilityController) LatestForRoom(
	ctx context.Context,
	user *User,
	roomID uuid.UUID,
) (*types.UtilityResponse, error) {
	if err := uc.gate.AssertViewer(ctx, user.ID, types.ResourceRoom, roomID); err != nil {
		return nil, err
	}

	utility, err := uc.utilityRepo.LatestForRoom(ctx, uc.db.SQL, roomID)
	if err != nil || utility == nil {
		return nil, err
	}

	response := ToUtilityResponse(utility)
	return &response, nil
}

func (uc *UtilityController) load(ctx context.Context, id uuid.UUID) (*types.UtilityResponse, error) {
	utility, err := uc.utilityRepo.GetByID(ctx, uc.db.SQL, id)
	if err != nil {
		return nil, err
	}

	response := ToUtilityResponse(utility)
	return &response, nil
}

func (uc *UtilityController) recordRejection(err error) {
	switch {
	case errors.Is(err, types.ErrDuplicateRecord):
		uc.metrics.UtilityRejected("duplicate")
	case errors.Is(err, types.ErrInvalidReading):
		uc.metrics.UtilityRejected("invalid_reading")
	case errors.Is(err, types.ErrPermissionDenied):
		uc.metrics.UtilityRejected("permission_denied")
	case errors.Is(err, types.ErrNotFound):
		uc.metrics.UtilityRejected("not_found")
	}
}
