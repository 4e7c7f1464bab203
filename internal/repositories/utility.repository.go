package repositories

import (
	"context"
	"errors"
	"rentledger/internal/database"
	. "rentledger/internal/models"
	"rentledger/internal/types"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UtilityRepository interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*Utility, error)
	GetRoomID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (uuid.UUID, error)
	ListByRoom(ctx context.Context, tx *gorm.DB, roomID uuid.UUID) ([]*Utility, error)
	ListByHouse(ctx context.Context, tx *gorm.DB, houseID uuid.UUID, month *time.Time) ([]*Utility, error)
	ListByMonth(ctx context.Context, tx *gorm.DB, month time.Time) ([]*Utility, error)
	ListByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, month *time.Time) ([]*Utility, error)
	ListByRenter(ctx context.Context, tx *gorm.DB, renterID uuid.UUID, month *time.Time) ([]*Utility, error)
	ListUnpaidByRoom(ctx context.Context, tx *gorm.DB, roomID uuid.UUID) ([]*Utility, error)
	LatestForRoom(ctx context.Context, tx *gorm.DB, roomID uuid.UUID) (*Utility, error)
	ExistsForRoomMonth(ctx context.Context, tx *gorm.DB, roomID uuid.UUID, month time.Time) (bool, error)
	Create(ctx context.Context, tx *gorm.DB, utility *Utility) error
	SetPaid(ctx context.Context, tx *gorm.DB, id uuid.UUID, paid bool) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type utilityRepository struct {
	log logger.Logger
}

func NewUtilityRepository() UtilityRepository {
	return &utilityRepository{
		log: logger.New("utilityRepository"),
	}
}

const utilityOrder = "utilities.month ASC, rooms.name ASC"

func preloadUtility(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Room.Floor.House")
}

// joinUtilityChain joins rooms, floors and houses so collection queries can
// filter on any ancestor and order by room name.
func joinUtilityChain(tx *gorm.DB) *gorm.DB {
	return tx.
		Joins("JOIN rooms ON rooms.id = utilities.room_id").
		Joins("JOIN floors ON floors.id = rooms.floor_id").
		Joins("JOIN houses ON houses.id = floors.house_id")
}

func withMonth(tx *gorm.DB, month *time.Time) *gorm.DB {
	if month == nil {
		return tx
	}
	return tx.Where("utilities.month = ?", NormalizeMonth(*month))
}

func (r *utilityRepository) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*Utility, error) {
	log := r.log.Function("GetByID")

	var utility Utility
	if err := preloadUtility(tx.WithContext(ctx)).
		First(&utility, "utilities.id = ?", id).Error; err != nil {
		return nil, notFoundOr(log, err, types.ResourceUtility, "failed to get utility", "utilityID", id)
	}

	return &utility, nil
}

func (r *utilityRepository) GetRoomID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (uuid.UUID, error) {
	log := r.log.Function("GetRoomID")

	var row struct {
		RoomID uuid.UUID
	}
	if err := tx.WithContext(ctx).
		Model(&Utility{}).
		Select("room_id").
		Where("id = ?", id).
		Take(&row).Error; err != nil {
		return uuid.Nil, notFoundOr(log, err, types.ResourceUtility, "failed to resolve utility room", "utilityID", id)
	}

	return row.RoomID, nil
}

func (r *utilityRepository) ListByRoom(
	ctx context.Context,
	tx *gorm.DB,
	roomID uuid.UUID,
) ([]*Utility, error) {
	log := r.log.Function("ListByRoom")

	utilities := []*Utility{}
	if err := preloadUtility(tx.WithContext(ctx)).
		Where("room_id = ?", roomID).
		Order("month ASC").
		Find(&utilities).Error; err != nil {
		return nil, log.Err("failed to list utilities by room", err, "roomID", roomID)
	}

	return utilities, nil
}

func (r *utilityRepository) ListByHouse(
	ctx context.Context,
	tx *gorm.DB,
	houseID uuid.UUID,
	month *time.Time,
) ([]*Utility, error) {
	log := r.log.Function("ListByHouse")

	utilities := []*Utility{}
	query := joinUtilityChain(preloadUtility(tx.WithContext(ctx))).
		Where("houses.id = ?", houseID)
	if err := withMonth(query, month).
		Order(utilityOrder).
		Find(&utilities).Error; err != nil {
		return nil, log.Err("failed to list utilities by house", err, "houseID", houseID)
	}

	return utilities, nil
}

func (r *utilityRepository) ListByMonth(
	ctx context.Context,
	tx *gorm.DB,
	month time.Time,
) ([]*Utility, error) {
	log := r.log.Function("ListByMonth")

	utilities := []*Utility{}
	query := joinUtilityChain(preloadUtility(tx.WithContext(ctx)))
	if err := withMonth(query, &month).
		Order(utilityOrder).
		Find(&utilities).Error; err != nil {
		return nil, log.Err("failed to list utilities by month", err, "month", month)
	}

	return utilities, nil
}

func (r *utilityRepository) ListByOwner(
	ctx context.Context,
	tx *gorm.DB,
	ownerID uuid.UUID,
	month *time.Time,
) ([]*Utility, error) {
	log := r.log.Function("ListByOwner")

	utilities := []*Utility{}
	query := joinUtilityChain(preloadUtility(tx.WithContext(ctx))).
		Where("houses.owner_id = ?", ownerID)
	if err := withMonth(query, month).
		Order(utilityOrder).
		Find(&utilities).Error; err != nil {
		return nil, log.Err("failed to list utilities by owner", err, "ownerID", ownerID)
	}

	return utilities, nil
}

func (r *utilityRepository) ListByRenter(
	ctx context.Context,
	tx *gorm.DB,
	renterID uuid.UUID,
	month *time.Time,
) ([]*Utility, error) {
	log := r.log.Function("ListByRenter")

	utilities := []*Utility{}
	query := joinUtilityChain(preloadUtility(tx.WithContext(ctx))).
		Where("rooms.renter_id = ?", renterID)
	if err := withMonth(query, month).
		Order(utilityOrder).
		Find(&utilities).Error; err != nil {
		return nil, log.Err("failed to list utilities by renter", err, "renterID", renterID)
	}

	return utilities, nil
}

func (r *utilityRepository) ListUnpaidByRoom(
	ctx context.Context,
	tx *gorm.DB,
	roomID uuid.UUID,
) ([]*Utility, error) {
	log := r.log.Function("ListUnpaidByRoom")

	utilities := []*Utility{}
	if err := preloadUtility(tx.WithContext(ctx)).
		Where("room_id = ? AND is_paid = ?", roomID, false).
		Order("month ASC").
		Find(&utilities).Error; err != nil {
		return nil, log.Err("failed to list unpaid utilities", err, "roomID", roomID)
	}

	return utilities, nil
}

// LatestForRoom returns nil without an error when the room has no records.
func (r *utilityRepository) LatestForRoom(
	ctx context.Context,
	tx *gorm.DB,
	roomID uuid.UUID,
) (*Utility, error) {
	log := r.log.Function("LatestForRoom")

	var utility Utility
	err := preloadUtility(tx.WithContext(ctx)).
		Where("room_id = ?", roomID).
		Order("month DESC").
		Take(&utility).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, log.Err("failed to get latest utility", err, "roomID", roomID)
	}

	return &utility, nil
}

func (r *utilityRepository) ExistsForRoomMonth(
	ctx context.Context,
	tx *gorm.DB,
	roomID uuid.UUID,
	month time.Time,
) (bool, error) {
	log := r.log.Function("ExistsForRoomMonth")

	var count int64
	if err := tx.WithContext(ctx).
		Model(&Utility{}).
		Where("room_id = ? AND month = ?", roomID, NormalizeMonth(month)).
		Count(&count).Error; err != nil {
		return false, log.Err("failed to check utility month", err, "roomID", roomID, "month", month)
	}

	return count > 0, nil
}

func (r *utilityRepository) Create(ctx context.Context, tx *gorm.DB, utility *Utility) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Omit("Room").Create(utility).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return types.DuplicateUtility(utility.RoomID, utility.Month)
		}
		return log.Err("failed to create utility", err, "roomID", utility.RoomID)
	}

	return nil
}

func (r *utilityRepository) SetPaid(ctx context.Context, tx *gorm.DB, id uuid.UUID, paid bool) error {
	log := r.log.Function("SetPaid")

	result := tx.WithContext(ctx).
		Model(&Utility{}).
		Where("id = ?", id).
		Update("is_paid", paid)
	if result.Error != nil {
		return log.Err("failed to set utility paid flag", result.Error, "utilityID", id)
	}

	if result.RowsAffected == 0 {
		return types.NotFoundf(types.ResourceUtility, id)
	}

	return nil
}

func (r *utilityRepository) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	log := r.log.Function("Delete")

	result := tx.WithContext(ctx).Where("id = ?", id).Delete(&Utility{})
	if result.Error != nil {
		return log.Err("failed to delete utility", result.Error, "utilityID", id)
	}

	if result.RowsAffected == 0 {
		return types.NotFoundf(types.ResourceUtility, id)
	}

	return nil
}
