package repositories

import (
	"context"
	"fmt"
	"rentledger/internal/database"
	. "rentledger/internal/models"
	"rentledger/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FloorRepository interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*Floor, error)
	GetHouseID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (uuid.UUID, error)
	ListByHouse(ctx context.Context, tx *gorm.DB, houseID uuid.UUID) ([]*Floor, error)
	ListByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*Floor, error)
	ExistsByHouseAndNumber(ctx context.Context, tx *gorm.DB, houseID uuid.UUID, number int) (bool, error)
	CountByHouse(ctx context.Context, tx *gorm.DB, houseID uuid.UUID) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, floor *Floor) error
	Update(ctx context.Context, tx *gorm.DB, floor *Floor) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type floorRepository struct {
	log logger.Logger
}

func NewFloorRepository() FloorRepository {
	return &floorRepository{
		log: logger.New("floorRepository"),
	}
}

func (r *floorRepository) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*Floor, error) {
	log := r.log.Function("GetByID")

	var floor Floor
	if err := tx.WithContext(ctx).
		Preload("House").
		First(&floor, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(log, err, types.ResourceFloor, "failed to get floor", "floorID", id)
	}

	return &floor, nil
}

func (r *floorRepository) GetHouseID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (uuid.UUID, error) {
	log := r.log.Function("GetHouseID")

	var row struct {
		HouseID uuid.UUID
	}
	if err := tx.WithContext(ctx).
		Model(&Floor{}).
		Select("house_id").
		Where("id = ?", id).
		Take(&row).Error; err != nil {
		return uuid.Nil, notFoundOr(log, err, types.ResourceFloor, "failed to resolve floor house", "floorID", id)
	}

	return row.HouseID, nil
}

func (r *floorRepository) ListByHouse(
	ctx context.Context,
	tx *gorm.DB,
	houseID uuid.UUID,
) ([]*Floor, error) {
	log := r.log.Function("ListByHouse")

	floors := []*Floor{}
	if err := tx.WithContext(ctx).
		Preload("House").
		Where("house_id = ?", houseID).
		Order("floor_number ASC").
		Find(&floors).Error; err != nil {
		return nil, log.Err("failed to list floors", err, "houseID", houseID)
	}

	return floors, nil
}

func (r *floorRepository) ListByOwner(
	ctx context.Context,
	tx *gorm.DB,
	ownerID uuid.UUID,
) ([]*Floor, error) {
	log := r.log.Function("ListByOwner")

	floors := []*Floor{}
	if err := tx.WithContext(ctx).
		Preload("House").
		Joins("JOIN houses ON houses.id = floors.house_id").
		Where("houses.owner_id = ?", ownerID).
		Order("houses.name ASC, floors.floor_number ASC").
		Find(&floors).Error; err != nil {
		return nil, log.Err("failed to list floors by owner", err, "ownerID", ownerID)
	}

	return floors, nil
}

func (r *floorRepository) ExistsByHouseAndNumber(
	ctx context.Context,
	tx *gorm.DB,
	houseID uuid.UUID,
	number int,
) (bool, error) {
	log := r.log.Function("ExistsByHouseAndNumber")

	var count int64
	if err := tx.WithContext(ctx).
		Model(&Floor{}).
		Where("house_id = ? AND floor_number = ?", houseID, number).
		Count(&count).Error; err != nil {
		return false, log.Err("failed to check floor number", err, "houseID", houseID, "floorNumber", number)
	}

	return count > 0, nil
}

func (r *floorRepository) CountByHouse(ctx context.Context, tx *gorm.DB, houseID uuid.UUID) (int64, error) {
	log := r.log.Function("CountByHouse")

	var count int64
	if err := tx.WithContext(ctx).
		Model(&Floor{}).
		Where("house_id = ?", houseID).
		Count(&count).Error; err != nil {
		return 0, log.Err("failed to count floors", err, "houseID", houseID)
	}

	return count, nil
}

func (r *floorRepository) Create(ctx context.Context, tx *gorm.DB, floor *Floor) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(floor).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: floor %d already exists in this house", types.ErrConflict, floor.FloorNumber)
		}
		return log.Err("failed to create floor", err, "houseID", floor.HouseID)
	}

	return nil
}

func (r *floorRepository) Update(ctx context.Context, tx *gorm.DB, floor *Floor) error {
	log := r.log.Function("Update")

	if err := tx.WithContext(ctx).
		Model(&Floor{}).
		Where("id = ?", floor.ID).
		Updates(map[string]any{
			"floor_number": floor.FloorNumber,
			"floor_name":   floor.FloorName,
		}).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: floor %d already exists in this house", types.ErrConflict, floor.FloorNumber)
		}
		return log.Err("failed to update floor", err, "floorID", floor.ID)
	}

	return nil
}

func (r *floorRepository) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	log := r.log.Function("Delete")

	result := tx.WithContext(ctx).Where("id = ?", id).Delete(&Floor{})
	if result.Error != nil {
		return log.Err("failed to delete floor", result.Error, "floorID", id)
	}

	if result.RowsAffected == 0 {
		return types.NotFoundf(types.ResourceFloor, id)
	}

	return nil
}
