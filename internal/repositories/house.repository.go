package repositories

import (
	"context"
	. "rentledger/internal/models"
	"rentledger/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HouseRepository interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*House, error)
	GetOwnerID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (uuid.UUID, error)
	ListByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*House, error)
	Create(ctx context.Context, tx *gorm.DB, house *House) error
	Update(ctx context.Context, tx *gorm.DB, house *House) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type houseRepository struct {
	log logger.Logger
}

func NewHouseRepository() HouseRepository {
	return &houseRepository{
		log: logger.New("houseRepository"),
	}
}

func (r *houseRepository) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*House, error) {
	log := r.log.Function("GetByID")

	var house House
	if err := tx.WithContext(ctx).First(&house, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(log, err, types.ResourceHouse, "failed to get house", "houseID", id)
	}

	return &house, nil
}

func (r *houseRepository) GetOwnerID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (uuid.UUID, error) {
	log := r.log.Function("GetOwnerID")

	var row struct {
		OwnerID uuid.UUID
	}
	if err := tx.WithContext(ctx).
		Model(&House{}).
		Select("owner_id").
		Where("id = ?", id).
		Take(&row).Error; err != nil {
		return uuid.Nil, notFoundOr(log, err, types.ResourceHouse, "failed to resolve house owner", "houseID", id)
	}

	return row.OwnerID, nil
}

func (r *houseRepository) ListByOwner(
	ctx context.Context,
	tx *gorm.DB,
	ownerID uuid.UUID,
) ([]*House, error) {
	log := r.log.Function("ListByOwner")

	houses := []*House{}
	if err := tx.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&houses).Error; err != nil {
		return nil, log.Err("failed to list houses", err, "ownerID", ownerID)
	}

	return houses, nil
}

func (r *houseRepository) Create(ctx context.Context, tx *gorm.DB, house *House) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(house).Error; err != nil {
		return log.Err("failed to create house", err, "ownerID", house.OwnerID)
	}

	return nil
}

func (r *houseRepository) Update(ctx context.Context, tx *gorm.DB, house *House) error {
	log := r.log.Function("Update")

	if err := tx.WithContext(ctx).
		Model(&House{}).
		Where("id = ?", house.ID).
		Updates(map[string]any{
			"name":    house.Name,
			"address": house.Address,
			"image":   house.Image,
		}).Error; err != nil {
		return log.Err("failed to update house", err, "houseID", house.ID)
	}

	return nil
}

func (r *houseRepository) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	log := r.log.Function("Delete")

	result := tx.WithContext(ctx).Where("id = ?", id).Delete(&House{})
	if result.Error != nil {
		return log.Err("failed to delete house", result.Error, "houseID", id)
	}

	if result.RowsAffected == 0 {
		return types.NotFoundf(types.ResourceHouse, id)
	}

	return nil
}
