package repositories

import (
	"context"
	. "rentledger/internal/models"
	"rentledger/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomParent is the single-hop view of a room used by the ownership chain.
type RoomParent struct {
	FloorID  uuid.UUID
	RenterID *uuid.UUID
}

type RoomRepository interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*Room, error)
	GetParent(ctx context.Context, tx *gorm.DB, id uuid.UUID) (RoomParent, error)
	ListByFloor(ctx context.Context, tx *gorm.DB, floorID uuid.UUID) ([]*Room, error)
	ListByHouse(ctx context.Context, tx *gorm.DB, houseID uuid.UUID, vacantOnly bool) ([]*Room, error)
	ListByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*Room, error)
	ListByRenter(ctx context.Context, tx *gorm.DB, renterID uuid.UUID) ([]*Room, error)
	CountByFloor(ctx context.Context, tx *gorm.DB, floorID uuid.UUID) (int64, error)
	CountByHouse(ctx context.Context, tx *gorm.DB, houseID uuid.UUID) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, room *Room) error
	Update(ctx context.Context, tx *gorm.DB, room *Room) error
	SetRenter(ctx context.Context, tx *gorm.DB, id uuid.UUID, renterID *uuid.UUID) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type roomRepository struct {
	log logger.Logger
}

func NewRoomRepository() RoomRepository {
	return &roomRepository{
		log: logger.New("roomRepository"),
	}
}

func preloadRoom(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Floor.House").Preload("Renter")
}

func (r *roomRepository) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*Room, error) {
	log := r.log.Function("GetByID")

	var room Room
	if err := preloadRoom(tx.WithContext(ctx)).First(&room, "rooms.id = ?", id).Error; err != nil {
		return nil, notFoundOr(log, err, types.ResourceRoom, "failed to get room", "roomID", id)
	}

	return &room, nil
}

func (r *roomRepository) GetParent(ctx context.Context, tx *gorm.DB, id uuid.UUID) (RoomParent, error) {
	log := r.log.Function("GetParent")

	var parent RoomParent
	if err := tx.WithContext(ctx).
		Model(&Room{}).
		Select("floor_id", "renter_id").
		Where("id = ?", id).
		Take(&parent).Error; err != nil {
		return RoomParent{}, notFoundOr(log, err, types.ResourceRoom, "failed to resolve room floor", "roomID", id)
	}

	return parent, nil
}

func (r *roomRepository) ListByFloor(
	ctx context.Context,
	tx *gorm.DB,
	floorID uuid.UUID,
) ([]*Room, error) {
	log := r.log.Function("ListByFloor")

	rooms := []*Room{}
	if err := preloadRoom(tx.WithContext(ctx)).
		Where("floor_id = ?", floorID).
		Order("name ASC").
		Find(&rooms).Error; err != nil {
		return nil, log.Err("failed to list rooms by floor", err, "floorID", floorID)
	}

	return rooms, nil
}

func (r *roomRepository) ListByHouse(
	ctx context.Context,
	tx *gorm.DB,
	houseID uuid.UUID,
	vacantOnly bool,
) ([]*Room, error) {
	log := r.log.Function("ListByHouse")

	query := preloadRoom(tx.WithContext(ctx)).
		Joins("JOIN floors ON floors.id = rooms.floor_id").
		Where("floors.house_id = ?", houseID)
	if vacantOnly {
		query = query.Where("rooms.renter_id IS NULL")
	}

	rooms := []*Room{}
	if err := query.
		Order("floors.floor_number ASC, rooms.name ASC").
		Find(&rooms).Error; err != nil {
		return nil, log.Err("failed to list rooms by house", err, "houseID", houseID)
	}

	return rooms, nil
}

func (r *roomRepository) ListByOwner(
	ctx context.Context,
	tx *gorm.DB,
	ownerID uuid.UUID,
) ([]*Room, error) {
	log := r.log.Function("ListByOwner")

	rooms := []*Room{}
	if err := preloadRoom(tx.WithContext(ctx)).
		Joins("JOIN floors ON floors.id = rooms.floor_id").
		Joins("JOIN houses ON houses.id = floors.house_id").
		Where("houses.owner_id = ?", ownerID).
		Order("houses.name ASC, floors.floor_number ASC, rooms.name ASC").
		Find(&rooms).Error; err != nil {
		return nil, log.Err("failed to list rooms by owner", err, "ownerID", ownerID)
	}

	return rooms, nil
}

func (r *roomRepository) ListByRenter(
	ctx context.Context,
	tx *gorm.DB,
	renterID uuid.UUID,
) ([]*Room, error) {
	log := r.log.Function("ListByRenter")

	rooms := []*Room{}
	if err := preloadRoom(tx.WithContext(ctx)).
		Where("renter_id = ?", renterID).
		Order("name ASC").
		Find(&rooms).Error; err != nil {
		return nil, log.Err("failed to list rented rooms", err, "renterID", renterID)
	}

	return rooms, nil
}

func (r *roomRepository) CountByFloor(ctx context.Context, tx *gorm.DB, floorID uuid.UUID) (int64, error) {
	log := r.log.Function("CountByFloor")

	var count int64
	if err := tx.WithContext(ctx).
		Model(&Room{}).
		Where("floor_id = ?", floorID).
		Count(&count).Error; err != nil {
		return 0, log.Err("failed to count rooms", err, "floorID", floorID)
	}

	return count, nil
}

func (r *roomRepository) CountByHouse(ctx context.Context, tx *gorm.DB, houseID uuid.UUID) (int64, error) {
	log := r.log.Function("CountByHouse")

	var count int64
	if err := tx.WithContext(ctx).
		Model(&Room{}).
		Joins("JOIN floors ON floors.id = rooms.floor_id").
		Where("floors.house_id = ?", houseID).
		Count(&count).Error; err != nil {
		return 0, log.Err("failed to count rooms by house", err, "houseID", houseID)
	}

	return count, nil
}

func (r *roomRepository) Create(ctx context.Context, tx *gorm.DB, room *Room) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Omit("Floor", "Renter").Create(room).Error; err != nil {
		return log.Err("failed to create room", err, "floorID", room.FloorID)
	}

	return nil
}

func (r *roomRepository) Update(ctx context.Context, tx *gorm.DB, room *Room) error {
	log := r.log.Function("Update")

	if err := tx.WithContext(ctx).
		Model(&Room{}).
		Where("id = ?", room.ID).
		Updates(map[string]any{
			"name":     room.Name,
			"price":    room.Price,
			"images":   room.Images,
			"floor_id": room.FloorID,
		}).Error; err != nil {
		return log.Err("failed to update room", err, "roomID", room.ID)
	}

	return nil
}

func (r *roomRepository) SetRenter(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
	renterID *uuid.UUID,
) error {
	log := r.log.Function("SetRenter")

	if err := tx.WithContext(ctx).
		Model(&Room{}).
		Where("id = ?", id).
		Update("renter_id", renterID).Error; err != nil {
		return log.Err("failed to set room renter", err, "roomID", id)
	}

	return nil
}

// Delete removes the room together with its billing records.
func (r *roomRepository) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	log := r.log.Function("Delete")

	if err := tx.WithContext(ctx).Where("room_id = ?", id).Delete(&Utility{}).Error; err != nil {
		return log.Err("failed to delete room utilities", err, "roomID", id)
	}

	result := tx.WithContext(ctx).Where("id = ?", id).Delete(&Room{})
	if result.Error != nil {
		return log.Err("failed to delete room", result.Error, "roomID", id)
	}

	if result.RowsAffected == 0 {
		return types.NotFoundf(types.ResourceRoom, id)
	}

	return nil
}
