package services

import (
	"context"
	"errors"
	"fmt"

	"rentledger/internal/constants"
	appcontext "rentledger/internal/context"
	"rentledger/internal/database"
	"rentledger/internal/metrics"
	"rentledger/internal/repositories"
	"rentledger/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnershipChain is a fully resolved path from a resource up to its owner.
// Pointer fields are nil when the chain starts above that level.
type OwnershipChain struct {
	UtilityID *uuid.UUID
	RoomID    *uuid.UUID
	FloorID   *uuid.UUID
	HouseID   uuid.UUID
	OwnerID   uuid.UUID
	RenterID  *uuid.UUID
}

type OwnershipDirectory interface {
	OwnerOf(ctx context.Context, kind types.ResourceKind, id uuid.UUID) (uuid.UUID, error)
	Chain(ctx context.Context, kind types.ResourceKind, id uuid.UUID) (OwnershipChain, error)
	Invalidate(ctx context.Context, kind types.ResourceKind, id uuid.UUID)
}

type chainResolver func(ctx context.Context, tx *gorm.DB, id uuid.UUID) (OwnershipChain, error)

type OwnershipService struct {
	db        database.DB
	repos     repositories.Repository
	cache     database.CacheClient
	metrics   *metrics.Metrics
	resolvers map[types.ResourceKind]chainResolver
	log       logger.Logger
}

func NewOwnershipService(
	db database.DB,
	repos repositories.Repository,
	m *metrics.Metrics,
) *OwnershipService {
	s := &OwnershipService{
		db:      db,
		repos:   repos,
		cache:   db.Cache.Ownership,
		metrics: m,
		log:     logger.New("ownershipService"),
	}

	s.resolvers = map[types.ResourceKind]chainResolver{
		types.ResourceHouse:   s.houseChain,
		types.ResourceFloor:   s.floorChain,
		types.ResourceRoom:    s.roomChain,
		types.ResourceUtility: s.utilityChain,
	}

	return s
}

func (s *OwnershipService) OwnerOf(
	ctx context.Context,
	kind types.ResourceKind,
	id uuid.UUID,
) (uuid.UUID, error) {
	chain, err := s.Chain(ctx, kind, id)
	if err != nil {
		return uuid.Nil, err
	}
	return chain.OwnerID, nil
}

// Chain walks the hops for kind. Any missing hop fails the whole lookup with
// types.ErrNotFound.
func (s *OwnershipService) Chain(
	ctx context.Context,
	kind types.ResourceKind,
	id uuid.UUID,
) (OwnershipChain, error) {
	resolve, ok := s.resolvers[kind]
	if !ok {
		return OwnershipChain{}, fmt.Errorf("%w: %s has no ownership chain", types.ErrValidation, kind)
	}

	return resolve(ctx, appcontext.DB(ctx, s.db.SQL), id)
}

// Invalidate drops the cached hop starting at the given resource.
func (s *OwnershipService) Invalidate(ctx context.Context, kind types.ResourceKind, id uuid.UUID) {
	var hop string
	switch kind {
	case types.ResourceRoom:
		hop = constants.HopRoomFloor
	case types.ResourceFloor:
		hop = constants.HopFloorHouse
	case types.ResourceHouse:
		hop = constants.HopHouseOwner
	case types.ResourceUtility:
		hop = constants.HopUtilityRoom
	default:
		return
	}

	err := database.NewCacheBuilder(s.cache, id).WithContext(ctx).WithHash(hop).Delete()
	s.cacheWarn("failed to invalidate ownership hop", err, "hop", hop, "id", id)
}

func (s *OwnershipService) houseChain(ctx context.Context, tx *gorm.DB, id uuid.UUID) (OwnershipChain, error) {
	var ownerID uuid.UUID
	err := s.hop(ctx, constants.HopHouseOwner, id, &ownerID, func() error {
		var err error
		ownerID, err = s.repos.House.GetOwnerID(ctx, tx, id)
		return err
	})
	if err != nil {
		return OwnershipChain{}, err
	}

	return OwnershipChain{HouseID: id, OwnerID: ownerID}, nil
}

func (s *OwnershipService) floorChain(ctx context.Context, tx *gorm.DB, id uuid.UUID) (OwnershipChain, error) {
	var houseID uuid.UUID
	err := s.hop(ctx, constants.HopFloorHouse, id, &houseID, func() error {
		var err error
		houseID, err = s.repos.Floor.GetHouseID(ctx, tx, id)
		return err
	})
	if err != nil {
		return OwnershipChain{}, err
	}

	chain, err := s.houseChain(ctx, tx, houseID)
	if err != nil {
		return OwnershipChain{}, err
	}
	chain.FloorID = &id
	return chain, nil
}

func (s *OwnershipService) roomChain(ctx context.Context, tx *gorm.DB, id uuid.UUID) (OwnershipChain, error) {
	var parent repositories.RoomParent
	err := s.hop(ctx, constants.HopRoomFloor, id, &parent, func() error {
		var err error
		parent, err = s.repos.Room.GetParent(ctx, tx, id)
		return err
	})
	if err != nil {
		return OwnershipChain{}, err
	}

	chain, err := s.floorChain(ctx, tx, parent.FloorID)
	if err != nil {
		return OwnershipChain{}, err
	}
	chain.RoomID = &id
	chain.RenterID = parent.RenterID
	return chain, nil
}

func (s *OwnershipService) utilityChain(ctx context.Context, tx *gorm.DB, id uuid.UUID) (OwnershipChain, error) {
	var roomID uuid.UUID
	err := s.hop(ctx, constants.HopUtilityRoom, id, &roomID, func() error {
		var err error
		roomID, err = s.repos.Utility.GetRoomID(ctx, tx, id)
		return err
	})
	if err != nil {
		return OwnershipChain{}, err
	}

	chain, err := s.roomChain(ctx, tx, roomID)
	if err != nil {
		return OwnershipChain{}, err
	}
	chain.UtilityID = &id
	return chain, nil
}

// hop reads one parent link through the cache, falling back to load on a miss
// or a cache failure. A successful load is written back.
func (s *OwnershipService) hop(
	ctx context.Context,
	name string,
	id uuid.UUID,
	dest any,
	load func() error,
) error {
	found, err := database.NewCacheBuilder(s.cache, id).
		WithContext(ctx).
		WithHash(name).
		Get(dest)
	s.cacheWarn("failed to read ownership hop", err, "hop", name, "id", id)
	if err == nil {
		s.metrics.OwnershipCache(name, found)
	}
	if found {
		return nil
	}

	if err := load(); err != nil {
		return err
	}

	err = database.NewCacheBuilder(s.cache, id).
		WithContext(ctx).
		WithHash(name).
		WithStruct(dest).
		WithTTL(constants.OwnershipCacheExpiry).
		Set()
	s.cacheWarn("failed to cache ownership hop", err, "hop", name, "id", id)

	return nil
}

func (s *OwnershipService) cacheWarn(msg string, err error, args ...any) {
	if err == nil || errors.Is(err, database.ErrCacheDisabled) {
		return
	}
	s.log.Function("hop").Warn(msg, append(args, "error", err)...)
}
