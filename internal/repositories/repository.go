package repositories

import (
	"errors"
	"fmt"
	"rentledger/internal/database"
	"rentledger/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type Repository struct {
	User    UserRepository
	House   HouseRepository
	Floor   FloorRepository
	Room    RoomRepository
	Utility UtilityRepository
	Follow  FollowRepository
}

func New(db database.DB) Repository {
	return Repository{
		User:    NewUserRepository(db.Cache.User),
		House:   NewHouseRepository(),
		Floor:   NewFloorRepository(),
		Room:    NewRoomRepository(),
		Utility: NewUtilityRepository(),
		Follow:  NewFollowRepository(),
	}
}

// notFoundOr converts gorm.ErrRecordNotFound into types.ErrNotFound and logs
// anything else as a real failure.
func notFoundOr(log logger.Logger, err error, kind types.ResourceKind, msg string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", types.ErrNotFound, kind)
	}
	return log.Err(msg, err, args...)
}

// cacheWarn logs cache failures except when no cache is configured.
func cacheWarn(log logger.Logger, msg string, err error, args ...any) {
	if err == nil || errors.Is(err, database.ErrCacheDisabled) {
		return
	}
	log.Warn(msg, append(args, "error", err)...)
}
