package repositories

import (
	"context"
	"fmt"

	"rentledger/internal/constants"
	"rentledger/internal/database"
	. "rentledger/internal/models"
	"rentledger/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*User, error)
	GetByLogin(ctx context.Context, tx *gorm.DB, login string) (*User, error)
	Create(ctx context.Context, tx *gorm.DB, user *User) error
	ClearUserCache(ctx context.Context, id uuid.UUID)
}

type userRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewUserRepository(cache database.CacheClient) UserRepository {
	return &userRepository{
		cache: cache,
		log:   logger.New("userRepository"),
	}
}

func (r *userRepository) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*User, error) {
	log := r.log.Function("GetByID")

	var user User
	found, err := database.NewCacheBuilder(r.cache, id).
		WithContext(ctx).
		WithHash(constants.UserCachePrefix).
		Get(&user)
	cacheWarn(log, "failed to get user from cache", err, "userID", id)
	if found {
		return &user, nil
	}

	if err := tx.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(log, err, "user", "failed to get user by id", "userID", id)
	}

	err = database.NewCacheBuilder(r.cache, id).
		WithContext(ctx).
		WithHash(constants.UserCachePrefix).
		WithStruct(user).
		WithTTL(constants.UserCacheExpiry).
		Set()
	cacheWarn(log, "failed to add user to cache", err, "userID", id)

	return &user, nil
}

// GetByLogin matches either the email address or the phone number.
func (r *userRepository) GetByLogin(ctx context.Context, tx *gorm.DB, login string) (*User, error) {
	log := r.log.Function("GetByLogin")

	var user User
	if err := tx.WithContext(ctx).
		Where("email = ? OR phone_number = ?", login, login).
		First(&user).Error; err != nil {
		return nil, notFoundOr(log, err, "user", "failed to get user by login")
	}

	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, tx *gorm.DB, user *User) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(user).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: email or phone number already registered", types.ErrConflict)
		}
		return log.Err("failed to create user", err, "email", user.Email)
	}

	return nil
}

func (r *userRepository) ClearUserCache(ctx context.Context, id uuid.UUID) {
	err := database.NewCacheBuilder(r.cache, id).
		WithContext(ctx).
		WithHash(constants.UserCachePrefix).
		Delete()
	cacheWarn(r.log.Function("ClearUserCache"), "failed to clear user cache", err, "userID", id)
}
