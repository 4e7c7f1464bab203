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

type FollowRepository interface {
	Create(ctx context.Context, tx *gorm.DB, follow *UserFollow) error
	Delete(ctx context.Context, tx *gorm.DB, followerID, followingID uuid.UUID) error
	Exists(ctx context.Context, tx *gorm.DB, followerID, followingID uuid.UUID) (bool, error)
	ListFollowers(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*User, error)
	ListFollowing(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*User, error)
}

type followRepository struct {
	log logger.Logger
}

func NewFollowRepository() FollowRepository {
	return &followRepository{
		log: logger.New("followRepository"),
	}
}

func (r *followRepository) Create(ctx context.Context, tx *gorm.DB, follow *UserFollow) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Omit("Follower", "Following").Create(follow).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: already following user %s", types.ErrConflict, follow.FollowingID)
		}
		return log.Err(
			"failed to create follow",
			err,
			"followerID", follow.FollowerID,
			"followingID", follow.FollowingID,
		)
	}

	return nil
}

func (r *followRepository) Delete(
	ctx context.Context,
	tx *gorm.DB,
	followerID, followingID uuid.UUID,
) error {
	log := r.log.Function("Delete")

	result := tx.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&UserFollow{})
	if result.Error != nil {
		return log.Err("failed to delete follow", result.Error, "followerID", followerID, "followingID", followingID)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s is not following %s", types.ErrNotFound, followerID, followingID)
	}

	return nil
}

func (r *followRepository) Exists(
	ctx context.Context,
	tx *gorm.DB,
	followerID, followingID uuid.UUID,
) (bool, error) {
	log := r.log.Function("Exists")

	var count int64
	if err := tx.WithContext(ctx).
		Model(&UserFollow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, log.Err("failed to check follow", err, "followerID", followerID, "followingID", followingID)
	}

	return count > 0, nil
}

func (r *followRepository) ListFollowers(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
) ([]*User, error) {
	log := r.log.Function("ListFollowers")

	users := []*User{}
	if err := tx.WithContext(ctx).
		Joins("JOIN user_follows ON user_follows.follower_id = users.id").
		Where("user_follows.following_id = ?", userID).
		Order("user_follows.created_at DESC").
		Find(&users).Error; err != nil {
		return nil, log.Err("failed to list followers", err, "userID", userID)
	}

	return users, nil
}

func (r *followRepository) ListFollowing(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
) ([]*User, error) {
	log := r.log.Function("ListFollowing")

	users := []*User{}
	if err := tx.WithContext(ctx).
		Joins("JOIN user_follows ON user_follows.following_id = users.id").
		Where("user_follows.follower_id = ?", userID).
		Order("user_follows.created_at DESC").
		Find(&users).Error; err != nil {
		return nil, log.Err("failed to list following", err, "userID", userID)
	}

	return users, nil
}
