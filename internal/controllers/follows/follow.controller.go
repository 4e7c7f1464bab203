package followController

import (
	"context"
	"fmt"

	"rentledger/internal/database"
	. "rentledger/internal/models"
	"rentledger/internal/repositories"
	"rentledger/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
)

type FollowController struct {
	followRepo repositories.FollowRepository
	userRepo   repositories.UserRepository
	db         database.DB
	log        logger.Logger
}

type FollowControllerInterface interface {
	Follow(ctx context.Context, user *User, targetID uuid.UUID) error
	Unfollow(ctx context.Context, user *User, targetID uuid.UUID) error
	Followers(ctx context.Context, userID uuid.UUID) (*types.FollowListResponse, error)
	Following(ctx context.Context, userID uuid.UUID) (*types.FollowListResponse, error)
}

func New(repos repositories.Repository, db database.DB) FollowControllerInterface {
	return &FollowController{
		followRepo: repos.Follow,
		userRepo:   repos.User,
		db:         db,
		log:        logger.New("followController"),
	}
}

func (fc *FollowController) Follow(ctx context.Context, user *User, targetID uuid.UUID) error {
	log := fc.log.Function("Follow")

	if targetID == user.ID {
		return fmt.Errorf("%w: cannot follow yourself", types.ErrValidation)
	}

	if _, err := fc.userRepo.GetByID(ctx, fc.db.SQL, targetID); err != nil {
		return err
	}

	follow := &UserFollow{FollowerID: user.ID, FollowingID: targetID}
	if err := fc.followRepo.Create(ctx, fc.db.SQL, follow); err != nil {
		return err
	}

	log.Info("user followed", "followerID", user.ID, "followingID", targetID)
	return nil
}

func (fc *FollowController) Unfollow(ctx context.Context, user *User, targetID uuid.UUID) error {
	return fc.followRepo.Delete(ctx, fc.db.SQL, user.ID, targetID)
}

func (fc *FollowController) Followers(ctx context.Context, userID uuid.UUID) (*types.FollowListResponse, error) {
	if _, err := fc.userRepo.GetByID(ctx, fc.db.SQL, userID); err != nil {
		return nil, err
	}

	users, err := fc.followRepo.ListFollowers(ctx, fc.db.SQL, userID)
	if err != nil {
		return nil, err
	}
	return toFollowList(users), nil
}

func (fc *FollowController) Following(ctx context.Context, userID uuid.UUID) (*types.FollowListResponse, error) {
	if _, err := fc.userRepo.GetByID(ctx, fc.db.SQL, userID); err != nil {
		return nil, err
	}

	users, err := fc.followRepo.ListFollowing(ctx, fc.db.SQL, userID)
	if err != nil {
		return nil, err
	}
	return toFollowList(users), nil
}

func toFollowList(users []*User) *types.FollowListResponse {
	summaries := make([]UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, user.ToSummary())
	}
	return &types.FollowListResponse{Users: summaries, Count: len(summaries)}
}
