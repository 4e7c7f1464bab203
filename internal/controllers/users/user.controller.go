package userController

import (
	"context"

	"rentledger/config"
	"rentledger/internal/database"
	. "rentledger/internal/models"
	"rentledger/internal/repositories"
	"rentledger/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
)

type UserController struct {
	userRepo repositories.UserRepository
	db       database.DB
	Config   config.Config
	log      logger.Logger
}

type UserControllerInterface interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*User, error)
	GetMe(ctx context.Context, user *User) UserSummary
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) UserControllerInterface {
	return &UserController{
		userRepo: repos.User,
		db:       db,
		Config:   config,
		log:      logger.New("userController"),
	}
}

func (uc *UserController) GetUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	return uc.userRepo.GetByID(ctx, uc.db.SQL, userID)
}

func (uc *UserController) GetMe(ctx context.Context, user *User) UserSummary {
	return user.ToSummary()
}
