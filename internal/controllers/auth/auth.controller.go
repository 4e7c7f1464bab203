package authController

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rentledger/internal/database"
	"rentledger/internal/models"
	"rentledger/internal/repositories"
	"rentledger/internal/services"
	"rentledger/internal/types"

	logger "github.com/Bparsons0904/goLogger"
)

// AuthController handles registration and password login
type AuthController struct {
	tokenService    *services.TokenService
	passwordService *services.PasswordService
	userRepo        repositories.UserRepository
	db              database.DB
	log             logger.Logger
}

type AuthControllerInterface interface {
	Register(ctx context.Context, req types.RegisterRequest) (*types.AuthResponse, error)
	Login(ctx context.Context, req types.LoginRequest) (*types.AuthResponse, error)
}

func New(services services.Service, repos repositories.Repository, db database.DB) AuthControllerInterface {
	return &AuthController{
		tokenService:    services.Token,
		passwordService: services.Password,
		userRepo:        repos.User,
		db:              db,
		log:             logger.New("authController"),
	}
}

func (ac *AuthController) Register(
	ctx context.Context,
	req types.RegisterRequest,
) (*types.AuthResponse, error) {
	log := ac.log.Function("Register")

	if err := types.Validate(req); err != nil {
		return nil, err
	}

	hash, err := ac.passwordService.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		PasswordHash: hash,
		Role:         models.Role(req.Role),
	}
	if err := ac.userRepo.Create(ctx, ac.db.SQL, user); err != nil {
		return nil, err
	}

	log.Info("user registered", "userID", user.ID, "role", user.Role)
	return ac.issue(user)
}

// Login accepts either the email address or the phone number as the login.
// Unknown logins and wrong passwords fail identically.
func (ac *AuthController) Login(ctx context.Context, req types.LoginRequest) (*types.AuthResponse, error) {
	log := ac.log.Function("Login")

	if err := types.Validate(req); err != nil {
		return nil, err
	}

	login := strings.TrimSpace(req.Login)
	if strings.Contains(login, "@") {
		login = strings.ToLower(login)
	}

	user, err := ac.userRepo.GetByLogin(ctx, ac.db.SQL, login)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", types.ErrUnauthenticated)
		}
		return nil, err
	}

	if err := ac.passwordService.Compare(user.PasswordHash, req.Password); err != nil {
		log.Info("failed login attempt", "userID", user.ID)
		return nil, err
	}

	return ac.issue(user)
}

func (ac *AuthController) issue(user *models.User) (*types.AuthResponse, error) {
	token, err := ac.tokenService.Issue(user)
	if err != nil {
		return nil, ac.log.Function("issue").Err("failed to issue token", err, "userID", user.ID)
	}

	return &types.AuthResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
		User:        user.ToSummary(),
	}, nil
}
