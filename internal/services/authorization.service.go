package services

import (
	"context"
	"fmt"

	appcontext "rentledger/internal/context"
	"rentledger/internal/database"
	"rentledger/internal/metrics"
	"rentledger/internal/repositories"
	"rentledger/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
)

type AuthorizationGate interface {
	AssertOwner(ctx context.Context, actingUserID uuid.UUID, kind types.ResourceKind, id uuid.UUID) error
	AssertViewer(ctx context.Context, actingUserID uuid.UUID, kind types.ResourceKind, id uuid.UUID) error
	AssertMove(
		ctx context.Context,
		actingUserID uuid.UUID,
		currentKind types.ResourceKind,
		currentID uuid.UUID,
		targetKind types.ResourceKind,
		targetID uuid.UUID,
	) error
}

type AuthorizationService struct {
	db        database.DB
	directory OwnershipDirectory
	users     repositories.UserRepository
	metrics   *metrics.Metrics
	log       logger.Logger
}

func NewAuthorizationService(
	db database.DB,
	directory OwnershipDirectory,
	users repositories.UserRepository,
	m *metrics.Metrics,
) *AuthorizationService {
	return &AuthorizationService{
		db:        db,
		directory: directory,
		users:     users,
		metrics:   m,
		log:       logger.New("authorizationService"),
	}
}

// AssertOwner succeeds silently when actingUserID owns the house at the top
// of the resource's chain. Missing resources surface as types.ErrNotFound.
func (s *AuthorizationService) AssertOwner(
	ctx context.Context,
	actingUserID uuid.UUID,
	kind types.ResourceKind,
	id uuid.UUID,
) error {
	ownerID, err := s.directory.OwnerOf(ctx, kind, id)
	if err != nil {
		return err
	}

	if ownerID != actingUserID {
		return s.deny(actingUserID, kind, id)
	}

	return nil
}

// AssertViewer admits the owner, the current renter of a room or utility in
// the chain, and administrators.
func (s *AuthorizationService) AssertViewer(
	ctx context.Context,
	actingUserID uuid.UUID,
	kind types.ResourceKind,
	id uuid.UUID,
) error {
	log := s.log.Function("AssertViewer")

	chain, err := s.directory.Chain(ctx, kind, id)
	if err != nil {
		return err
	}

	if chain.OwnerID == actingUserID {
		return nil
	}
	if chain.RenterID != nil && *chain.RenterID == actingUserID {
		return nil
	}

	user, err := s.users.GetByID(ctx, appcontext.DB(ctx, s.db.SQL), actingUserID)
	if err != nil {
		log.Warn("failed to load acting user", "userID", actingUserID, "error", err)
		return s.deny(actingUserID, kind, id)
	}
	if user.IsAdmin() {
		return nil
	}

	return s.deny(actingUserID, kind, id)
}

// AssertMove checks ownership of both the current and the target parent.
func (s *AuthorizationService) AssertMove(
	ctx context.Context,
	actingUserID uuid.UUID,
	currentKind types.ResourceKind,
	currentID uuid.UUID,
	targetKind types.ResourceKind,
	targetID uuid.UUID,
) error {
	if err := s.AssertOwner(ctx, actingUserID, currentKind, currentID); err != nil {
		return err
	}
	return s.AssertOwner(ctx, actingUserID, targetKind, targetID)
}

func (s *AuthorizationService) deny(actingUserID uuid.UUID, kind types.ResourceKind, id uuid.UUID) error {
	s.metrics.AuthorizationDenied(kind.String())
	return fmt.Errorf("%w: user %s on %s %s", types.ErrPermissionDenied, actingUserID, kind, id)
}
