package middleware

import (
	"rentledger/config"
	"rentledger/internal/database"
	"rentledger/internal/metrics"
	"rentledger/internal/repositories"
	"rentledger/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

type Middleware struct {
	DB       database.DB
	Config   config.Config
	userRepo repositories.UserRepository
	tokens   *services.TokenService
	policy   *services.PolicyService
	metrics  *metrics.Metrics
	log      logger.Logger
}

func New(
	db database.DB,
	config config.Config,
	repos repositories.Repository,
	services services.Service,
) Middleware {
	return Middleware{
		DB:       db,
		Config:   config,
		userRepo: repos.User,
		tokens:   services.Token,
		policy:   services.Policy,
		metrics:  services.Metrics,
		log:      logger.New("middleware"),
	}
}
