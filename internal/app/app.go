package app

import (
	"rentledger/config"
	"rentledger/internal/controllers"
	"rentledger/internal/database"
	"rentledger/internal/handlers/middleware"
	"rentledger/internal/metrics"
	"rentledger/internal/repositories"
	"rentledger/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

type App struct {
	Database    database.DB
	Config      config.Config
	Metrics     *metrics.Metrics
	Middleware  middleware.Middleware
	Repos       repositories.Repository
	Services    services.Service
	Controllers controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.New()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	app, err := Build(config, db, metrics.New())
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Er("failed to close database", closeErr)
		}
		return &App{}, err
	}

	return app, nil
}

// Build wires repositories, services, controllers and middleware over an
// already opened database.
func Build(config config.Config, db database.DB, m *metrics.Metrics) (*App, error) {
	log := logger.New("app").Function("Build")

	repos := repositories.New(db)

	svc, err := services.New(db, repos, config, m)
	if err != nil {
		return &App{}, log.Err("failed to create services", err)
	}

	app := &App{
		Database:    db,
		Config:      config,
		Metrics:     m,
		Middleware:  middleware.New(db, config, repos, svc),
		Repos:       repos,
		Services:    svc,
		Controllers: controllers.New(svc, repos, config, db),
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config.JWTSecret == "" {
		return log.ErrMsg("config is missing JWT secret")
	}

	nilChecks := map[string]any{
		"metrics":       a.Metrics,
		"transaction":   a.Services.Transaction,
		"ownership":     a.Services.Ownership,
		"authorization": a.Services.Authorization,
		"policy":        a.Services.Policy,
		"token":         a.Services.Token,
		"utility":       a.Controllers.Utility,
		"report":        a.Controllers.Report,
	}

	for name, check := range nilChecks {
		if check == nil {
			return log.Error("nil check failed", "component", name)
		}
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}
