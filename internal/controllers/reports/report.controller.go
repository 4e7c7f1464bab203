package reportController

import (
	"context"

	"rentledger/internal/database"
	. "rentledger/internal/models"
	"rentledger/internal/repositories"
	"rentledger/internal/services"
	"rentledger/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
)

type Report struct {
	Filename string
	Content  []byte
}

type ReportController struct {
	houseRepo     repositories.HouseRepository
	utilityRepo   repositories.UtilityRepository
	gate          services.AuthorizationGate
	reportService *services.ReportService
	db            database.DB
	log           logger.Logger
}

type ReportControllerInterface interface {
	HouseUtilityReport(ctx context.Context, user *User, houseID uuid.UUID, month string) (*Report, error)
}

func New(repos repositories.Repository, services services.Service, db database.DB) ReportControllerInterface {
	return &ReportController{
		houseRepo:     repos.House,
		utilityRepo:   repos.Utility,
		gate:          services.Authorization,
		reportService: services.Report,
		db:            db,
		log:           logger.New("reportController"),
	}
}

// HouseUtilityReport renders the house's records, optionally for one month,
// as a PDF. Only the owner may export.
func (rc *ReportController) HouseUtilityReport(
	ctx context.Context,
	user *User,
	houseID uuid.UUID,
	month string,
) (*Report, error) {
	log := rc.log.Function("HouseUtilityReport")

	monthFilter, err := types.ParseOptionalMonth(month)
	if err != nil {
		return nil, err
	}

	if err := rc.gate.AssertOwner(ctx, user.ID, types.ResourceHouse, houseID); err != nil {
		return nil, err
	}

	house, err := rc.houseRepo.GetByID(ctx, rc.db.SQL, houseID)
	if err != nil {
		return nil, err
	}

	utilities, err := rc.utilityRepo.ListByHouse(ctx, rc.db.SQL, houseID, monthFilter)
	if err != nil {
		return nil, err
	}

	content, err := rc.reportService.UtilityReport(house, monthFilter, utilities)
	if err != nil {
		return nil, err
	}

	log.Info("utility report generated", "houseID", houseID, "records", len(utilities))
	return &Report{
		Filename: services.ReportFilename(monthFilter),
		Content:  content,
	}, nil
}
