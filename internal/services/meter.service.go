package services

import (
	"context"

	"rentledger/internal/metrics"
	"rentledger/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReadingSource records where an opening reading came from.
type ReadingSource string

const (
	ReadingSourceSeed    ReadingSource = "seed"
	ReadingSourceZero    ReadingSource = "zero"
	ReadingSourceCarried ReadingSource = "carried"
)

type MeterService struct {
	utilities repositories.UtilityRepository
	metrics   *metrics.Metrics
	log       logger.Logger
}

func NewMeterService(utilities repositories.UtilityRepository, m *metrics.Metrics) *MeterService {
	return &MeterService{
		utilities: utilities,
		metrics:   m,
		log:       logger.New("meterService"),
	}
}

// ResolveOpeningReading returns the closing reading of the room's most recent
// record. Only a room with no records uses the caller's seed, or zero when
// none is given; otherwise the seed is discarded.
func (s *MeterService) ResolveOpeningReading(
	ctx context.Context,
	tx *gorm.DB,
	roomID uuid.UUID,
	callerSuppliedOpening *decimal.Decimal,
) (decimal.Decimal, ReadingSource, error) {
	log := s.log.Function("ResolveOpeningReading")

	latest, err := s.utilities.LatestForRoom(ctx, tx, roomID)
	if err != nil {
		return decimal.Zero, "", err
	}

	var (
		opening decimal.Decimal
		source  ReadingSource
	)
	switch {
	case latest != nil:
		opening, source = latest.NewWater, ReadingSourceCarried
		if callerSuppliedOpening != nil && !callerSuppliedOpening.Equal(latest.NewWater) {
			log.Info(
				"discarding supplied opening reading",
				"roomID", roomID,
				"supplied", callerSuppliedOpening.String(),
				"carried", latest.NewWater.String(),
			)
		}
	case callerSuppliedOpening != nil:
		opening, source = *callerSuppliedOpening, ReadingSourceSeed
	default:
		opening, source = decimal.Zero, ReadingSourceZero
	}

	s.metrics.OpeningReading(string(source))
	log.Debug("resolved opening reading", "roomID", roomID, "source", source, "opening", opening.String())

	return opening, source, nil
}
