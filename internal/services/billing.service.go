package services

import (
	"fmt"

	"rentledger/internal/types"

	"github.com/shopspring/decimal"
)

// Costs is the derived money side of a utility record.
type Costs struct {
	Usage     decimal.Decimal
	RoomCost  decimal.Decimal
	WaterCost decimal.Decimal
	TotalCost decimal.Decimal
}

// ComputeCosts is pure: no rounding happens here, callers format with
// StringFixed(2) for display.
func ComputeCosts(opening, closing, fixedRoomRate, waterRatePerUnit decimal.Decimal) (Costs, error) {
	switch {
	case opening.IsNegative():
		return Costs{}, fmt.Errorf("%w: opening reading %s is negative", types.ErrInvalidReading, opening)
	case closing.IsNegative():
		return Costs{}, fmt.Errorf("%w: closing reading %s is negative", types.ErrInvalidReading, closing)
	case closing.LessThan(opening):
		return Costs{}, fmt.Errorf(
			"%w: closing reading %s is below opening reading %s",
			types.ErrInvalidReading,
			closing,
			opening,
		)
	case fixedRoomRate.IsNegative():
		return Costs{}, fmt.Errorf("%w: room rate %s is negative", types.ErrInvalidReading, fixedRoomRate)
	case waterRatePerUnit.IsNegative():
		return Costs{}, fmt.Errorf("%w: water rate %s is negative", types.ErrInvalidReading, waterRatePerUnit)
	}

	usage := closing.Sub(opening)
	waterCost := decimal.Zero
	if !usage.IsZero() {
		waterCost = usage.Mul(waterRatePerUnit)
	}

	return Costs{
		Usage:     usage,
		RoomCost:  fixedRoomRate,
		WaterCost: waterCost,
		TotalCost: fixedRoomRate.Add(waterCost),
	}, nil
}
