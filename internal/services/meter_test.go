package services

import (
	"testing"
	"time"

	"rentledger/internal/database/dbtest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeterService_ResolveOpeningReading(t *testing.T) {
	w := newWorld(t, dbtest.New(t))
	meter := NewMeterService(w.repos.Utility, nil)

	opening, source, err := meter.ResolveOpeningReading(w.ctx, w.db.SQL, w.room.ID, nil)
	require.NoError(t, err)
	assert.True(t, opening.IsZero())
	assert.Equal(t, ReadingSourceZero, source)

	seed := decimal.NewFromInt(42)
	opening, source, err = meter.ResolveOpeningReading(w.ctx, w.db.SQL, w.room.ID, &seed)
	require.NoError(t, err)
	assert.True(t, opening.Equal(seed))
	assert.Equal(t, ReadingSourceSeed, source)

	w.utility(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 0, 50)
	w.utility(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), 0, 20)

	opening, source, err = meter.ResolveOpeningReading(w.ctx, w.db.SQL, w.room.ID, &seed)
	require.NoError(t, err)
	assert.True(t, opening.Equal(decimal.NewFromInt(50)), "opening %s", opening)
	assert.Equal(t, ReadingSourceCarried, source)
}
