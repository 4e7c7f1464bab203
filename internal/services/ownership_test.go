package services

import (
	"testing"
	"time"

	"rentledger/internal/database/dbtest"
	"rentledger/internal/metrics"
	"rentledger/internal/models"
	"rentledger/internal/types"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnershipService_OwnerOfEveryKind(t *testing.T) {
	w := newWorld(t, dbtest.New(t))
	utility := w.utility(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 0, 10)
	directory := NewOwnershipService(w.db, w.repos, nil)

	testCases := []struct {
		kind types.ResourceKind
		id   uuid.UUID
	}{
		{types.ResourceHouse, w.house.ID},
		{types.ResourceFloor, w.floor.ID},
		{types.ResourceRoom, w.room.ID},
		{types.ResourceUtility, utility.ID},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			ownerID, err := directory.OwnerOf(w.ctx, tc.kind, tc.id)
			require.NoError(t, err)
			assert.Equal(t, w.owner.ID, ownerID)

			_, err = directory.OwnerOf(w.ctx, tc.kind, uuid.New())
			assert.ErrorIs(t, err, types.ErrNotFound)
		})
	}
}

func TestOwnershipService_Chain(t *testing.T) {
	w := newWorld(t, dbtest.New(t))
	utility := w.utility(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 0, 10)
	directory := NewOwnershipService(w.db, w.repos, nil)

	chain, err := directory.Chain(w.ctx, types.ResourceUtility, utility.ID)
	require.NoError(t, err)
	require.NotNil(t, chain.UtilityID)
	require.NotNil(t, chain.RoomID)
	require.NotNil(t, chain.FloorID)
	require.NotNil(t, chain.RenterID)
	assert.Equal(t, utility.ID, *chain.UtilityID)
	assert.Equal(t, w.room.ID, *chain.RoomID)
	assert.Equal(t, w.floor.ID, *chain.FloorID)
	assert.Equal(t, w.house.ID, chain.HouseID)
	assert.Equal(t, w.owner.ID, chain.OwnerID)
	assert.Equal(t, w.renter.ID, *chain.RenterID)

	chain, err = directory.Chain(w.ctx, types.ResourceHouse, w.house.ID)
	require.NoError(t, err)
	assert.Nil(t, chain.RoomID)
	assert.Nil(t, chain.FloorID)

	_, err = directory.Chain(w.ctx, types.ResourceReport, w.house.ID)
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestOwnershipService_BrokenHopFailsWholeChain(t *testing.T) {
	w := newWorld(t, dbtest.New(t))
	directory := NewOwnershipService(w.db, w.repos, nil)

	orphanFloor := uuid.New()
	require.NoError(t, w.db.SQL.Model(&models.Room{}).
		Where("id = ?", w.room.ID).
		Update("floor_id", orphanFloor).Error)

	_, err := directory.Chain(w.ctx, types.ResourceRoom, w.room.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestOwnershipService_CachesHopsUntilInvalidated(t *testing.T) {
	db, mr := dbtest.NewWithCache(t)
	w := newWorld(t, db)
	m := metrics.New()
	directory := NewOwnershipService(w.db, w.repos, m)

	ownerID, err := directory.OwnerOf(w.ctx, types.ResourceRoom, w.room.ID)
	require.NoError(t, err)
	assert.Equal(t, w.owner.ID, ownerID)
	assert.True(t, mr.Exists("room_floor:"+w.room.ID.String()))
	assert.True(t, mr.Exists("floor_house:"+w.floor.ID.String()))
	assert.True(t, mr.Exists("house_owner:"+w.house.ID.String()))

	second := &models.Floor{FloorNumber: 2, HouseID: w.house.ID}
	require.NoError(t, w.db.SQL.Create(second).Error)
	require.NoError(t, w.db.SQL.Model(&models.Room{}).
		Where("id = ?", w.room.ID).
		Update("floor_id", second.ID).Error)

	chain, err := directory.Chain(w.ctx, types.ResourceRoom, w.room.ID)
	require.NoError(t, err)
	assert.Equal(t, w.floor.ID, *chain.FloorID)

	directory.Invalidate(w.ctx, types.ResourceRoom, w.room.ID)
	assert.False(t, mr.Exists("room_floor:"+w.room.ID.String()))

	chain, err = directory.Chain(w.ctx, types.ResourceRoom, w.room.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, *chain.FloorID)
}

func TestOwnershipService_CacheOutageFallsBackToDatabase(t *testing.T) {
	db, mr := dbtest.NewWithCache(t)
	w := newWorld(t, db)
	directory := NewOwnershipService(w.db, w.repos, nil)

	mr.Close()

	ownerID, err := directory.OwnerOf(w.ctx, types.ResourceRoom, w.room.ID)
	require.NoError(t, err)
	assert.Equal(t, w.owner.ID, ownerID)
}
