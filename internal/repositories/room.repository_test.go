package repositories_test

import (
	"testing"
	"time"

	"rentledger/internal/models"
	"rentledger/internal/types"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomRepository_GetParent(t *testing.T) {
	f := newFixture(t)

	parent, err := f.repos.Room.GetParent(f.ctx, f.db.SQL, f.room.ID)
	require.NoError(t, err)
	assert.Equal(t, f.floor.ID, parent.FloorID)
	assert.Nil(t, parent.RenterID)

	require.NoError(t, f.repos.Room.SetRenter(f.ctx, f.db.SQL, f.room.ID, &f.renter.ID))

	parent, err = f.repos.Room.GetParent(f.ctx, f.db.SQL, f.room.ID)
	require.NoError(t, err)
	require.NotNil(t, parent.RenterID)
	assert.Equal(t, f.renter.ID, *parent.RenterID)

	_, err = f.repos.Room.GetParent(f.ctx, f.db.SQL, uuid.New())
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestRoomRepository_Listings(t *testing.T) {
	f := newFixture(t)
	second := f.addFloor(t, f.house.ID, 2)
	upstairs := f.addRoom(t, second.ID, "201")
	require.NoError(t, f.repos.Room.SetRenter(f.ctx, f.db.SQL, upstairs.ID, &f.renter.ID))

	rooms, err := f.repos.Room.ListByHouse(f.ctx, f.db.SQL, f.house.ID, false)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, f.room.ID, rooms[0].ID)
	assert.Equal(t, upstairs.ID, rooms[1].ID)

	vacant, err := f.repos.Room.ListByHouse(f.ctx, f.db.SQL, f.house.ID, true)
	require.NoError(t, err)
	require.Len(t, vacant, 1)
	assert.True(t, vacant[0].IsAvailable())

	rented, err := f.repos.Room.ListByRenter(f.ctx, f.db.SQL, f.renter.ID)
	require.NoError(t, err)
	require.Len(t, rented, 1)
	require.NotNil(t, rented[0].Renter)
	assert.Equal(t, f.renter.Email, rented[0].Renter.Email)

	owned, err := f.repos.Room.ListByOwner(f.ctx, f.db.SQL, f.owner.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	count, err := f.repos.Room.CountByHouse(f.ctx, f.db.SQL, f.house.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	count, err = f.repos.Room.CountByFloor(f.ctx, f.db.SQL, second.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestRoomRepository_UpdateMovesFloor(t *testing.T) {
	f := newFixture(t)
	second := f.addFloor(t, f.house.ID, 2)

	room := *f.room
	room.Name = "101A"
	room.FloorID = second.ID
	require.NoError(t, f.repos.Room.Update(f.ctx, f.db.SQL, &room))

	got, err := f.repos.Room.GetByID(f.ctx, f.db.SQL, f.room.ID)
	require.NoError(t, err)
	assert.Equal(t, "101A", got.Name)
	assert.Equal(t, second.ID, got.FloorID)
	require.NotNil(t, got.Floor)
	assert.Equal(t, 2, got.Floor.FloorNumber)
}

func TestRoomRepository_DeleteRemovesUtilities(t *testing.T) {
	f := newFixture(t)
	f.addUtility(t, f.room.ID, month(2024, time.January), 0, 10)

	require.NoError(t, f.repos.Room.Delete(f.ctx, f.db.SQL, f.room.ID))

	var remaining int64
	require.NoError(t, f.db.SQL.Model(&models.Utility{}).Where("room_id = ?", f.room.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)

	assert.ErrorIs(t, f.repos.Room.Delete(f.ctx, f.db.SQL, f.room.ID), types.ErrNotFound)
}
