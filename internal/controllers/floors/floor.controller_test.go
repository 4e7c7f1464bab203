package floorController

import (
	"testing"

	"rentledger/internal/controllers/controllertest"
	"rentledger/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloorLifecycle(t *testing.T) {
	env := controllertest.New(t)
	house, floor, room := env.Property(t, env.Owner, "100.00")
	fc := New(env.Repos, env.Services, env.DB)

	_, err := fc.CreateFloor(env.Ctx, env.Owner, types.CreateFloorRequest{HouseID: house.ID, FloorNumber: 1})
	assert.ErrorIs(t, err, types.ErrConflict)

	_, err = fc.CreateFloor(env.Ctx, env.Other, types.CreateFloorRequest{HouseID: house.ID, FloorNumber: 2})
	assert.ErrorIs(t, err, types.ErrPermissionDenied)

	name := "Attic"
	second, err := fc.CreateFloor(env.Ctx, env.Owner, types.CreateFloorRequest{
		HouseID:     house.ID,
		FloorNumber: 3,
		FloorName:   &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sunrise", second.HouseName)
	assert.Zero(t, second.RoomCount)

	taken := 1
	_, err = fc.UpdateFloor(env.Ctx, env.Owner, second.ID, types.UpdateFloorRequest{FloorNumber: &taken})
	assert.ErrorIs(t, err, types.ErrConflict)

	free := 2
	updated, err := fc.UpdateFloor(env.Ctx, env.Owner, second.ID, types.UpdateFloorRequest{FloorNumber: &free})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.FloorNumber)

	floors, err := fc.ListByHouse(env.Ctx, env.Owner, house.ID)
	require.NoError(t, err)
	require.Len(t, floors, 2)
	assert.Equal(t, 1, floors[0].FloorNumber)
	assert.EqualValues(t, 1, floors[0].RoomCount)
	assert.Equal(t, 2, floors[1].FloorNumber)

	assert.ErrorIs(t, fc.DeleteFloor(env.Ctx, env.Owner, floor.ID), types.ErrConflict)
	require.NoError(t, env.Repos.Room.Delete(env.Ctx, env.DB.SQL, room.ID))
	require.NoError(t, fc.DeleteFloor(env.Ctx, env.Owner, floor.ID))

	mine, err := fc.ListMine(env.Ctx, env.Owner)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
