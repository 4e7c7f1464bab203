package repositories_test

import (
	"testing"

	"rentledger/internal/models"
	"rentledger/internal/types"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHouseRepository_OwnerAndUpdate(t *testing.T) {
	f := newFixture(t)

	ownerID, err := f.repos.House.GetOwnerID(f.ctx, f.db.SQL, f.house.ID)
	require.NoError(t, err)
	assert.Equal(t, f.owner.ID, ownerID)

	image := "https://img.example.com/h.png"
	update := *f.house
	update.Name = "Sunset"
	update.Image = &image
	require.NoError(t, f.repos.House.Update(f.ctx, f.db.SQL, &update))

	got, err := f.repos.House.GetByID(f.ctx, f.db.SQL, f.house.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunset", got.Name)
	require.NotNil(t, got.Image)
	assert.Equal(t, image, *got.Image)

	_, err = f.repos.House.GetOwnerID(f.ctx, f.db.SQL, uuid.New())
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestHouseRepository_ListByOwner(t *testing.T) {
	f := newFixture(t)
	f.addHouse(t, f.owner.ID, "Alpha")
	other := f.user(t, "other@example.com", "0900000003", models.RoleHouseOwner)
	f.addHouse(t, other.ID, "Elsewhere")

	houses, err := f.repos.House.ListByOwner(f.ctx, f.db.SQL, f.owner.ID)
	require.NoError(t, err)
	require.Len(t, houses, 2)
	assert.Equal(t, "Alpha", houses[0].Name)
	assert.Equal(t, "Sunrise", houses[1].Name)
}

func TestFloorRepository_UniqueNumberPerHouse(t *testing.T) {
	f := newFixture(t)

	err := f.repos.Floor.Create(f.ctx, f.db.SQL, &models.Floor{FloorNumber: 1, HouseID: f.house.ID})
	assert.ErrorIs(t, err, types.ErrConflict)

	exists, err := f.repos.Floor.ExistsByHouseAndNumber(f.ctx, f.db.SQL, f.house.ID, 1)
	require.NoError(t, err)
	assert.True(t, exists)

	other := f.addHouse(t, f.owner.ID, "Second")
	f.addFloor(t, other.ID, 1)

	houseID, err := f.repos.Floor.GetHouseID(f.ctx, f.db.SQL, f.floor.ID)
	require.NoError(t, err)
	assert.Equal(t, f.house.ID, houseID)

	floors, err := f.repos.Floor.ListByOwner(f.ctx, f.db.SQL, f.owner.ID)
	require.NoError(t, err)
	assert.Len(t, floors, 2)
}

func TestFollowRepository_Edges(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.repos.Follow.Create(f.ctx, f.db.SQL, &models.UserFollow{
		FollowerID:  f.renter.ID,
		FollowingID: f.owner.ID,
	}))

	err := f.repos.Follow.Create(f.ctx, f.db.SQL, &models.UserFollow{
		FollowerID:  f.renter.ID,
		FollowingID: f.owner.ID,
	})
	assert.ErrorIs(t, err, types.ErrConflict)

	followers, err := f.repos.Follow.ListFollowers(f.ctx, f.db.SQL, f.owner.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, f.renter.ID, followers[0].ID)

	following, err := f.repos.Follow.ListFollowing(f.ctx, f.db.SQL, f.renter.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, f.owner.ID, following[0].ID)

	require.NoError(t, f.repos.Follow.Delete(f.ctx, f.db.SQL, f.renter.ID, f.owner.ID))
	assert.ErrorIs(t, f.repos.Follow.Delete(f.ctx, f.db.SQL, f.renter.ID, f.owner.ID), types.ErrNotFound)
}
