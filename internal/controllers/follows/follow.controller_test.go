package followController

import (
	"testing"

	"rentledger/internal/controllers/controllertest"
	"rentledger/internal/types"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowFlow(t *testing.T) {
	env := controllertest.New(t)
	fc := New(env.Repos, env.DB)

	assert.ErrorIs(t, fc.Follow(env.Ctx, env.Renter, env.Renter.ID), types.ErrValidation)
	assert.ErrorIs(t, fc.Follow(env.Ctx, env.Renter, uuid.New()), types.ErrNotFound)

	require.NoError(t, fc.Follow(env.Ctx, env.Renter, env.Owner.ID))
	assert.ErrorIs(t, fc.Follow(env.Ctx, env.Renter, env.Owner.ID), types.ErrConflict)
	require.NoError(t, fc.Follow(env.Ctx, env.Other, env.Owner.ID))

	followers, err := fc.Followers(env.Ctx, env.Owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, followers.Count)

	following, err := fc.Following(env.Ctx, env.Renter.ID)
	require.NoError(t, err)
	require.Equal(t, 1, following.Count)
	assert.Equal(t, env.Owner.ID.String(), following.Users[0].ID)

	require.NoError(t, fc.Unfollow(env.Ctx, env.Renter, env.Owner.ID))
	assert.ErrorIs(t, fc.Unfollow(env.Ctx, env.Renter, env.Owner.ID), types.ErrNotFound)

	followers, err = fc.Followers(env.Ctx, env.Owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, followers.Count)
}
