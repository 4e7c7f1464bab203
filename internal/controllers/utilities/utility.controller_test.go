package utilityController

import (
	"encoding/json"
	"testing"

	"rentledger/internal/controllers/controllertest"
	"rentledger/internal/models"
	"rentledger/internal/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*controllertest.Env, UtilityControllerInterface, *models.House, *models.Room) {
	t.Helper()
	env := controllertest.New(t)
	house, _, room := env.Property(t, env.Owner, "100.00")
	uc := New(env.Repos, env.Services, env.Config, env.DB)
	return env, uc, house, room
}

func reading(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestCreateUtility_CarryForwardScenario(t *testing.T) {
	env, uc, _, room := setup(t)

	first, err := uc.CreateUtility(env.Ctx, env.Owner, types.CreateUtilityRequest{
		RoomID:   room.ID,
		Month:    "2024-01",
		NewWater: reading(50),
	})
	require.NoError(t, err)
	assert.Equal(t, "0", first.OldWater)
	assert.Equal(t, "50", first.NewWater)
	assert.Equal(t, "100.00", first.RoomCost)
	assert.Equal(t, "250000.00", first.WaterCost)
	assert.Equal(t, "250100.00", first.TotalCost)
	assert.Equal(t, "2024-01", first.Month)
	assert.Equal(t, "101", first.RoomName)
	assert.Equal(t, "Sunrise", first.HouseName)
	assert.False(t, first.IsPaid)

	override := reading(999)
	second, err := uc.CreateUtility(env.Ctx, env.Owner, types.CreateUtilityRequest{
		RoomID:   room.ID,
		Month:    "2024-02",
		OldWater: override,
		NewWater: reading(70),
	})
	require.NoError(t, err)
	assert.Equal(t, "50", second.OldWater)
	assert.Equal(t, "20", second.WaterUsage)
	assert.Equal(t, "100000.00", second.WaterCost)
	assert.Equal(t, "100100.00", second.TotalCost)
}

func TestCreateUtility_FirstRecordHonoursSeed(t *testing.T) {
	env, uc, _, room := setup(t)

	seed := reading(40)
	created, err := uc.CreateUtility(env.Ctx, env.Owner, types.CreateUtilityRequest{
		RoomID:   room.ID,
		Month:    "2024-01",
		OldWater: seed,
		NewWater: reading(45),
	})
	require.NoError(t, err)
	assert.Equal(t, "40", created.OldWater)
	assert.Equal(t, "25000.00", created.WaterCost)
}

func TestCreateUtility_ClosingBelowCarriedOpening(t *testing.T) {
	env, uc, _, room := setup(t)

	_, err := uc.CreateUtility(env.Ctx, env.Owner, types.CreateUtilityRequest{
		RoomID: room.ID, Month: "2024-01", NewWater: reading(50),
	})
	require.NoError(t, err)

	_, err = uc.CreateUtility(env.Ctx, env.Owner, types.CreateUtilityRequest{
		RoomID: room.ID, Month: "2024-02", NewWater: reading(30),
	})
	assert.ErrorIs(t, err, types.ErrInvalidReading)

	records, err := uc.ListByRoom(env.Ctx, env.Owner, room.ID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCreateUtility_DuplicateMonthRejected(t *testing.T) {
	env, uc, _, room := setup(t)

	_, err := uc.CreateUtility(env.Ctx, env.Owner, types.CreateUtilityRequest{
		RoomID: room.ID, Month: "2024-01", NewWater: reading(10),
	})
	require.NoError(t, err)

	_, err = uc.CreateUtility(env.Ctx, env.Owner, types.CreateUtilityRequest{
		RoomID: room.ID, Month: "2024-01-20", NewWater: reading(20),
	})
	assert.ErrorIs(t, err, types.ErrDuplicateRecord)
}

func TestCreateUtility_Validation(t *testing.T) {
	env, uc, _, room := setup(t)

	_, err := uc.CreateUtility(env.Ctx, env.Owner, types.CreateUtilityRequest{
		Month: "2024-01", NewWater: reading(10),
	})
	assert.ErrorIs(t, err, types.ErrValidation)

	_, err = uc.CreateUtility(env.Ctx, env.Owner, types.CreateUtilityRequest{
		RoomID: room.ID, Month: "January", NewWater: reading(10),
	})
	assert.ErrorIs(t, err, types.ErrValidation)

	_, err = uc.CreateUtility(env.Ctx, env.Owner, types.CreateUtilityRequest{
		RoomID: uuid.New(), Month: "2024-01", NewWater: reading(10),
	})
	assert.ErrorIs(t, err, types.ErrNotFound)

	var missingClosing types.CreateUtilityRequest
	require.NoError(t, json.Unmarshal([]byte(`{"roomId":"`+room.ID.String()+`","month":"2024-01"}`), &missingClosing))
	_, err = uc.CreateUtility(env.Ctx, env.Owner, missingClosing)
	assert.ErrorIs(t, err, types.ErrValidation)

	records, err := uc.ListByRoom(env.Ctx, env.Owner, room.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestUtilityMutations_RequireOwnership(t *testing.T) {
	env, uc, _, room := setup(t)

	created, err := uc.CreateUtility(env.Ctx, env.Owner, types.CreateUtilityRequest{
		RoomID: room.ID, Month: "2024-01", NewWater: reading(10),
	})
	require.NoError(t, err)

	for _, actor := range []*models.User{env.Other, env.Renter, env.Admin} {
		t.Run(string(actor.Role)+"/"+actor.Email, func(t *testing.T) {
			_, err := uc.CreateUtility(env.Ctx, actor, types.CreateUtilityRequest{
				RoomID: room.ID, Month: "2024-02", NewWater: reading(20),
			})
			assert.ErrorIs(t, err, types.ErrPermissionDenied)

			_, err = uc.MarkPaid(env.Ctx, actor, created.ID, true)
			assert.ErrorIs(t, err, types.ErrPermissionDenied)

			err = uc.DeleteUtility(env.Ctx, actor, created.ID)
			assert.ErrorIs(t, err, types.ErrPermissionDenied)
		})
	}

	got, err := uc.GetUtility(env.Ctx, env.Owner, created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPaid)
}

func TestMarkPaid_Idempotent(t *testing.T) {
	env, uc, _, room := setup(t)

	created, err := uc.CreateUtility(env.Ctx, env.Owner, types.CreateUtilityRequest{
		RoomID: room.ID, Month: "2024-01", NewWater: reading(10),
	})
	require.NoError(t, err)

	for range 2 {
		paid, err := uc.MarkPaid(env.Ctx, env.Owner, created.ID, true)
		require.NoError(t, err)
		assert.True(t, paid.IsPaid)
		assert.Equal(t, created.TotalCost, paid.TotalCost)
	}

	unpaid, err := uc.MarkPaid(env.Ctx, env.Owner, created.ID, false)
	require.NoError(t, err)
	assert.False(t, unpaid.IsPaid)
}

func TestDeleteUtility_DoesNotRederiveLaterRecords(t *testing.T) {
	env, uc, _, room := setup(t)

	jan, err := uc.CreateUtility(env.Ctx, env.Owner, types.CreateUtilityRequest{
		RoomID: room.ID, Month: "2024-01", NewWater: reading(50),
	})
	require.NoError(t, err)
	feb, err := uc.CreateUtility(env.Ctx, env.Owner, types.CreateUtilityRequest{
		RoomID: room.ID, Month: "2024-02", NewWater: reading(70),
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteUtility(env.Ctx, env.Owner, jan.ID))

	_, err = uc.GetUtility(env.Ctx, env.Owner, jan.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	got, err := uc.GetUtility(env.Ctx, env.Owner, feb.ID)
	require.NoError(t, err)
	assert.Equal(t, "50", got.OldWater)
}

func TestUtilityReads_Gated(t *testing.T) {
	env, uc, house, room := setup(t)
	require.NoError(t, env.Repos.Room.SetRenter(env.Ctx, env.DB.SQL, room.ID, &env.Renter.ID))

	latest, err := uc.LatestForRoom(env.Ctx, env.Owner, room.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	created, err := uc.CreateUtility(env.Ctx, env.Owner, types.CreateUtilityRequest{
		RoomID: room.ID, Month: "2024-01", NewWater: reading(10),
	})
	require.NoError(t, err)

	_, err = uc.GetUtility(env.Ctx, env.Renter, created.ID)
	assert.NoError(t, err)

	_, err = uc.GetUtility(env.Ctx, env.Admin, created.ID)
	assert.NoError(t, err)

	_, err = uc.GetUtility(env.Ctx, env.Other, created.ID)
	assert.ErrorIs(t, err, types.ErrPermissionDenied)

	_, err = uc.ListByHouse(env.Ctx, env.Other, house.ID, "")
	assert.ErrorIs(t, err, types.ErrPermissionDenied)

	latest, err = uc.LatestForRoom(env.Ctx, env.Renter, room.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, created.ID, latest.ID)

	unpaid, err := uc.ListUnpaid(env.Ctx, env.Renter, room.ID)
	require.NoError(t, err)
	assert.Len(t, unpaid, 1)
}

func TestListByMonth_ScopedToCaller(t *testing.T) {
	env, uc, _, room := setup(t)
	_, _, foreignRoom := env.Property(t, env.Other, "80.00")
	require.NoError(t, env.Repos.Room.SetRenter(env.Ctx, env.DB.SQL, room.ID, &env.Renter.ID))

	_, err := uc.CreateUtility(env.Ctx, env.Owner, types.CreateUtilityRequest{
		RoomID: room.ID, Month: "2024-03", NewWater: reading(10),
	})
	require.NoError(t, err)
	_, err = uc.CreateUtility(env.Ctx, env.Other, types.CreateUtilityRequest{
		RoomID: foreignRoom.ID, Month: "2024-03", NewWater: reading(5),
	})
	require.NoError(t, err)

	testCases := []struct {
		name  string
		user  *models.User
		count int
	}{
		{"owner sees own houses", env.Owner, 1},
		{"other owner sees own houses", env.Other, 1},
		{"renter sees rented rooms", env.Renter, 1},
		{"admin sees everything", env.Admin, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := uc.ListByMonth(env.Ctx, tc.user, "2024-03")
			require.NoError(t, err)
			assert.Len(t, records, tc.count)
		})
	}

	records, err := uc.ListByMonth(env.Ctx, env.Admin, "2024-04")
	require.NoError(t, err)
	assert.Empty(t, records)

	mine, err := uc.ListMine(env.Ctx, env.Renter, "")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
