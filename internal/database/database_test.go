package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valkey-io/valkey-go"
	"gorm.io/gorm"
)

func TestCacheConstants(t *testing.T) {
	assert.Equal(t, 0, GENERAL_CACHE_INDEX)
	assert.Equal(t, 1, USER_CACHE_INDEX)
	assert.Equal(t, 2, OWNERSHIP_CACHE_INDEX)
}

func TestIsUniqueViolation(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, expected: true},
		{name: "wrapped gorm duplicated key", err: fmt.Errorf("create: %w", gorm.ErrDuplicatedKey), expected: true},
		{name: "postgres unique violation", err: &pgconn.PgError{Code: "23505"}, expected: true},
		{name: "postgres foreign key violation", err: &pgconn.PgError{Code: "23503"}, expected: false},
		{name: "sqlite unique constraint", err: errors.New("constraint failed: UNIQUE constraint failed: utilities.room_id, utilities.month (2067)"), expected: true},
		{name: "unrelated", err: errors.New("connection refused"), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsUniqueViolation(tc.err))
		})
	}
}

func TestCacheBuilder_NilClient(t *testing.T) {
	var result string
	found, err := NewCacheBuilder(nil, "key").Get(&result)
	assert.False(t, found)
	assert.ErrorIs(t, err, ErrCacheDisabled)

	assert.ErrorIs(t, NewCacheBuilder(nil, "key").WithValue("v").Set(), ErrCacheDisabled)
	assert.ErrorIs(t, NewCacheBuilder(nil, uuid.New()).Delete(), ErrCacheDisabled)
}

func TestCacheBuilder_KeyComposition(t *testing.T) {
	id := uuid.MustParse("0190a8f2-6b1e-7c3a-9d2e-1f0a2b3c4d5e")
	cb := NewCacheBuilder(nil, id).WithHash("room_floor")
	assert.Equal(t, "room_floor:0190a8f2-6b1e-7c3a-9d2e-1f0a2b3c4d5e", cb.Key())
}

func TestDB_Ping(t *testing.T) {
	ctx := context.Background()

	var empty DB
	assert.Error(t, empty.PingSQL(ctx))
	assert.ErrorIs(t, empty.PingCache(ctx), ErrCacheDisabled)

	sql, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	db := NewFromGorm(sql)
	db.Cache.General = newMiniValkey(t)
	sqlDB, err := sql.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.NoError(t, db.PingSQL(ctx))
	assert.NoError(t, db.PingCache(ctx))
}

func newMiniValkey(t *testing.T) valkey.Client {
	t.Helper()

	server := miniredis.RunT(t)
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:  []string{server.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return client
}

func TestCacheBuilder_RoundTrip(t *testing.T) {
	client := newMiniValkey(t)
	ctx := context.Background()

	type payload struct {
		HouseID string `json:"houseId"`
	}

	err := NewCacheBuilder(client, "abc").
		WithContext(ctx).
		WithHash("floor_house").
		WithStruct(payload{HouseID: "h-1"}).
		WithTTL(time.Minute).
		Set()
	require.NoError(t, err)

	var got payload
	found, err := NewCacheBuilder(client, "abc").WithContext(ctx).WithHash("floor_house").Get(&got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "h-1", got.HouseID)

	require.NoError(t, NewCacheBuilder(client, "abc").WithHash("floor_house").Delete())

	found, err = NewCacheBuilder(client, "abc").WithHash("floor_house").Get(&got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCacheBuilder_SetRequiresValue(t *testing.T) {
	client := newMiniValkey(t)
	assert.Error(t, NewCacheBuilder(client, "abc").Set())
	assert.Error(t, NewCacheBuilder(client, "").WithValue("x").Set())
}
