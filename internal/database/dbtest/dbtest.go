// Package dbtest opens throwaway databases for package tests.
package dbtest

import (
	"testing"
	"time"

	"rentledger/internal/database"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/valkey-io/valkey-go"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// New returns an in-memory SQLite database with every model migrated and no
// cache clients attached.
func New(t *testing.T) database.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(0)"
	sql, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	if err := sql.AutoMigrate(database.ModelsToMigrate...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	sqlDB, err := sql.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	return database.NewFromGorm(sql)
}

// NewWithCache is New plus miniredis-backed valkey clients for every cache.
func NewWithCache(t *testing.T) (database.DB, *miniredis.Miniredis) {
	t.Helper()

	db := New(t)
	mr := miniredis.RunT(t)

	newClient := func() database.CacheClient {
		client, err := valkey.NewClient(valkey.ClientOption{
			InitAddress:  []string{mr.Addr()},
			DisableCache: true,
		})
		if err != nil {
			t.Fatalf("failed to create valkey client: %v", err)
		}
		t.Cleanup(client.Close)
		return client
	}

	db.Cache = database.Cache{
		General:   newClient(),
		User:      newClient(),
		Ownership: newClient(),
	}

	return db, mr
}
