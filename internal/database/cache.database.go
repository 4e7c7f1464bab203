package database

import (
	"context"
	"fmt"
	"time"
	"rentledger/config"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/valkey-io/valkey-go"
)

// Valkey database index per cache category.
const (
	// GENERAL_CACHE_INDEX (DB 0) - miscellaneous
	GENERAL_CACHE_INDEX = iota

	// USER_CACHE_INDEX (DB 1) - user profiles keyed by id
	USER_CACHE_INDEX

	// OWNERSHIP_CACHE_INDEX (DB 2) - resolved parent hops of the ownership chain
	OWNERSHIP_CACHE_INDEX
)

func (s *DB) initializeCacheDB(config config.Config) error {
	log := s.log.Function("initializeCacheDB")
	log.Info("initializing cache database")

	address := config.DatabaseCacheAddress
	port := config.DatabaseCachePort
	if address == "" || port == 0 {
		return log.ErrMsg("failed to initialize cache database: address or port is empty")
	}

	initAddress := []string{fmt.Sprintf("%s:%d", address, port)}

	var cacheDB Cache
	clients := []struct {
		target *CacheClient
		index  int
		name   string
	}{
		{&cacheDB.General, GENERAL_CACHE_INDEX, "general"},
		{&cacheDB.User, USER_CACHE_INDEX, "user"},
		{&cacheDB.Ownership, OWNERSHIP_CACHE_INDEX, "ownership"},
	}

	for _, c := range clients {
		client, err := valkey.NewClient(valkey.ClientOption{
			InitAddress: initAddress,
			SelectDB:    c.index,
		})
		if err != nil {
			return log.Err("failed to create valkey client", err, "cache", c.name)
		}
		*c.target = client
	}

	s.Cache = cacheDB

	if config.DatabaseCacheReset != -1 {
		go clearCacheDB(config.DatabaseCacheReset, cacheDB)
	}

	return nil
}

func clearCacheDB(index int, cacheDB Cache) {
	log := logger.New("database").File("cache.database").Function("clearCacheDB")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var client CacheClient
	var dbName string

	switch index {
	case GENERAL_CACHE_INDEX:
		client = cacheDB.General
		dbName = "General"
	case USER_CACHE_INDEX:
		client = cacheDB.User
		dbName = "User"
	case OWNERSHIP_CACHE_INDEX:
		client = cacheDB.Ownership
		dbName = "Ownership"
	default:
		log.Warn("Invalid cache database index", "index", index)
		return
	}

	if err := client.Do(ctx, client.B().Flushdb().Build()).Error(); err != nil {
		log.Er("Failed to clear cache database", err, "index", index, "dbName", dbName)
		return
	}

	log.Info("Successfully cleared cache database", "index", index, "dbName", dbName)
}
