package initialize

import (
	"rentledger/config"
	"rentledger/internal/database"

	logger "github.com/Bparsons0904/goLogger"
)

// InitializeTables adds the indexes AutoMigrate cannot express. Safe to run
// repeatedly.
func InitializeTables(db database.DB, config config.Config, log logger.Logger) error {
	log = log.Function("InitializeTables")
	log.Info("Initializing essential production data", "environment", config.Environment)

	if err := db.CreateIndexes(); err != nil {
		return log.Err("failed to create indexes", err)
	}

	log.Info("Table initialization complete")
	return nil
}
