package database

import (
	"rentledger/internal/models"

	logger "github.com/Bparsons0904/goLogger"
)

// ModelsToMigrate is ordered parents first so foreign keys resolve.
var ModelsToMigrate = []any{
	&models.User{},
	&models.House{},
	&models.Floor{},
	&models.Room{},
	&models.Utility{},
	&models.UserFollow{},
}

// MigrateModels runs GORM AutoMigrate for all models
func (db *DB) MigrateModels() error {
	log := logger.New("database").Function("MigrateModels")
	log.Info("Starting database migration")

	for _, model := range ModelsToMigrate {
		if err := db.SQL.AutoMigrate(model); err != nil {
			return log.Err("Failed to migrate model", err, "model", model)
		}
	}

	log.Info("Database migration completed successfully")
	return nil
}

// CreateIndexes creates additional indexes that GORM doesn't create automatically
func (db *DB) CreateIndexes() error {
	log := logger.New("database").Function("CreateIndexes")
	log.Info("Creating additional database indexes")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_utilities_room_month_desc ON utilities(room_id, month DESC)",
		"CREATE INDEX IF NOT EXISTS idx_utilities_room_unpaid ON utilities(room_id) WHERE is_paid = false",
	}

	for _, indexSQL := range indexes {
		if err := db.SQL.Exec(indexSQL).Error; err != nil {
			log.Warn("Failed to create index", "sql", indexSQL, "error", err)
		}
	}

	log.Info("Additional database indexes created")
	return nil
}
