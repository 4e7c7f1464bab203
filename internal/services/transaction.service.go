package services

import (
	"context"
	"fmt"
	appcontext "rentledger/internal/context"
	"rentledger/internal/database"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

// TransactionService runs units of work inside one database transaction. The
// transaction is also placed on the context handed to fn so lookups that only
// receive a context join it.
type TransactionService struct {
	db  database.DB
	log logger.Logger
}

func NewTransactionService(db database.DB) *TransactionService {
	return &TransactionService{
		db:  db,
		log: logger.New("TransactionService"),
	}
}

// Execute commits when fn returns nil and rolls back otherwise. A panic inside
// fn is rolled back and returned as an error; a failed rollback after a panic
// re-panics.
func (ts *TransactionService) Execute(
	ctx context.Context,
	fn func(context.Context, *gorm.DB) error,
) (err error) {
	log := ts.log.Function("Execute")

	if tx, ok := appcontext.GetTransaction(ctx); ok && tx != nil {
		return fn(ctx, tx)
	}

	tx := ts.db.SQLWithContext(ctx).Begin()
	if tx.Error != nil {
		return log.Err("failed to begin transaction", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			panicErr := log.ErrMsg("panic during transaction: " + fmt.Sprintf("%v", r))
			log.Er("panic during transaction, rolling back", panicErr)

			if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
				log.Er("CRITICAL: failed to rollback after panic", rollbackErr, "panic", r)
				panic(
					fmt.Sprintf(
						"transaction rollback failed: %v (original panic: %v)",
						rollbackErr,
						r,
					),
				)
			}

			err = panicErr
		}
	}()

	if err = fn(appcontext.WithTransaction(ctx, tx), tx); err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			log.Er("CRITICAL: failed to rollback after function error", rollbackErr, "originalError", err)
			return log.Error("transaction rollback failed", "rollbackError", rollbackErr, "originalError", err)
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return log.Err("failed to commit transaction", err)
	}

	return nil
}
