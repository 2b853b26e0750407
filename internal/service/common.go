package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"story-server/internal/models"
	"story-server/internal/repository"
)

// TxRunner executes a unit of work in exactly one transaction: begin, run fn
// with the transaction as the querier, commit on success or roll back on any
// error. Service entry points that mutate state go through WithTx once;
// cross-calls between operations use the shared non-transactional core
// routines instead of re-entering WithTx.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(q repository.DBTX) error) error
}

type pgxTxRunner struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPgxTxRunner creates a TxRunner backed by a pgx connection pool.
func NewPgxTxRunner(pool *pgxpool.Pool, logger *zap.Logger) TxRunner {
	return &pgxTxRunner{
		pool:   pool,
		logger: logger.Named("TxRunner"),
	}
}

func (r *pgxTxRunner) WithTx(ctx context.Context, fn func(q repository.DBTX) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("%w: begin: %v", models.ErrTransactionFailed, err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rollbackErr := tx.Rollback(context.Background()); rollbackErr != nil {
				r.logger.Error("Failed to rollback transaction after panic",
					zap.Error(rollbackErr),
					zap.Any("panic", p))
			}
			panic(p) // re-throw panic after rollback
		}
	}()

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			r.logger.Error("Failed to rollback transaction",
				zap.Error(rollbackErr),
				zap.NamedError("original_error", err))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("Failed to commit transaction", zap.Error(err))
		return fmt.Errorf("%w: commit: %v", models.ErrTransactionFailed, err)
	}

	return nil
}
