package helpers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/logger"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// TxBeginner starts transactions. Satisfied by *pgxpool.Pool and pgx.Conn.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TransactionFunc is a function that executes within a database transaction
type TransactionFunc func(tx pgx.Tx) error

// WithTransaction runs fn in a transaction, committing when it returns nil
// and rolling back otherwise.
func WithTransaction(ctx context.Context, conn TxBeginner, fn TransactionFunc) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			logger.Log.Error("Failed to rollback transaction", zap.Error(rbErr))
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// IsRetryableTxError reports whether err is a serialization failure or a
// deadlock, both of which succeed when the transaction is run again.
func IsRetryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
}

// WithTransactionRetry is WithTransaction with up to maxRetries reruns on
// retryable failures. Other errors are returned at once.
func WithTransactionRetry(ctx context.Context, conn TxBeginner, maxRetries int, fn TransactionFunc) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond

	attempt := 0
	return backoff.RetryNotify(func() error {
		attempt++
		err := WithTransaction(ctx, conn, fn)
		if err != nil && !IsRetryableTxError(err) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(b, uint64(maxRetries)), ctx), func(err error, wait time.Duration) {
		logger.Log.Warn("Transaction conflict, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err))
	})
}

// TxRunner runs fn inside a database transaction with queries bound to it
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(q db.Querier) error) error
}

// PoolTxRunner is the pgxpool backed TxRunner
type PoolTxRunner struct {
	Conn       TxBeginner
	MaxRetries int
}

// NewPoolTxRunner creates a TxRunner that reruns conflicting transactions
// up to three times
func NewPoolTxRunner(conn TxBeginner) *PoolTxRunner {
	return &PoolTxRunner{Conn: conn, MaxRetries: 3}
}

// RunInTx implements TxRunner
func (r *PoolTxRunner) RunInTx(ctx context.Context, fn func(q db.Querier) error) error {
	return WithTransactionRetry(ctx, r.Conn, r.MaxRetries, func(tx pgx.Tx) error {
		return fn(db.New(tx))
	})
}
