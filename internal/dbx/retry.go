package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes for the conflict class: a serializable
// transaction that cannot be serialized, or a detected deadlock.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// ErrTooManyConflicts is returned by WithSerializableTx once the attempt
// budget is exhausted without a successful commit.
var ErrTooManyConflicts = errors.New("too many transaction conflicts")

// retryBaseDelay is the backoff unit before the second attempt; it doubles
// on each further attempt, plus jitter. Variable so tests can shrink it.
var retryBaseDelay = 10 * time.Millisecond

// IsConflict reports whether err belongs to the conflict class: a
// serialization failure or deadlock that is safe to retry by rerunning the
// whole transaction from its beginning.
func IsConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
	}
	return false
}

// WithSerializableTx runs fn inside a SERIALIZABLE transaction and retries
// the whole transaction when the store reports a conflict (serialization
// failure or deadlock). Every attempt starts from a clean rollback, so no
// partially-applied state leaks between attempts. Non-conflict errors are
// returned immediately without retry.
//
// Retries are bounded: after maxAttempts conflicting attempts the last
// conflict is returned wrapped in ErrTooManyConflicts. Attempts are spaced
// with exponential backoff plus jitter.
func WithSerializableTx(ctx context.Context, db *sql.DB, maxAttempts int, fn func(ctx context.Context, tx DBTX) error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoffDelay(attempt)):
			}
		}

		err = WithTx(ctx, db, opts, fn)
		if err == nil || !IsConflict(err) {
			return err
		}
	}

	return fmt.Errorf("%w after %d attempts: %v", ErrTooManyConflicts, maxAttempts, err)
}

// backoffDelay returns the delay before the given (1-based) retry attempt:
// retryBaseDelay * 2^(attempt-1), plus up to 50% jitter.
func backoffDelay(attempt int) time.Duration {
	d := retryBaseDelay << (attempt - 1)
	return d + time.Duration(rand.Int63n(int64(d/2)+1))
}
