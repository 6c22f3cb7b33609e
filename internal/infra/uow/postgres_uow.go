package uow

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"wanderbook/internal/infra/readstore"
	"wanderbook/internal/infra/repository"
	"wanderbook/internal/pkg/errs"
	"wanderbook/internal/usecase/shared"
)

const (
	maxRetries     = 3
	baseRetryDelay = 10 * time.Millisecond
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) *PostgresUoW {
	return &PostgresUoW{pool: pool}
}

// Within runs fn in a transaction, retrying on serialization failures and
// deadlocks with exponential backoff. fn must be safe to re-run.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := baseRetryDelay * (1 << (attempt - 1))
			jitter := time.Duration(rand.Int63n(int64(delay)))
			select {
			case <-time.After(delay + jitter):
			case <-ctx.Done():
				return errs.Wrap(ctx.Err(), "transaction retry aborted")
			}
		}

		lastErr = u.runOnce(ctx, fn)
		if lastErr == nil || !isRetryable(lastErr) {
			return lastErr
		}
	}

	return errs.Wrap(lastErr, "transaction failed after retries")
}

func (u *PostgresUoW) runOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgtx, err := u.pool.Begin(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to begin transaction")
	}
	defer pgtx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if err := fn(ctx, newTx(pgtx)); err != nil {
		return err
	}

	if err := pgtx.Commit(ctx); err != nil {
		return errs.Wrap(err, "failed to commit transaction")
	}
	return nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// serialization_failure, deadlock_detected
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// tx bundles the transaction-bound repositories. Each is initialized lazily
// so commands pay only for what they touch.
type tx struct {
	pgtx pgx.Tx

	bookings      *repository.BookingRepository
	reviews       *repository.ReviewRepository
	notifications *repository.NotificationRepository
	reads         *readstore.CommandReadStore
}

func newTx(pgtx pgx.Tx) *tx {
	return &tx{pgtx: pgtx}
}

func (t *tx) Bookings() shared.BookingRepository {
	if t.bookings == nil {
		t.bookings = repository.NewBookingRepository(t.pgtx)
	}
	return t.bookings
}

func (t *tx) Reviews() shared.ReviewRepository {
	if t.reviews == nil {
		t.reviews = repository.NewReviewRepository(t.pgtx)
	}
	return t.reviews
}

func (t *tx) Notifications() shared.NotificationRepository {
	if t.notifications == nil {
		t.notifications = repository.NewNotificationRepository(t.pgtx)
	}
	return t.notifications
}

func (t *tx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = readstore.NewCommandReadStore(t.pgtx)
	}
	return t.reads
}
