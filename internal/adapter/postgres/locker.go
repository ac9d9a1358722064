package postgres

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
)

// ErrNoTx is returned when a transaction-scoped lock is requested outside RunInTx.
var ErrNoTx = errors.New("advisory lock requires a transaction")

// UserLocker serializes calendar writes per user with transaction-scoped
// advisory locks. The lock is released on commit or rollback.
type UserLocker struct {
	db Querier
}

// NewUserLocker creates a UserLocker.
func NewUserLocker(db Querier) *UserLocker {
	return &UserLocker{db: db}
}

// LockUser blocks until the calendar lock for userID is held by the
// transaction in ctx.
func (l *UserLocker) LockUser(ctx context.Context, userID uuid.UUID) error {
	if !InTx(ctx) {
		return ErrNoTx
	}
	q := QuerierFromCtx(ctx, l.db)
	if _, err := q.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", LockKey(userID)); err != nil {
		return fmt.Errorf("lock user %s: %w", userID, err)
	}
	return nil
}

// LockKey maps a user to its 64-bit advisory lock key.
func LockKey(userID uuid.UUID) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("calendar:" + userID.String()))
	return int64(h.Sum64())
}
