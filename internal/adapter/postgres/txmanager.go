package postgres

import (
	"context"
	"fmt"
)

// TxManager runs units of work in a single transaction carried by the
// context. Repositories pick it up through QuerierFromCtx.
type TxManager struct {
	db DB
}

func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx runs fn inside a Read Committed transaction. A nested call joins
// the transaction already in ctx, so the outermost call alone commits.
//
// The transaction is rolled back when fn returns an error, panics, or ctx is
// done by the time fn returns. Rollback uses a context that outlives ctx.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	rollback := func() error { return tx.Rollback(context.WithoutCancel(ctx)) }

	defer func() {
		if r := recover(); r != nil {
			_ = rollback()
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	if err := ctx.Err(); err != nil {
		_ = rollback()
		return fmt.Errorf("commit transaction: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
