package db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxBeginner starts transactions. *pgxpool.Pool implements it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// WithTx runs fn inside a transaction. The transaction is rolled back when fn
// returns an error or panics, and committed otherwise.
func WithTx(ctx context.Context, beginner TxBeginner, fn func(tx pgx.Tx) error) (err error) {
	tx, err := beginner.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
