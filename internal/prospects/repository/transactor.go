// Package repository binds the prospect, account and opportunity
// repositories to one database transaction.
package repository

import (
	"context"

	accounts "beautycrm_backend/internal/accounts/repository"
	lifecycle "beautycrm_backend/internal/lifecycle/repository"
	opportunities "beautycrm_backend/internal/opportunities/repository"
	"beautycrm_backend/internal/prospects/service"
	"beautycrm_backend/platform/db"

	"github.com/jackc/pgx/v5"
)

// Transactor implements service.Transactor over a pgx pool.
type Transactor struct {
	beginner      db.TxBeginner
	prospects     *lifecycle.Repository
	accounts      *accounts.Repository
	opportunities *opportunities.Repository
}

// NewTransactor creates a transactor. The repositories are rebound to each
// transaction with their WithTx methods.
func NewTransactor(beginner db.TxBeginner, prospects *lifecycle.Repository, accts *accounts.Repository, opps *opportunities.Repository) *Transactor {
	return &Transactor{
		beginner:      beginner,
		prospects:     prospects,
		accounts:      accts,
		opportunities: opps,
	}
}

// WithinTx runs fn with transaction-bound stores.
func (t *Transactor) WithinTx(ctx context.Context, fn func(service.TxStores) error) error {
	return db.WithTx(ctx, t.beginner, func(tx pgx.Tx) error {
		return fn(service.TxStores{
			Prospects:     t.prospects.WithTx(tx),
			Accounts:      t.accounts.WithTx(tx),
			Opportunities: t.opportunities.WithTx(tx),
		})
	})
}

var _ service.Transactor = (*Transactor)(nil)
