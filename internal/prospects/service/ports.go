package service

import (
	"context"

	accounts "beautycrm_backend/internal/accounts/repository"
	lifecycle "beautycrm_backend/internal/lifecycle/domain"
	opportunities "beautycrm_backend/internal/opportunities/repository"

	"github.com/google/uuid"
)

// ProspectStore is the prospect side of a conversion.
type ProspectStore interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (lifecycle.Entity, error)
	LinkOpportunity(ctx context.Context, id uuid.UUID, opportunityID uuid.UUID, status string) error
}

// AccountStore creates accounts and contacts.
type AccountStore interface {
	CreateAccount(ctx context.Context, p accounts.CreateAccountParams) (uuid.UUID, error)
	CreateContact(ctx context.Context, p accounts.CreateContactParams) (uuid.UUID, error)
}

// OpportunityStore creates and links opportunities.
type OpportunityStore interface {
	Create(ctx context.Context, p opportunities.CreateParams) (uuid.UUID, error)
	AttachAccount(ctx context.Context, id, accountID, contactID uuid.UUID) error
}

// TxStores are the stores bound to one transaction.
type TxStores struct {
	Prospects     ProspectStore
	Accounts      AccountStore
	Opportunities OpportunityStore
}

// Transactor runs fn in a single transaction. A non-nil return from fn
// rolls back every write made through the stores.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(TxStores) error) error
}
