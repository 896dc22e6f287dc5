package repository

import (
	"context"
	"errors"
	"time"

	"beautycrm_backend/platform/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when the opportunity does not exist.
var ErrNotFound = errors.New("opportunity not found")

// Opportunity is a potential deal.
type Opportunity struct {
	ID                uuid.UUID
	Name              string
	Stage             string
	Probability       int
	Amount            float64
	ExpectedRevenue   float64
	Currency          string
	ExpectedCloseDate time.Time
	OwnerID           *uuid.UUID
	AccountID         *uuid.UUID
	PrimaryContactID  *uuid.UUID
	SourceProspectID  *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type CreateParams struct {
	Name              string
	Stage             string
	Probability       int
	Amount            float64
	ExpectedRevenue   float64
	Currency          string
	ExpectedCloseDate time.Time
	OwnerID           *uuid.UUID
	AccountID         *uuid.UUID
	PrimaryContactID  *uuid.UUID
	SourceProspectID  *uuid.UUID
}

// Repository stores opportunities.
type Repository struct {
	db db.Querier
}

// New creates an opportunities repository.
func New(q db.Querier) *Repository {
	return &Repository{db: q}
}

// WithTx returns a copy bound to tx.
func (r *Repository) WithTx(tx pgx.Tx) *Repository {
	return &Repository{db: tx}
}

// Create inserts an opportunity and returns its id.
func (r *Repository) Create(ctx context.Context, p CreateParams) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO opportunities (
			id, name, stage, probability, amount, expected_revenue, currency,
			expected_close_date, owner_id, account_id, primary_contact_id, source_prospect_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, id, p.Name, p.Stage, p.Probability, p.Amount, p.ExpectedRevenue, p.Currency,
		p.ExpectedCloseDate, p.OwnerID, p.AccountID, p.PrimaryContactID, p.SourceProspectID)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// AttachAccount links an existing opportunity to an account and its primary contact.
func (r *Repository) AttachAccount(ctx context.Context, id, accountID, contactID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE opportunities
		SET account_id = $2, primary_contact_id = $3, updated_at = now()
		WHERE id = $1
	`, id, accountID, contactID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID returns one opportunity.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Opportunity, error) {
	var o Opportunity
	err := r.db.QueryRow(ctx, `
		SELECT id, name, stage, probability, amount::float8, expected_revenue::float8, currency,
			expected_close_date, owner_id, account_id, primary_contact_id, source_prospect_id,
			created_at, updated_at
		FROM opportunities WHERE id = $1
	`, id).Scan(&o.ID, &o.Name, &o.Stage, &o.Probability, &o.Amount, &o.ExpectedRevenue, &o.Currency,
		&o.ExpectedCloseDate, &o.OwnerID, &o.AccountID, &o.PrimaryContactID, &o.SourceProspectID,
		&o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Opportunity{}, ErrNotFound
	}
	return o, err
}
