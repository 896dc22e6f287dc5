package repository

import (
	"context"
	"errors"
	"time"

	"beautycrm_backend/platform/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when the account does not exist.
var ErrNotFound = errors.New("account not found")

// Account is a customer organization created by conversion.
type Account struct {
	ID               uuid.UUID
	Name             string
	AccountType      string
	Street           string
	City             string
	State            string
	Country          string
	PostalCode       string
	OwnerID          *uuid.UUID
	SourceProspectID *uuid.UUID
	CreatedAt        time.Time
}

// Contact is a person attached to an account.
type Contact struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	CreatedAt time.Time
}

type CreateAccountParams struct {
	Name             string
	AccountType      string
	Street           string
	City             string
	State            string
	Country          string
	PostalCode       string
	OwnerID          *uuid.UUID
	SourceProspectID *uuid.UUID
}

type CreateContactParams struct {
	AccountID uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Repository stores accounts and contacts.
type Repository struct {
	db db.Querier
}

// New creates an accounts repository.
func New(q db.Querier) *Repository {
	return &Repository{db: q}
}

// WithTx returns a copy bound to tx.
func (r *Repository) WithTx(tx pgx.Tx) *Repository {
	return &Repository{db: tx}
}

// CreateAccount inserts an account and returns its id.
func (r *Repository) CreateAccount(ctx context.Context, p CreateAccountParams) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO accounts (id, name, account_type, street, city, state, country, postal_code, owner_id, source_prospect_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, id, p.Name, p.AccountType, p.Street, p.City, p.State, p.Country, p.PostalCode, p.OwnerID, p.SourceProspectID)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// CreateContact inserts a contact and returns its id.
func (r *Repository) CreateContact(ctx context.Context, p CreateContactParams) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO contacts (id, account_id, first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, p.AccountID, p.FirstName, p.LastName, p.Email, p.Phone)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// GetByID returns one account.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Account, error) {
	var a Account
	err := r.db.QueryRow(ctx, `
		SELECT id, name, account_type, street, city, state, country, postal_code, owner_id, source_prospect_id, created_at
		FROM accounts WHERE id = $1
	`, id).Scan(&a.ID, &a.Name, &a.AccountType, &a.Street, &a.City, &a.State, &a.Country, &a.PostalCode,
		&a.OwnerID, &a.SourceProspectID, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrNotFound
	}
	return a, err
}

// ListContacts returns the contacts of an account, oldest first.
func (r *Repository) ListContacts(ctx context.Context, accountID uuid.UUID) ([]Contact, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, account_id, first_name, last_name, email, phone, created_at
		FROM contacts WHERE account_id = $1
		ORDER BY created_at, id
	`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]Contact, 0)
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.AccountID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
