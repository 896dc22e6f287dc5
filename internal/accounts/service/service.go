package service

import (
	"context"
	"errors"

	"beautycrm_backend/internal/accounts/repository"
	"beautycrm_backend/internal/accounts/transport"
	"beautycrm_backend/platform/apperr"

	"github.com/google/uuid"
)

// Reader is the read side of the accounts repository.
type Reader interface {
	GetByID(ctx context.Context, id uuid.UUID) (repository.Account, error)
	ListContacts(ctx context.Context, accountID uuid.UUID) ([]repository.Contact, error)
}

// Service provides read access to accounts.
type Service struct {
	repo Reader
}

// New creates an accounts service.
func New(repo Reader) *Service {
	return &Service{repo: repo}
}

// Get returns an account with its contacts.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.AccountResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.AccountResponse{}, apperr.NotFound("account not found")
		}
		return transport.AccountResponse{}, apperr.Internal("load account failed", err).WithOp("accounts.Get")
	}

	contacts, err := s.repo.ListContacts(ctx, id)
	if err != nil {
		return transport.AccountResponse{}, apperr.Internal("load contacts failed", err).WithOp("accounts.Get")
	}

	resp := transport.AccountResponse{
		ID:               a.ID,
		Name:             a.Name,
		AccountType:      a.AccountType,
		Street:           a.Street,
		City:             a.City,
		State:            a.State,
		Country:          a.Country,
		PostalCode:       a.PostalCode,
		OwnerID:          a.OwnerID,
		SourceProspectID: a.SourceProspectID,
		CreatedAt:        a.CreatedAt,
		Contacts:         make([]transport.ContactResponse, 0, len(contacts)),
	}
	for _, c := range contacts {
		resp.Contacts = append(resp.Contacts, transport.ContactResponse{
			ID:        c.ID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Phone:     c.Phone,
			CreatedAt: c.CreatedAt,
		})
	}
	return resp, nil
}
