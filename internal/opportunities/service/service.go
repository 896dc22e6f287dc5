package service

import (
	"context"
	"errors"

	"beautycrm_backend/internal/opportunities/repository"
	"beautycrm_backend/internal/opportunities/transport"
	"beautycrm_backend/platform/apperr"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Reader is the read side of the opportunities repository.
type Reader interface {
	GetByID(ctx context.Context, id uuid.UUID) (repository.Opportunity, error)
}

// Service provides read access to opportunities.
type Service struct {
	repo Reader
}

// New creates an opportunities service.
func New(repo Reader) *Service {
	return &Service{repo: repo}
}

// Get returns one opportunity.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.OpportunityResponse, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.OpportunityResponse{}, apperr.NotFound("opportunity not found")
		}
		return transport.OpportunityResponse{}, apperr.Internal("load opportunity failed", err).WithOp("opportunities.Get")
	}

	return transport.OpportunityResponse{
		ID:                o.ID,
		Name:              o.Name,
		Stage:             o.Stage,
		Probability:       o.Probability,
		Amount:            o.Amount,
		ExpectedRevenue:   o.ExpectedRevenue,
		Currency:          o.Currency,
		ExpectedCloseDate: o.ExpectedCloseDate.Format(dateLayout),
		OwnerID:           o.OwnerID,
		AccountID:         o.AccountID,
		PrimaryContactID:  o.PrimaryContactID,
		SourceProspectID:  o.SourceProspectID,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}, nil
}
