package adapters

import (
	"context"

	"beautycrm_backend/internal/lifecycle/ports"
	"beautycrm_backend/internal/users/repository"
	"beautycrm_backend/internal/users/service"
	"beautycrm_backend/platform/apperr"

	"github.com/google/uuid"
)

// RepDirectoryAdapter resolves sales reps for the lifecycle services from
// the users module.
type RepDirectoryAdapter struct {
	users *service.Service
}

func NewRepDirectoryAdapter(users *service.Service) *RepDirectoryAdapter {
	return &RepDirectoryAdapter{users: users}
}

func (a *RepDirectoryAdapter) GetRep(ctx context.Context, id uuid.UUID) (ports.SalesRep, error) {
	u, err := a.users.Get(ctx, id)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return ports.SalesRep{}, ports.ErrRepNotFound
		}
		return ports.SalesRep{}, err
	}
	return toSalesRep(u), nil
}

func (a *RepDirectoryAdapter) TerritoryRep(ctx context.Context, city string) (ports.SalesRep, bool, error) {
	u, ok, err := a.users.TerritoryRep(ctx, city)
	if err != nil || !ok {
		return ports.SalesRep{}, false, err
	}
	return toSalesRep(u), true, nil
}

func toSalesRep(u repository.User) ports.SalesRep {
	return ports.SalesRep{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Region:   u.Region,
		Active:   u.Active,
	}
}

var _ ports.RepDirectory = (*RepDirectoryAdapter)(nil)
