// Package service manages users and resolves sales rep territories.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"beautycrm_backend/internal/users/repository"
	"beautycrm_backend/internal/users/territory"
	"beautycrm_backend/internal/users/transport"
	"beautycrm_backend/platform/apperr"
	"beautycrm_backend/platform/cache"
	"beautycrm_backend/platform/logger"

	"github.com/google/uuid"
)

const rosterKey = "users:active_reps"

// Store is the persistence the service needs.
type Store interface {
	GetByID(ctx context.Context, id uuid.UUID) (repository.User, error)
	List(ctx context.Context) ([]repository.User, error)
	ListActiveReps(ctx context.Context) ([]repository.User, error)
	Create(ctx context.Context, p repository.CreateParams) (repository.User, error)
}

// Service manages users.
type Service struct {
	store       Store
	cache       cache.Cache
	rosterTTL   time.Duration
	territories *territory.Map
	log         *logger.Logger
}

// New creates a users service. A nil cache disables roster caching.
func New(store Store, c cache.Cache, rosterTTL time.Duration, territories *territory.Map, log *logger.Logger) *Service {
	if c == nil {
		c = cache.NewNoop()
	}
	if territories == nil {
		territories = territory.Default()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{store: store, cache: c, rosterTTL: rosterTTL, territories: territories, log: log}
}

// Get returns one user.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (repository.User, error) {
	u, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.User{}, apperr.NotFound("user not found")
		}
		return repository.User{}, apperr.Internal("load user failed", err).WithOp("users.Get")
	}
	return u, nil
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]repository.User, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, apperr.Internal("list users failed", err).WithOp("users.List")
	}
	if users == nil {
		users = []repository.User{}
	}
	return users, nil
}

// Create adds a user and drops the cached roster.
func (s *Service) Create(ctx context.Context, req transport.CreateUserRequest) (repository.User, error) {
	u, err := s.store.Create(ctx, repository.CreateParams{
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Role:     req.Role,
		Region:   strings.TrimSpace(req.Region),
		Quota:    req.Quota,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return repository.User{}, apperr.Conflict("email already in use")
		}
		return repository.User{}, apperr.Internal("create user failed", err).WithOp("users.Create")
	}

	if err := s.cache.Delete(ctx, rosterKey); err != nil {
		s.log.Warn("roster cache invalidation failed", "error", err)
	}
	return u, nil
}

// Roster returns active sales reps, highest quota first. Cached.
func (s *Service) Roster(ctx context.Context) ([]repository.User, error) {
	return cache.GetOrLoad(ctx, s.cache, rosterKey, s.rosterTTL, s.store.ListActiveReps)
}

// TerritoryRep picks the active rep in the region covering city with the
// highest quota. Equal quotas fall back to name, then id.
func (s *Service) TerritoryRep(ctx context.Context, city string) (repository.User, bool, error) {
	region, ok := s.territories.RegionFor(city)
	if !ok {
		return repository.User{}, false, nil
	}

	roster, err := s.Roster(ctx)
	if err != nil {
		return repository.User{}, false, err
	}

	var (
		best  repository.User
		found bool
	)
	for _, u := range roster {
		if !u.Active || !strings.EqualFold(u.Region, region) {
			continue
		}
		if !found || better(u, best) {
			best, found = u, true
		}
	}
	return best, found, nil
}

func better(a, b repository.User) bool {
	if a.Quota != b.Quota {
		return a.Quota > b.Quota
	}
	if a.FullName != b.FullName {
		return a.FullName < b.FullName
	}
	return a.ID.String() < b.ID.String()
}
