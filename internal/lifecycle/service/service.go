// Package service implements the lifecycle actions shared by prospects and
// merchant discoveries. One Service instance serves one entity type.
package service

import (
	"context"
	"strings"
	"time"

	"beautycrm_backend/internal/events"
	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/internal/lifecycle/ports"
	"beautycrm_backend/internal/lifecycle/repository"
	"beautycrm_backend/internal/lifecycle/transport"
	"beautycrm_backend/platform/apperr"
	"beautycrm_backend/platform/logger"
	"beautycrm_backend/platform/validator"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Deps bundles the collaborators of a Service.
type Deps struct {
	Repo      repository.EntityRepository
	Reps      ports.RepDirectory
	About     ports.AboutGenerator
	Bus       events.Bus
	Validator *validator.Validator
	Log       *logger.Logger
	DemoMode  bool
}

// Service provides the lifecycle actions for one entity type.
type Service struct {
	et    domain.EntityType
	repo  repository.EntityRepository
	reps  ports.RepDirectory
	about ports.AboutGenerator
	bus   events.Bus
	val   *validator.Validator
	log   *logger.Logger
	demo  bool
	now   func() time.Time

	archiver ports.ImportArchiver    // optional
	tasks    ports.AboutTaskEnqueuer // optional
}

// New creates a lifecycle service for et.
func New(et domain.EntityType, deps Deps) *Service {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		et:    et,
		repo:  deps.Repo,
		reps:  deps.Reps,
		about: deps.About,
		bus:   deps.Bus,
		val:   deps.Validator,
		log:   log,
		demo:  deps.DemoMode,
		now:   time.Now,
	}
}

// SetImportArchiver enables archiving of raw bulk-import payloads.
func (s *Service) SetImportArchiver(a ports.ImportArchiver) {
	s.archiver = a
}

// SetTaskEnqueuer enables background about generation after imports.
func (s *Service) SetTaskEnqueuer(t ports.AboutTaskEnqueuer) {
	s.tasks = t
}

// EntityType returns the configuration this service runs with.
func (s *Service) EntityType() domain.EntityType {
	return s.et
}

// List returns a decorated, filtered page.
func (s *Service) List(ctx context.Context, req transport.ListRequest) (transport.ListResponse, error) {
	page := req.Page
	pageSize := req.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	params := repository.ListParams{
		Search:    strings.TrimSpace(req.Search),
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Offset:    (page - 1) * pageSize,
		Limit:     pageSize,
	}

	if strings.TrimSpace(req.Status) != "" {
		status, ok := s.et.CanonicalStatus(req.Status)
		if !ok {
			return transport.ListResponse{}, s.invalidStatus(req.Status)
		}
		params.Status = &status
	}
	if req.AssignedTo != "" {
		id, err := uuid.Parse(req.AssignedTo)
		if err != nil {
			return transport.ListResponse{}, apperr.Validation("invalid assignedTo")
		}
		params.AssignedTo = &id
	}

	items, total, err := s.repo.List(ctx, params)
	if err != nil {
		return transport.ListResponse{}, apperr.Internal("list failed", err).WithOp(s.op("List"))
	}

	now := s.now()
	resp := transport.ListResponse{
		Items:    make([]transport.EntityResponse, 0, len(items)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, e := range items {
		resp.Items = append(resp.Items, s.toResponse(e, now))
	}
	resp.TotalPages = (total + pageSize - 1) / pageSize
	return resp, nil
}

// Get returns one decorated entity.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.EntityResponse, error) {
	e, err := s.load(ctx, id)
	if err != nil {
		return transport.EntityResponse{}, err
	}
	return s.toResponse(e, s.now()), nil
}

// ScoreBreakdown explains the score the entity would get from its current attributes.
func (s *Service) ScoreBreakdown(ctx context.Context, id uuid.UUID) (domain.ScoreBreakdown, error) {
	e, err := s.load(ctx, id)
	if err != nil {
		return domain.ScoreBreakdown{}, err
	}
	return domain.ExplainScore(e.ScoreInput()), nil
}

// Metrics returns pipeline KPIs.
func (s *Service) Metrics(ctx context.Context) (repository.Metrics, error) {
	m, err := s.repo.GetMetrics(ctx)
	if err != nil {
		return repository.Metrics{}, apperr.Internal("metrics failed", err).WithOp(s.op("Metrics"))
	}
	return m, nil
}

func (s *Service) load(ctx context.Context, id uuid.UUID) (domain.Entity, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Entity{}, s.mapRepoErr("Get", err)
	}
	return e, nil
}

func (s *Service) toResponse(e domain.Entity, now time.Time) transport.EntityResponse {
	return transport.ToEntityResponse(e, s.et.Decorate(e, now, s.demo))
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.bus != nil {
		s.bus.Publish(ctx, event)
	}
}

func (s *Service) op(name string) string {
	return s.et.Label + "." + name
}
