// Package opportunities provides the opportunities bounded context.
package opportunities

import (
	apphttp "beautycrm_backend/internal/http"
	"beautycrm_backend/internal/opportunities/handler"
	"beautycrm_backend/internal/opportunities/repository"
	"beautycrm_backend/internal/opportunities/service"
	"beautycrm_backend/platform/db"
	"beautycrm_backend/platform/logger"
)

// Module is the opportunities bounded context module implementing http.Module.
type Module struct {
	repo    *repository.Repository
	handler *handler.Handler
}

// NewModule creates the opportunities module.
func NewModule(q db.Querier, log *logger.Logger) *Module {
	repo := repository.New(q)
	return &Module{
		repo:    repo,
		handler: handler.New(service.New(repo), log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "opportunities"
}

// Repository exposes the repository for transactional use by prospects.
func (m *Module) Repository() *repository.Repository {
	return m.repo
}

// RegisterRoutes mounts opportunity routes on the protected group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/opportunities"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
