// Package accounts provides the accounts bounded context: accounts and their
// contacts, created by prospect conversion.
package accounts

import (
	"beautycrm_backend/internal/accounts/handler"
	"beautycrm_backend/internal/accounts/repository"
	"beautycrm_backend/internal/accounts/service"
	apphttp "beautycrm_backend/internal/http"
	"beautycrm_backend/platform/db"
	"beautycrm_backend/platform/logger"
)

// Module is the accounts bounded context module implementing http.Module.
type Module struct {
	repo    *repository.Repository
	handler *handler.Handler
}

// NewModule creates the accounts module.
func NewModule(q db.Querier, log *logger.Logger) *Module {
	repo := repository.New(q)
	return &Module{
		repo:    repo,
		handler: handler.New(service.New(repo), log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "accounts"
}

// Repository exposes the repository for transactional use by conversion.
func (m *Module) Repository() *repository.Repository {
	return m.repo
}

// RegisterRoutes mounts account routes on the protected group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/accounts"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
