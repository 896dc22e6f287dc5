// Package users provides the users bounded context: the sales team roster
// and the territory map used for automatic assignment.
package users

import (
	apphttp "beautycrm_backend/internal/http"
	"beautycrm_backend/internal/users/handler"
	"beautycrm_backend/internal/users/repository"
	"beautycrm_backend/internal/users/service"
	"beautycrm_backend/internal/users/territory"
	"beautycrm_backend/platform/cache"
	"beautycrm_backend/platform/config"
	"beautycrm_backend/platform/db"
	"beautycrm_backend/platform/logger"
	"beautycrm_backend/platform/validator"
)

// Module is the users bounded context module implementing http.Module.
type Module struct {
	service *service.Service
	handler *handler.Handler
}

// NewModule creates the users module. c may be a no-op cache.
func NewModule(q db.Querier, c cache.Cache, cfg interface {
	config.RedisConfig
	config.TerritoryConfig
}, val *validator.Validator, log *logger.Logger) (*Module, error) {
	territories, err := territory.Load(cfg.GetTerritoriesFile())
	if err != nil {
		return nil, err
	}

	svc := service.New(repository.New(q), c, cfg.GetRosterCacheTTL(), territories, log)
	return &Module{
		service: svc,
		handler: handler.New(svc, val, log),
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "users"
}

// Service exposes the users service for the rep directory adapter.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts user routes. Creating users is admin-only.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	users := ctx.Protected.Group("/users")
	users.GET("", m.handler.List)
	users.GET("/:id", m.handler.Get)

	ctx.Admin.POST("/users", m.handler.Create)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
