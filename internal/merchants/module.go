// Package merchants provides the merchant discovery bounded context. It
// has no conversion flow; onboarding ends the lifecycle.
package merchants

import (
	apphttp "beautycrm_backend/internal/http"
	"beautycrm_backend/internal/lifecycle"
	"beautycrm_backend/internal/lifecycle/domain"
)

// Module is the merchants bounded context module implementing http.Module.
type Module struct {
	lifecycle *lifecycle.EntityLifecycle
}

// NewModule creates the merchants module.
func NewModule(deps lifecycle.Deps) *Module {
	return &Module{lifecycle: lifecycle.New(domain.Merchant, deps)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "merchants"
}

// Lifecycle exposes the shared lifecycle stack for wiring and the CLI.
func (m *Module) Lifecycle() *lifecycle.EntityLifecycle {
	return m.lifecycle
}

// RegisterRoutes mounts merchant routes on the protected group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.lifecycle.RegisterRoutes(ctx.Protected.Group("/merchants"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
