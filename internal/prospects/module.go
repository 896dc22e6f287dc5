// Package prospects provides the prospects bounded context: the shared
// lifecycle plus opportunity creation and conversion into an account.
package prospects

import (
	accounts "beautycrm_backend/internal/accounts/repository"
	apphttp "beautycrm_backend/internal/http"
	"beautycrm_backend/internal/lifecycle"
	lifecycledomain "beautycrm_backend/internal/lifecycle/domain"
	opportunities "beautycrm_backend/internal/opportunities/repository"
	"beautycrm_backend/internal/prospects/domain"
	"beautycrm_backend/internal/prospects/handler"
	"beautycrm_backend/internal/prospects/repository"
	"beautycrm_backend/internal/prospects/service"
	"beautycrm_backend/platform/config"
	"beautycrm_backend/platform/db"
)

// Module is the prospects bounded context module implementing http.Module.
type Module struct {
	lifecycle  *lifecycle.EntityLifecycle
	conversion *service.Service
	handler    *handler.Handler
}

// NewModule creates the prospects module. beginner opens the conversion
// transactions; the account and opportunity repositories are rebound to them.
func NewModule(deps lifecycle.Deps, beginner db.TxBeginner, accts *accounts.Repository, opps *opportunities.Repository, cfg config.LifecycleConfig) *Module {
	lc := lifecycle.New(lifecycledomain.Prospect, deps)

	tx := repository.NewTransactor(beginner, lc.Repository(), accts, opps)
	conversion := service.New(tx, deps.Bus, domain.Defaults{
		Currency:         cfg.GetDefaultCurrency(),
		CloseDateHorizon: cfg.GetCloseDateHorizon(),
	}, deps.Log)

	return &Module{
		lifecycle:  lc,
		conversion: conversion,
		handler:    handler.New(conversion, deps.Validator, deps.Log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "prospects"
}

// Lifecycle exposes the shared lifecycle stack for wiring and the CLI.
func (m *Module) Lifecycle() *lifecycle.EntityLifecycle {
	return m.lifecycle
}

// RegisterRoutes mounts prospect routes on the protected group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/prospects")
	m.lifecycle.RegisterRoutes(group)
	m.handler.RegisterRoutes(group)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
