// Package activity provides the entity activity timeline. Entries are
// written by event subscribers and feed the lastFollowUp virtual field.
package activity

import (
	"beautycrm_backend/internal/activity/handler"
	"beautycrm_backend/internal/activity/repository"
	"beautycrm_backend/internal/activity/service"
	"beautycrm_backend/internal/events"
	apphttp "beautycrm_backend/internal/http"
	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/platform/db"
	"beautycrm_backend/platform/logger"
)

// Module is the activity module implementing http.Module.
type Module struct {
	recorder *service.Recorder
	handler  *handler.Handler
}

// NewModule creates the activity module and subscribes it to bus.
func NewModule(q db.Querier, bus events.Bus, log *logger.Logger) *Module {
	rec := service.NewRecorder(repository.New(q), log)
	rec.Subscribe(bus)
	return &Module{recorder: rec, handler: handler.New(rec, log)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "activity"
}

// RegisterRoutes mounts the timeline under each entity collection.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/prospects/:id/activities", m.handler.Timeline(string(domain.KindProspect)))
	ctx.Protected.GET("/merchants/:id/activities", m.handler.Timeline(string(domain.KindMerchant)))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
