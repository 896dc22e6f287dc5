// Package lifecycle wires the shared scoring and status lifecycle for one
// entity type. The prospects and merchants modules each mount one.
package lifecycle

import (
	"beautycrm_backend/internal/events"
	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/internal/lifecycle/handler"
	"beautycrm_backend/internal/lifecycle/ports"
	"beautycrm_backend/internal/lifecycle/repository"
	"beautycrm_backend/internal/lifecycle/service"
	"beautycrm_backend/platform/db"
	"beautycrm_backend/platform/logger"
	"beautycrm_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators shared by every entity type.
type Deps struct {
	DB        db.Querier
	Reps      ports.RepDirectory
	About     ports.AboutGenerator
	Bus       events.Bus
	Validator *validator.Validator
	Log       *logger.Logger
	DemoMode  bool
}

// EntityLifecycle bundles the repository, service and handler of one type.
type EntityLifecycle struct {
	repo    *repository.Repository
	svc     *service.Service
	handler *handler.Handler
}

// New builds the lifecycle stack for et.
func New(et domain.EntityType, deps Deps) *EntityLifecycle {
	repo := repository.New(deps.DB, repository.TableFor(et.Kind))
	svc := service.New(et, service.Deps{
		Repo:      repo,
		Reps:      deps.Reps,
		About:     deps.About,
		Bus:       deps.Bus,
		Validator: deps.Validator,
		Log:       deps.Log,
		DemoMode:  deps.DemoMode,
	})
	return &EntityLifecycle{
		repo:    repo,
		svc:     svc,
		handler: handler.New(svc, deps.Validator, deps.Log),
	}
}

// Repository returns the entity repository.
func (l *EntityLifecycle) Repository() *repository.Repository {
	return l.repo
}

// Service returns the lifecycle service.
func (l *EntityLifecycle) Service() *service.Service {
	return l.svc
}

// RegisterRoutes mounts the shared lifecycle routes on rg.
func (l *EntityLifecycle) RegisterRoutes(rg *gin.RouterGroup) {
	l.handler.RegisterRoutes(rg)
}
