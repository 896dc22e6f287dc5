package repository

import (
	"context"

	"beautycrm_backend/internal/lifecycle/domain"

	"github.com/google/uuid"
)

// =====================================
// Segregated Interfaces
// =====================================

// EntityReader provides read-only access to pipeline entities.
type EntityReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Entity, error)
	List(ctx context.Context, params ListParams) ([]domain.Entity, int, error)
}

// EntityWriter provides the lifecycle mutations.
type EntityWriter interface {
	Create(ctx context.Context, params CreateParams) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, params UpdateStatusParams) (domain.Entity, error)
	UpdateScore(ctx context.Context, id uuid.UUID, score int) error
	Assign(ctx context.Context, id uuid.UUID, repID uuid.UUID) error
	UpdateAbout(ctx context.Context, id uuid.UUID, about string) error
}

// RescoreSource pages through rows for batch rescoring.
type RescoreSource interface {
	ListActiveAfter(ctx context.Context, after uuid.UUID, limit int) ([]domain.Entity, error)
	UpdateScore(ctx context.Context, id uuid.UUID, score int) error
}

// MetricsReader provides pipeline KPI aggregates.
type MetricsReader interface {
	GetMetrics(ctx context.Context) (Metrics, error)
}

// EntityRepository is the full repository contract used by the lifecycle service.
type EntityRepository interface {
	EntityReader
	EntityWriter
	MetricsReader
}
