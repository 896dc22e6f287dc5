// Package ports defines consumer-driven interfaces for the dependencies of the
// lifecycle services. Implementations live in internal/adapters or in the
// owning module and are wired in cmd/api.
package ports

import (
	"context"
	"errors"

	"beautycrm_backend/internal/lifecycle/domain"

	"github.com/google/uuid"
)

// ErrRepNotFound is returned by a RepDirectory when the user does not exist.
var ErrRepNotFound = errors.New("sales rep not found")

// SalesRep is the minimal user data the lifecycle needs for assignment.
type SalesRep struct {
	ID       uuid.UUID
	FullName string
	Email    string
	Region   string
	Active   bool
}

// RepDirectory resolves sales reps and territory assignments.
type RepDirectory interface {
	// GetRep returns ErrRepNotFound when the user is unknown.
	GetRep(ctx context.Context, id uuid.UUID) (SalesRep, error)
	// TerritoryRep returns the rep covering city, or ok=false when no active
	// rep matches.
	TerritoryRep(ctx context.Context, city string) (rep SalesRep, ok bool, err error)
}

// AboutGenerator produces about text for an entity. source names the
// strategy that produced it ("lookup", "ai", "template").
type AboutGenerator interface {
	Generate(ctx context.Context, e domain.Entity) (text string, source string, err error)
}

// ImportArchiver stores raw bulk-import payloads and returns the object key.
type ImportArchiver interface {
	ArchiveImport(ctx context.Context, kind domain.Kind, payload []byte) (string, error)
}

// AboutTaskEnqueuer schedules background about generation.
type AboutTaskEnqueuer interface {
	EnqueueGenerateAbout(ctx context.Context, kind domain.Kind, id uuid.UUID) error
}
