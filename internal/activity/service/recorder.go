// Package service records lifecycle events into the activity timeline and
// serves it back.
package service

import (
	"context"
	"encoding/json"

	"beautycrm_backend/internal/activity/repository"
	"beautycrm_backend/internal/events"
	"beautycrm_backend/platform/apperr"
	"beautycrm_backend/platform/logger"

	"github.com/google/uuid"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// Store persists and lists timeline entries.
type Store interface {
	Create(ctx context.Context, p repository.CreateParams) error
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, limit int) ([]repository.Activity, error)
}

// Recorder turns domain events into timeline entries.
type Recorder struct {
	store Store
	log   *logger.Logger
}

// NewRecorder creates a recorder.
func NewRecorder(store Store, log *logger.Logger) *Recorder {
	if log == nil {
		log = logger.Nop()
	}
	return &Recorder{store: store, log: log}
}

// Subscribe registers the recorder on every lifecycle event.
func (r *Recorder) Subscribe(bus events.Bus) {
	for _, name := range []string{
		events.NameEntityStatusChanged,
		events.NameEntityQualified,
		events.NameEntityAssigned,
		events.NameEntityAboutUpdated,
		events.NameEntitiesImported,
		events.NameOpportunityCreated,
		events.NameProspectConverted,
	} {
		bus.Subscribe(name, events.HandlerFunc(r.Handle))
	}
}

// Handle writes the timeline entries for one event.
func (r *Recorder) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.EntityStatusChanged:
		return r.write(ctx, e.EntityType, e.EntityID, e.ActorID, "status_changed", map[string]string{"from": e.From, "to": e.To})
	case events.EntityQualified:
		return r.write(ctx, e.EntityType, e.EntityID, e.ActorID, "qualified", map[string]int{"score": e.Score})
	case events.EntityAssigned:
		return r.write(ctx, e.EntityType, e.EntityID, e.ActorID, "assigned", map[string]any{
			"repId":     e.RepID,
			"repName":   e.RepName,
			"automatic": e.Automatic,
		})
	case events.EntityAboutUpdated:
		return r.write(ctx, e.EntityType, e.EntityID, e.ActorID, "about_generated", map[string]string{"source": e.Source})
	case events.EntitiesImported:
		for _, id := range e.IDs {
			if err := r.write(ctx, e.EntityType, id, e.ActorID, "imported", map[string]string{"archiveKey": e.ArchiveKey}); err != nil {
				return err
			}
		}
		return nil
	case events.OpportunityCreated:
		return r.write(ctx, "prospect", e.ProspectID, e.ActorID, "opportunity_created", map[string]uuid.UUID{"opportunityId": e.OpportunityID})
	case events.ProspectConverted:
		return r.write(ctx, "prospect", e.ProspectID, e.ActorID, "converted", map[string]uuid.UUID{
			"accountId":     e.AccountID,
			"contactId":     e.ContactID,
			"opportunityId": e.OpportunityID,
		})
	default:
		return nil
	}
}

// List returns the newest timeline entries of one entity.
func (r *Recorder) List(ctx context.Context, entityType string, entityID uuid.UUID, limit int) ([]repository.Activity, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	items, err := r.store.ListByEntity(ctx, entityType, entityID, limit)
	if err != nil {
		return nil, apperr.Internal("list activities failed", err).WithOp("activity.List")
	}
	return items, nil
}

func (r *Recorder) write(ctx context.Context, entityType string, entityID, actorID uuid.UUID, action string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	var actor *uuid.UUID
	if actorID != uuid.Nil {
		actor = &actorID
	}
	if err := r.store.Create(ctx, repository.CreateParams{
		EntityType: entityType,
		EntityID:   entityID,
		ActorID:    actor,
		Action:     action,
		Payload:    raw,
	}); err != nil {
		r.log.Error("failed to record activity", "entity", entityType, "id", entityID, "action", action, "error", err)
		return err
	}
	return nil
}
