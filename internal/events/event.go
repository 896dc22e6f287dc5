// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"beautycrm_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// Event names.
const (
	NameEntityStatusChanged = "lifecycle.entity.status_changed"
	NameEntityQualified     = "lifecycle.entity.qualified"
	NameEntityAssigned      = "lifecycle.entity.assigned"
	NameEntityAboutUpdated  = "lifecycle.entity.about_updated"
	NameEntitiesImported    = "lifecycle.entities.imported"
	NameOpportunityCreated  = "prospects.opportunity.created"
	NameProspectConverted   = "prospects.prospect.converted"
)

// =============================================================================
// Lifecycle Events (prospects and merchant discoveries)
// =============================================================================

// EntityStatusChanged is published after a status transition is persisted.
type EntityStatusChanged struct {
	BaseEvent
	EntityType string    `json:"entityType"`
	EntityID   uuid.UUID `json:"entityId"`
	ActorID    uuid.UUID `json:"actorId"`
	From       string    `json:"from"`
	To         string    `json:"to"`
}

func (e EntityStatusChanged) EventName() string { return NameEntityStatusChanged }

// EntityQualified is published when an entity is qualified and rescored.
type EntityQualified struct {
	BaseEvent
	EntityType string    `json:"entityType"`
	EntityID   uuid.UUID `json:"entityId"`
	ActorID    uuid.UUID `json:"actorId"`
	Score      int       `json:"score"`
}

func (e EntityQualified) EventName() string { return NameEntityQualified }

// EntityAssigned is published when a sales rep is assigned, manually or by territory.
type EntityAssigned struct {
	BaseEvent
	EntityType string    `json:"entityType"`
	EntityID   uuid.UUID `json:"entityId"`
	EntityName string    `json:"entityName"`
	ActorID    uuid.UUID `json:"actorId"`
	RepID      uuid.UUID `json:"repId"`
	RepName    string    `json:"repName"`
	RepEmail   string    `json:"repEmail"`
	Automatic  bool      `json:"automatic"`
}

func (e EntityAssigned) EventName() string { return NameEntityAssigned }

// EntityAboutUpdated is published when about text is regenerated.
type EntityAboutUpdated struct {
	BaseEvent
	EntityType string    `json:"entityType"`
	EntityID   uuid.UUID `json:"entityId"`
	ActorID    uuid.UUID `json:"actorId"`
	Source     string    `json:"source"`
}

func (e EntityAboutUpdated) EventName() string { return NameEntityAboutUpdated }

// EntitiesImported is published after a bulk import with at least one row.
type EntitiesImported struct {
	BaseEvent
	EntityType string      `json:"entityType"`
	ActorID    uuid.UUID   `json:"actorId"`
	IDs        []uuid.UUID `json:"ids"`
	Skipped    int         `json:"skipped"`
	ArchiveKey string      `json:"archiveKey,omitempty"`
}

func (e EntitiesImported) EventName() string { return NameEntitiesImported }

// =============================================================================
// Prospect Events
// =============================================================================

// OpportunityCreated is published when an opportunity is opened from a prospect.
type OpportunityCreated struct {
	BaseEvent
	ProspectID    uuid.UUID `json:"prospectId"`
	OpportunityID uuid.UUID `json:"opportunityId"`
	ActorID       uuid.UUID `json:"actorId"`
}

func (e OpportunityCreated) EventName() string { return NameOpportunityCreated }

// ProspectConverted is published after a conversion commits.
type ProspectConverted struct {
	BaseEvent
	ProspectID    uuid.UUID `json:"prospectId"`
	AccountID     uuid.UUID `json:"accountId"`
	ContactID     uuid.UUID `json:"contactId"`
	OpportunityID uuid.UUID `json:"opportunityId"`
	ActorID       uuid.UUID `json:"actorId"`
}

func (e ProspectConverted) EventName() string { return NameProspectConverted }
