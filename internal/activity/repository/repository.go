package repository

import (
	"context"
	"encoding/json"
	"time"

	"beautycrm_backend/platform/db"

	"github.com/google/uuid"
)

// Activity is one timeline entry of a prospect or merchant discovery.
type Activity struct {
	ID         uuid.UUID       `json:"id"`
	EntityType string          `json:"entityType"`
	EntityID   uuid.UUID       `json:"entityId"`
	ActorID    *uuid.UUID      `json:"actorId,omitempty"`
	Action     string          `json:"action"`
	Payload    json.RawMessage `json:"payload"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type CreateParams struct {
	EntityType string
	EntityID   uuid.UUID
	ActorID    *uuid.UUID
	Action     string
	Payload    json.RawMessage
}

// Repository stores timeline entries.
type Repository struct {
	db db.Querier
}

// New creates an activity repository.
func New(q db.Querier) *Repository {
	return &Repository{db: q}
}

// Create appends an entry.
func (r *Repository) Create(ctx context.Context, p CreateParams) error {
	payload := p.Payload
	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO entity_activities (id, entity_type, entity_id, actor_id, action, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.New(), p.EntityType, p.EntityID, p.ActorID, p.Action, payload)
	return err
}

// ListByEntity returns the newest entries first.
func (r *Repository) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, limit int) ([]Activity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, entity_type, entity_id, actor_id, action, payload, created_at
		FROM entity_activities
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC
		LIMIT $3
	`, entityType, entityID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Activity, 0)
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.EntityType, &a.EntityID, &a.ActorID, &a.Action, &a.Payload, &a.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
