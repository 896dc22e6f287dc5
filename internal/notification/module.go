// Package notification provides event handlers for sending notifications
// in response to domain events. Domain modules publish events and never talk
// to the email provider directly.
package notification

import (
	"context"
	"fmt"

	"beautycrm_backend/internal/email"
	"beautycrm_backend/internal/events"
	"beautycrm_backend/platform/logger"
)

// Module sends notifications for lifecycle events.
type Module struct {
	sender  email.Sender
	baseURL string
	log     *logger.Logger
}

// New creates the notification module. baseURL may be empty, in which case
// emails carry no link.
func New(sender email.Sender, baseURL string, log *logger.Logger) *Module {
	if log == nil {
		log = logger.Nop()
	}
	return &Module{sender: sender, baseURL: baseURL, log: log}
}

// RegisterHandlers subscribes to the events that trigger notifications.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.EntityAssigned{}.EventName(), m)

	m.log.Info("notification module registered event handlers")
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.EntityAssigned:
		return m.handleEntityAssigned(ctx, e)
	default:
		return nil
	}
}

func (m *Module) handleEntityAssigned(ctx context.Context, e events.EntityAssigned) error {
	if e.RepEmail == "" {
		m.log.Warn("assignment email skipped, rep has no email", "repId", e.RepID)
		return nil
	}

	err := m.sender.SendAssignmentEmail(ctx, e.RepEmail, email.Assignment{
		RepName:    e.RepName,
		EntityType: e.EntityType,
		EntityName: e.EntityName,
		EntityURL:  m.entityURL(e.EntityType, e.EntityID.String()),
		Automatic:  e.Automatic,
	})
	if err != nil {
		m.log.Error("failed to send assignment email", "error", err, "repId", e.RepID, "entityId", e.EntityID)
		return err
	}

	m.log.Info("assignment email sent", "repId", e.RepID, "entityId", e.EntityID, "automatic", e.Automatic)
	return nil
}

func (m *Module) entityURL(entityType, id string) string {
	if m.baseURL == "" {
		return ""
	}
	collection := "prospects"
	if entityType == "merchant" {
		collection = "merchants"
	}
	return fmt.Sprintf("%s/%s/%s", m.baseURL, collection, id)
}
