package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const unassignedLabel = "Unassigned"

var demoFollowUps = []string{
	"2 hours ago",
	"Yesterday",
	"3 days ago",
	"1 week ago",
	"2 weeks ago",
}

var demoPendingItems = []string{
	"None",
	"1 document pending",
	"Awaiting callback",
	"2 follow-ups due",
	"Contract review",
}

// VirtualFields are computed on every read and never persisted.
type VirtualFields struct {
	Phase               int
	PhaseCriticality    int
	PriorityTier        int
	PriorityCriticality string
	AssignedToName      string
	LastFollowUp        string
	PendingItems        string
}

// Decorate derives the display fields for e at time now.
func (t EntityType) Decorate(e Entity, now time.Time, demo bool) VirtualFields {
	id := e.ID.String()
	phase := t.Phase(e.Status, e.Score, id, demo)

	vf := VirtualFields{
		Phase:            phase,
		PhaseCriticality: PhaseCriticality(phase),
		AssignedToName:   unassignedLabel,
	}

	if e.Score != nil {
		vf.PriorityTier = PriorityTier(*e.Score)
		vf.PriorityCriticality = PriorityColor(vf.PriorityTier)
	}

	if e.AssignedToName != nil && strings.TrimSpace(*e.AssignedToName) != "" {
		vf.AssignedToName = *e.AssignedToName
	}

	if demo {
		vf.LastFollowUp = demoFollowUps[DemoIndex(id, len(demoFollowUps))]
		vf.PendingItems = demoPendingItems[DemoIndex(id, len(demoPendingItems))]
		return vf
	}

	vf.LastFollowUp = lastFollowUp(e, now)
	vf.PendingItems = t.pendingItems(e)
	return vf
}

func lastFollowUp(e Entity, now time.Time) string {
	at := e.ModifiedAt
	if e.LastActivityAt != nil && e.LastActivityAt.After(at) {
		at = *e.LastActivityAt
	}
	if at.IsZero() {
		return "Never"
	}
	return humanize.RelTime(at, now, "ago", "from now")
}

// PendingList returns the open items of an entity in a stable order.
func (t EntityType) PendingList(e Entity) []string {
	if t.IsTerminal(e.Status) {
		return nil
	}
	var items []string
	if strings.TrimSpace(e.ContactName) == "" {
		items = append(items, "contact name")
	}
	if strings.TrimSpace(e.ContactEmail) == "" {
		items = append(items, "contact email")
	}
	if strings.TrimSpace(e.ContactPhone) == "" {
		items = append(items, "contact phone")
	}
	if e.AssignedTo == nil {
		items = append(items, "sales rep")
	}
	if e.Score == nil {
		items = append(items, "score")
	}
	if strings.TrimSpace(e.About) == "" {
		items = append(items, "about")
	}
	return items
}

func (t EntityType) pendingItems(e Entity) string {
	items := t.PendingList(e)
	if len(items) == 0 {
		return "None"
	}
	return fmt.Sprintf("%d pending: %s", len(items), strings.Join(items, ", "))
}
