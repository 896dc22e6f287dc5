package repository

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the entity does not exist.
var ErrNotFound = errors.New("entity not found")

// ErrStatusConflict is returned when the status changed between read and write.
var ErrStatusConflict = errors.New("entity status changed concurrently")

// ListParams filters and pages a list query.
type ListParams struct {
	Status     *string
	AssignedTo *uuid.UUID
	Search     string
	SortBy     string
	SortOrder  string
	Offset     int
	Limit      int
}

// CreateParams holds a new row.
type CreateParams struct {
	ID               uuid.UUID
	Name             string
	BusinessType     string
	DiscoverySource  string
	ContactName      string
	ContactEmail     string
	ContactPhone     string
	SocialMediaLinks string
	Street           string
	City             string
	State            string
	Country          string
	PostalCode       string
	EstimatedValue   float64
	Score            int
	Status           string
	AssignedTo       *uuid.UUID
	About            string
}

// UpdateStatusParams describes a guarded status change. The write only
// applies while the row still has FromStatus.
type UpdateStatusParams struct {
	ID         uuid.UUID
	FromStatus string
	ToStatus   string
	Score      *int
}

// StatusCount is the number of rows in one status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Metrics aggregates pipeline KPIs.
type Metrics struct {
	Total          int           `json:"total"`
	Unassigned     int           `json:"unassigned"`
	AverageScore   float64       `json:"averageScore"`
	EstimatedValue float64       `json:"estimatedValue"`
	ByStatus       []StatusCount `json:"byStatus"`
}
