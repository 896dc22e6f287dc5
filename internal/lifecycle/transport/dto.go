package transport

import (
	"time"

	"beautycrm_backend/internal/lifecycle/domain"

	"github.com/google/uuid"
)

// Request DTOs
type ListRequest struct {
	Status     string `form:"status" validate:"max=40"`
	AssignedTo string `form:"assignedTo" validate:"omitempty,uuid"`
	Search     string `form:"search" validate:"max=100"`
	Page       int    `form:"page" validate:"omitempty,min=1"`
	PageSize   int    `form:"pageSize" validate:"omitempty,min=1,max=100"`
	SortBy     string `form:"sortBy" validate:"omitempty,oneof=name score status city createdAt modifiedAt"`
	SortOrder  string `form:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

type AssignRequest struct {
	SalesRepID uuid.UUID `json:"salesRepId" validate:"required"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,max=40"`
}

// ImportRow is one element of a bulk import payload.
type ImportRow struct {
	Name             string  `json:"name" validate:"required,max=200"`
	BusinessType     string  `json:"businessType" validate:"max=50,businesstype"`
	DiscoverySource  string  `json:"discoverySource" validate:"max=50,discoverysource"`
	ContactName      string  `json:"contactName" validate:"max=200"`
	ContactEmail     string  `json:"contactEmail" validate:"omitempty,email,max=254"`
	ContactPhone     string  `json:"contactPhone" validate:"max=40"`
	SocialMediaLinks string  `json:"socialMediaLinks" validate:"max=2000"`
	Street           string  `json:"street" validate:"max=200"`
	City             string  `json:"city" validate:"max=100"`
	State            string  `json:"state" validate:"max=100"`
	Country          string  `json:"country" validate:"max=100"`
	PostalCode       string  `json:"postalCode" validate:"max=20"`
	EstimatedValue   float64 `json:"estimatedValue" validate:"min=0"`
}

// Response DTOs
type EntityResponse struct {
	ID                       uuid.UUID  `json:"id"`
	Name                     string     `json:"name"`
	BusinessType             string     `json:"businessType"`
	DiscoverySource          string     `json:"discoverySource"`
	ContactName              string     `json:"contactName"`
	ContactEmail             string     `json:"contactEmail"`
	ContactPhone             string     `json:"contactPhone"`
	SocialMediaLinks         string     `json:"socialMediaLinks"`
	Street                   string     `json:"street"`
	City                     string     `json:"city"`
	State                    string     `json:"state"`
	Country                  string     `json:"country"`
	PostalCode               string     `json:"postalCode"`
	EstimatedValue           float64    `json:"estimatedValue"`
	Score                    *int       `json:"score"`
	Status                   string     `json:"status"`
	AssignedTo               *uuid.UUID `json:"assignedTo,omitempty"`
	ConvertedToOpportunityID *uuid.UUID `json:"convertedToOpportunityId,omitempty"`
	About                    string     `json:"about"`
	CreatedAt                time.Time  `json:"createdAt"`
	ModifiedAt               time.Time  `json:"modifiedAt"`

	// Virtual fields, computed on read
	Phase               int    `json:"phase"`
	PhaseCriticality    int    `json:"phaseCriticality"`
	PriorityTier        int    `json:"priorityTier"`
	PriorityCriticality string `json:"priorityCriticality"`
	AssignedToName      string `json:"assignedToName"`
	LastFollowUp        string `json:"lastFollowUp"`
	PendingItems        string `json:"pendingItems"`
}

type ListResponse struct {
	Items      []EntityResponse `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

type QualifyResponse struct {
	Status string `json:"status"`
	Score  int    `json:"score"`
}

type AssignResponse struct {
	SalesRepName string `json:"salesRepName"`
}

type SkippedRow struct {
	Index  int               `json:"index"`
	Reason string            `json:"reason"`
	Fields map[string]string `json:"fields,omitempty"`
}

type BulkImportResponse struct {
	Count      int          `json:"count"`
	IDs        []uuid.UUID  `json:"ids"`
	Skipped    []SkippedRow `json:"skipped"`
	ArchiveKey string       `json:"archiveKey,omitempty"`
}

// ToEntityResponse merges stored fields with the computed virtual fields.
func ToEntityResponse(e domain.Entity, vf domain.VirtualFields) EntityResponse {
	return EntityResponse{
		ID:                       e.ID,
		Name:                     e.Name,
		BusinessType:             e.BusinessType,
		DiscoverySource:          e.DiscoverySource,
		ContactName:              e.ContactName,
		ContactEmail:             e.ContactEmail,
		ContactPhone:             e.ContactPhone,
		SocialMediaLinks:         e.SocialMediaLinks,
		Street:                   e.Street,
		City:                     e.City,
		State:                    e.State,
		Country:                  e.Country,
		PostalCode:               e.PostalCode,
		EstimatedValue:           e.EstimatedValue,
		Score:                    e.Score,
		Status:                   e.Status,
		AssignedTo:               e.AssignedTo,
		ConvertedToOpportunityID: e.ConvertedToOpportunityID,
		About:                    e.About,
		CreatedAt:                e.CreatedAt,
		ModifiedAt:               e.ModifiedAt,
		Phase:                    vf.Phase,
		PhaseCriticality:         vf.PhaseCriticality,
		PriorityTier:             vf.PriorityTier,
		PriorityCriticality:      vf.PriorityCriticality,
		AssignedToName:           vf.AssignedToName,
		LastFollowUp:             vf.LastFollowUp,
		PendingItems:             vf.PendingItems,
	}
}
