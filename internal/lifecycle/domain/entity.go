package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entity is a prospect or merchant discovery row.
type Entity struct {
	ID                       uuid.UUID
	Kind                     Kind
	Name                     string
	BusinessType             string
	DiscoverySource          string
	ContactName              string
	ContactEmail             string
	ContactPhone             string
	SocialMediaLinks         string
	Street                   string
	City                     string
	State                    string
	Country                  string
	PostalCode               string
	EstimatedValue           float64
	Score                    *int
	Status                   string
	AssignedTo               *uuid.UUID
	AssignedToName           *string
	ConvertedToOpportunityID *uuid.UUID
	About                    string
	LastActivityAt           *time.Time
	CreatedAt                time.Time
	ModifiedAt               time.Time
}

// ScoreInput extracts the scoring attributes.
func (e Entity) ScoreInput() ScoreInput {
	return ScoreInput{
		BusinessType:     e.BusinessType,
		DiscoverySource:  e.DiscoverySource,
		SocialMediaLinks: e.SocialMediaLinks,
		City:             e.City,
	}
}

// ScoreOrZero returns the persisted score, or 0 when unscored.
func (e Entity) ScoreOrZero() int {
	if e.Score == nil {
		return 0
	}
	return *e.Score
}
