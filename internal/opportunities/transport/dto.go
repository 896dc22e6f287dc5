package transport

import (
	"time"

	"github.com/google/uuid"
)

type OpportunityResponse struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Stage             string     `json:"stage"`
	Probability       int        `json:"probability"`
	Amount            float64    `json:"amount"`
	ExpectedRevenue   float64    `json:"expectedRevenue"`
	Currency          string     `json:"currency"`
	ExpectedCloseDate string     `json:"expectedCloseDate"`
	OwnerID           *uuid.UUID `json:"ownerId,omitempty"`
	AccountID         *uuid.UUID `json:"accountId,omitempty"`
	PrimaryContactID  *uuid.UUID `json:"primaryContactId,omitempty"`
	SourceProspectID  *uuid.UUID `json:"sourceProspectId,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}
