package transport

import (
	"time"

	"github.com/google/uuid"
)

type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

type AccountResponse struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	AccountType      string            `json:"accountType"`
	Street           string            `json:"street"`
	City             string            `json:"city"`
	State            string            `json:"state"`
	Country          string            `json:"country"`
	PostalCode       string            `json:"postalCode"`
	OwnerID          *uuid.UUID        `json:"ownerId,omitempty"`
	SourceProspectID *uuid.UUID        `json:"sourceProspectId,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	Contacts         []ContactResponse `json:"contacts"`
}
