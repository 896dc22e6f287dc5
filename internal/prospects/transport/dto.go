package transport

import (
	"time"

	"beautycrm_backend/internal/prospects/domain"

	"github.com/google/uuid"
)

// Date accepts "2006-01-02" or RFC 3339 in JSON bodies.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
	}
	d.Time = t
	return nil
}

type AccountOverrides struct {
	Name        *string    `json:"name" validate:"omitempty,max=200"`
	AccountType *string    `json:"accountType" validate:"omitempty,oneof=Salon Spa Retail Online Distributor Other"`
	Street      *string    `json:"street" validate:"omitempty,max=200"`
	City        *string    `json:"city" validate:"omitempty,max=100"`
	State       *string    `json:"state" validate:"omitempty,max=100"`
	Country     *string    `json:"country" validate:"omitempty,max=100"`
	PostalCode  *string    `json:"postalCode" validate:"omitempty,max=20"`
	OwnerID     *uuid.UUID `json:"ownerId"`
}

type ContactOverrides struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=40"`
}

type OpportunityOverrides struct {
	Name              *string    `json:"name" validate:"omitempty,max=200"`
	Stage             *string    `json:"stage" validate:"omitempty,oneof='Prospecting' 'Qualification' 'Proposal' 'Negotiation' 'Closed Won' 'Closed Lost'"`
	Probability       *int       `json:"probability" validate:"omitempty,min=0,max=100"`
	Amount            *float64   `json:"amount" validate:"omitempty,min=0"`
	Currency          *string    `json:"currency" validate:"omitempty,len=3,alpha"`
	ExpectedCloseDate *Date      `json:"expectedCloseDate"`
	OwnerID           *uuid.UUID `json:"ownerId"`
}

// CreateOpportunityRequest is the body of POST /prospects/:id/opportunity.
type CreateOpportunityRequest struct {
	OpportunityOverrides
}

// ConvertRequest is the body of POST /prospects/:id/convert.
type ConvertRequest struct {
	Account     AccountOverrides     `json:"account"`
	Contact     ContactOverrides     `json:"contact"`
	Opportunity OpportunityOverrides `json:"opportunity"`
}

type CreateOpportunityResponse struct {
	OpportunityID uuid.UUID `json:"opportunityId"`
}

type ConvertResponse struct {
	AccountID     uuid.UUID `json:"accountId"`
	ContactID     uuid.UUID `json:"contactId"`
	OpportunityID uuid.UUID `json:"opportunityId"`
}

// ToDomain converts opportunity overrides.
func (o OpportunityOverrides) ToDomain() domain.OpportunityOverrides {
	out := domain.OpportunityOverrides{
		Name:        o.Name,
		Stage:       o.Stage,
		Probability: o.Probability,
		Amount:      o.Amount,
		Currency:    o.Currency,
		OwnerID:     o.OwnerID,
	}
	if o.ExpectedCloseDate != nil && !o.ExpectedCloseDate.IsZero() {
		t := o.ExpectedCloseDate.Time
		out.ExpectedCloseDate = &t
	}
	return out
}

// ToDomain converts the full conversion request.
func (r ConvertRequest) ToDomain() domain.Overrides {
	return domain.Overrides{
		Account: domain.AccountOverrides{
			Name:        r.Account.Name,
			AccountType: r.Account.AccountType,
			Street:      r.Account.Street,
			City:        r.Account.City,
			State:       r.Account.State,
			Country:     r.Account.Country,
			PostalCode:  r.Account.PostalCode,
			OwnerID:     r.Account.OwnerID,
		},
		Contact: domain.ContactOverrides{
			FirstName: r.Contact.FirstName,
			LastName:  r.Contact.LastName,
			Email:     r.Contact.Email,
			Phone:     r.Contact.Phone,
		},
		Opportunity: r.Opportunity.ToDomain(),
	}
}
