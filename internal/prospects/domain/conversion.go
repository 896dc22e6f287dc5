// Package domain builds the records a prospect turns into when it is
// converted: an account, its primary contact and the opportunity.
package domain

import (
	"strings"
	"time"

	lifecycle "beautycrm_backend/internal/lifecycle/domain"

	"github.com/google/uuid"
)

// Opportunity stages.
const (
	StageProspecting   = "Prospecting"
	StageQualification = "Qualification"
	StageProposal      = "Proposal"
	StageNegotiation   = "Negotiation"
	StageClosedWon     = "Closed Won"
	StageClosedLost    = "Closed Lost"
)

// Stages lists the valid opportunity stages.
var Stages = []string{
	StageProspecting,
	StageQualification,
	StageProposal,
	StageNegotiation,
	StageClosedWon,
	StageClosedLost,
}

// Account types.
const (
	AccountTypeSalon       = "Salon"
	AccountTypeSpa         = "Spa"
	AccountTypeRetail      = "Retail"
	AccountTypeOnline      = "Online"
	AccountTypeDistributor = "Distributor"
	AccountTypeOther       = "Other"
)

// MapAccountType maps a prospect business type to an account type.
func MapAccountType(businessType string) string {
	switch strings.ToLower(strings.TrimSpace(businessType)) {
	case "salon":
		return AccountTypeSalon
	case "spa":
		return AccountTypeSpa
	case "retailer", "kiosk":
		return AccountTypeRetail
	case "e-commerce":
		return AccountTypeOnline
	case "distributor":
		return AccountTypeDistributor
	default:
		return AccountTypeOther
	}
}

// AccountOverrides replaces derived account fields when set.
type AccountOverrides struct {
	Name        *string
	AccountType *string
	Street      *string
	City        *string
	State       *string
	Country     *string
	PostalCode  *string
	OwnerID     *uuid.UUID
}

// ContactOverrides replaces derived contact fields when set.
type ContactOverrides struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

// OpportunityOverrides replaces derived opportunity fields when set.
type OpportunityOverrides struct {
	Name              *string
	Stage             *string
	Probability       *int
	Amount            *float64
	Currency          *string
	ExpectedCloseDate *time.Time
	OwnerID           *uuid.UUID
}

// IsZero reports whether no opportunity field is overridden.
func (o OpportunityOverrides) IsZero() bool {
	return o == OpportunityOverrides{}
}

// Overrides groups everything a caller may supply on conversion.
type Overrides struct {
	Account     AccountOverrides
	Contact     ContactOverrides
	Opportunity OpportunityOverrides
}

// AccountDraft is an account ready to insert.
type AccountDraft struct {
	Name        string
	AccountType string
	Street      string
	City        string
	State       string
	Country     string
	PostalCode  string
	OwnerID     *uuid.UUID
}

// ContactDraft is a contact ready to insert.
type ContactDraft struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// OpportunityDraft is an opportunity ready to insert.
type OpportunityDraft struct {
	Name              string
	Stage             string
	Probability       int
	Amount            float64
	ExpectedRevenue   float64
	Currency          string
	ExpectedCloseDate time.Time
	OwnerID           *uuid.UUID
}

// Defaults holds the configurable opportunity defaults.
type Defaults struct {
	Currency         string
	CloseDateHorizon time.Duration
}

// BuildAccount derives the account from the prospect.
func BuildAccount(p lifecycle.Entity, o AccountOverrides) AccountDraft {
	d := AccountDraft{
		Name:        p.Name,
		AccountType: MapAccountType(p.BusinessType),
		Street:      p.Street,
		City:        p.City,
		State:       p.State,
		Country:     p.Country,
		PostalCode:  p.PostalCode,
		OwnerID:     p.AssignedTo,
	}
	setString(&d.Name, o.Name)
	setString(&d.AccountType, o.AccountType)
	setString(&d.Street, o.Street)
	setString(&d.City, o.City)
	setString(&d.State, o.State)
	setString(&d.Country, o.Country)
	setString(&d.PostalCode, o.PostalCode)
	if o.OwnerID != nil {
		d.OwnerID = o.OwnerID
	}
	return d
}

// BuildContact derives the primary contact. Without a contact name the
// prospect name is split instead.
func BuildContact(p lifecycle.Entity, o ContactOverrides) ContactDraft {
	source := p.ContactName
	if strings.TrimSpace(source) == "" {
		source = p.Name
	}
	first, last := lifecycle.SplitContactName(source)

	d := ContactDraft{
		FirstName: first,
		LastName:  last,
		Email:     p.ContactEmail,
		Phone:     p.ContactPhone,
	}
	setString(&d.FirstName, o.FirstName)
	setString(&d.LastName, o.LastName)
	setString(&d.Email, o.Email)
	setString(&d.Phone, o.Phone)
	return d
}

// BuildOpportunity derives the opportunity. now fixes "today" for the
// default close date, which is a UTC date.
func BuildOpportunity(p lifecycle.Entity, o OpportunityOverrides, defaults Defaults, now time.Time) OpportunityDraft {
	today := now.UTC().Truncate(24 * time.Hour)
	d := OpportunityDraft{
		Name:              p.Name + " Opportunity",
		Stage:             StageProspecting,
		Probability:       p.ScoreOrZero(),
		Amount:            p.EstimatedValue,
		ExpectedRevenue:   p.EstimatedValue,
		Currency:          defaults.Currency,
		ExpectedCloseDate: today.Add(defaults.CloseDateHorizon),
		OwnerID:           p.AssignedTo,
	}
	setString(&d.Name, o.Name)
	setString(&d.Stage, o.Stage)
	setString(&d.Currency, o.Currency)
	if o.Probability != nil {
		d.Probability = *o.Probability
	}
	if o.Amount != nil {
		d.Amount = *o.Amount
		d.ExpectedRevenue = *o.Amount
	}
	if o.ExpectedCloseDate != nil {
		d.ExpectedCloseDate = o.ExpectedCloseDate.UTC().Truncate(24 * time.Hour)
	}
	if o.OwnerID != nil {
		d.OwnerID = o.OwnerID
	}
	if d.Currency == "" {
		d.Currency = "MYR"
	}
	return d
}

func setString(dst *string, v *string) {
	if v != nil && strings.TrimSpace(*v) != "" {
		*dst = strings.TrimSpace(*v)
	}
}
