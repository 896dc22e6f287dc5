// Package domain holds the pure lifecycle rules shared by prospects and
// merchant discoveries: scoring, phase mapping, status transitions and the
// read-time virtual fields. Nothing here touches storage or transport.
package domain

import "strings"

// Kind identifies a pipeline entity type.
type Kind string

const (
	KindProspect Kind = "prospect"
	KindMerchant Kind = "merchant"
)

// Prospect statuses in forward order, plus the negative terminal status.
const (
	ProspectStatusNew         = "New"
	ProspectStatusContacted   = "Contacted"
	ProspectStatusQualified   = "Qualified"
	ProspectStatusNegotiating = "Negotiating"
	ProspectStatusInReview    = "In Review"
	ProspectStatusConverted   = "Converted"
	ProspectStatusLost        = "Lost"
)

// Merchant discovery statuses in forward order, plus the negative terminal status.
const (
	MerchantStatusDiscovered  = "Discovered"
	MerchantStatusContacted   = "Contacted"
	MerchantStatusQualified   = "Qualified"
	MerchantStatusNegotiating = "Negotiating"
	MerchantStatusOnboarded   = "Onboarded"
	MerchantStatusRejected    = "Rejected"
)

// EntityType parameterizes every lifecycle rule for one entity type.
type EntityType struct {
	Kind Kind
	// Label is the human name used in messages ("prospect").
	Label string
	// Statuses is the forward-only ordered list. The last entry is terminal.
	Statuses []string
	// NegativeStatuses are terminal and reachable from any non-terminal status.
	NegativeStatuses []string
	// QualifiedStatus triggers a score recomputation when entered.
	QualifiedStatus string
	// ConversionStatus can only be entered through conversion. Empty when the
	// type has no conversion flow.
	ConversionStatus string
	// PhaseByStatus maps statuses to display phases 1..3.
	PhaseByStatus map[string]int
}

// Prospect is the lifecycle configuration of prospects.
var Prospect = EntityType{
	Kind:  KindProspect,
	Label: "prospect",
	Statuses: []string{
		ProspectStatusNew,
		ProspectStatusContacted,
		ProspectStatusQualified,
		ProspectStatusNegotiating,
		ProspectStatusInReview,
		ProspectStatusConverted,
	},
	NegativeStatuses: []string{ProspectStatusLost},
	QualifiedStatus:  ProspectStatusQualified,
	ConversionStatus: ProspectStatusConverted,
	PhaseByStatus: map[string]int{
		ProspectStatusNew:         1,
		ProspectStatusContacted:   1,
		ProspectStatusLost:        1,
		ProspectStatusQualified:   2,
		ProspectStatusNegotiating: 2,
		ProspectStatusInReview:    3,
		ProspectStatusConverted:   3,
	},
}

// Merchant is the lifecycle configuration of merchant discoveries.
var Merchant = EntityType{
	Kind:  KindMerchant,
	Label: "merchant",
	Statuses: []string{
		MerchantStatusDiscovered,
		MerchantStatusContacted,
		MerchantStatusQualified,
		MerchantStatusNegotiating,
		MerchantStatusOnboarded,
	},
	NegativeStatuses: []string{MerchantStatusRejected},
	QualifiedStatus:  MerchantStatusQualified,
	PhaseByStatus: map[string]int{
		MerchantStatusDiscovered:  1,
		MerchantStatusContacted:   1,
		MerchantStatusRejected:    1,
		MerchantStatusQualified:   2,
		MerchantStatusNegotiating: 2,
		MerchantStatusOnboarded:   3,
	},
}

// TypeByKind resolves a Kind to its configuration.
func TypeByKind(kind Kind) (EntityType, bool) {
	switch kind {
	case KindProspect:
		return Prospect, true
	case KindMerchant:
		return Merchant, true
	default:
		return EntityType{}, false
	}
}

// InitialStatus is the status new rows start in.
func (t EntityType) InitialStatus() string {
	return t.Statuses[0]
}

// AllowedStatuses lists every valid status value, forward list first.
func (t EntityType) AllowedStatuses() []string {
	out := make([]string, 0, len(t.Statuses)+len(t.NegativeStatuses))
	out = append(out, t.Statuses...)
	return append(out, t.NegativeStatuses...)
}

// IsKnownStatus reports whether status is in the allow-list. Matching is exact.
func (t EntityType) IsKnownStatus(status string) bool {
	for _, s := range t.AllowedStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// CanonicalStatus returns the allow-listed spelling of status, matching
// case-insensitively. ok is false for unknown values.
func (t EntityType) CanonicalStatus(status string) (string, bool) {
	trimmed := strings.TrimSpace(status)
	for _, s := range t.AllowedStatuses() {
		if strings.EqualFold(s, trimmed) {
			return s, true
		}
	}
	return "", false
}

// IsNegative reports whether status is a negative terminal status.
func (t EntityType) IsNegative(status string) bool {
	for _, s := range t.NegativeStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions leave status.
func (t EntityType) IsTerminal(status string) bool {
	return t.IsNegative(status) || status == t.Statuses[len(t.Statuses)-1]
}

// rank is the position in the forward list, or -1 for statuses outside it.
func (t EntityType) rank(status string) int {
	for i, s := range t.Statuses {
		if s == status {
			return i
		}
	}
	return -1
}
