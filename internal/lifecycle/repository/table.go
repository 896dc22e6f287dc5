package repository

import "beautycrm_backend/internal/lifecycle/domain"

// Table binds an entity kind to its storage. Names are fixed here and never
// come from input, so they are safe to interpolate into SQL.
type Table struct {
	Kind domain.Kind
	Name string
	// OpportunityColumn selects the converted-opportunity FK, or a typed NULL
	// for tables without one.
	OpportunityColumn string
}

var (
	// Prospects stores prospects.
	Prospects = Table{Kind: domain.KindProspect, Name: "prospects", OpportunityColumn: "e.converted_to_opportunity_id"}
	// MerchantDiscoveries stores merchant discoveries.
	MerchantDiscoveries = Table{Kind: domain.KindMerchant, Name: "merchant_discoveries", OpportunityColumn: "NULL::uuid"}
)

// TableFor returns the table of kind.
func TableFor(kind domain.Kind) Table {
	if kind == domain.KindMerchant {
		return MerchantDiscoveries
	}
	return Prospects
}
