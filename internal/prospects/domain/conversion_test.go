package domain

import (
	"testing"
	"time"

	lifecycle "beautycrm_backend/internal/lifecycle/domain"

	"github.com/google/uuid"
)

func TestMapAccountType(t *testing.T) {
	cases := map[string]string{
		"Salon":       AccountTypeSalon,
		"spa":         AccountTypeSpa,
		"Retailer":    AccountTypeRetail,
		"Kiosk":       AccountTypeRetail,
		"E-commerce":  AccountTypeOnline,
		"Distributor": AccountTypeDistributor,
		"Freelancer":  AccountTypeOther,
		"":            AccountTypeOther,
	}
	for in, want := range cases {
		if got := MapAccountType(in); got != want {
			t.Errorf("MapAccountType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildContactSplitsName(t *testing.T) {
	cases := []struct {
		name        string
		contactName string
		prospect    string
		first, last string
	}{
		{"three tokens", "Ahmad Bin Ali", "Glow", "Ahmad", "Bin Ali"},
		{"single token", "Siti", "Glow", "Siti", ""},
		{"falls back to prospect name", "  ", "Glow Beauty", "Glow", "Beauty"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := BuildContact(lifecycle.Entity{Name: tc.prospect, ContactName: tc.contactName}, ContactOverrides{})
			if c.FirstName != tc.first || c.LastName != tc.last {
				t.Fatalf("got %q/%q, want %q/%q", c.FirstName, c.LastName, tc.first, tc.last)
			}
		})
	}
}

func TestBuildContactOverridesWin(t *testing.T) {
	first := "Nur"
	c := BuildContact(lifecycle.Entity{ContactName: "Ahmad Bin Ali"}, ContactOverrides{FirstName: &first})
	if c.FirstName != "Nur" || c.LastName != "Bin Ali" {
		t.Fatalf("got %q/%q", c.FirstName, c.LastName)
	}
}

func TestBuildOpportunityDefaults(t *testing.T) {
	score := 85
	rep := uuid.New()
	p := lifecycle.Entity{Name: "Glow", Score: &score, EstimatedValue: 12000, AssignedTo: &rep}
	now := time.Date(2026, 3, 10, 22, 30, 0, 0, time.UTC)

	d := BuildOpportunity(p, OpportunityOverrides{}, Defaults{CloseDateHorizon: 90 * 24 * time.Hour}, now)

	if d.Name != "Glow Opportunity" || d.Stage != StageProspecting {
		t.Fatalf("unexpected name/stage %q/%q", d.Name, d.Stage)
	}
	if d.Probability != 85 || d.Amount != 12000 || d.ExpectedRevenue != 12000 {
		t.Fatalf("unexpected numbers %+v", d)
	}
	if d.Currency != "MYR" {
		t.Fatalf("currency = %q", d.Currency)
	}
	wantClose := time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC)
	if !d.ExpectedCloseDate.Equal(wantClose) {
		t.Fatalf("close date = %v, want %v", d.ExpectedCloseDate, wantClose)
	}
	if d.OwnerID == nil || *d.OwnerID != rep {
		t.Fatalf("owner should default to assignee")
	}
}

func TestBuildOpportunityUnscoredProbability(t *testing.T) {
	d := BuildOpportunity(lifecycle.Entity{Name: "X"}, OpportunityOverrides{}, Defaults{Currency: "SGD"}, time.Now())
	if d.Probability != 0 || d.Currency != "SGD" {
		t.Fatalf("got probability %d currency %q", d.Probability, d.Currency)
	}
}

func TestBuildAccountOverrides(t *testing.T) {
	name := "Glow HQ"
	a := BuildAccount(lifecycle.Entity{Name: "Glow", BusinessType: "Kiosk", City: "Ipoh"}, AccountOverrides{Name: &name})
	if a.Name != "Glow HQ" || a.AccountType != AccountTypeRetail || a.City != "Ipoh" {
		t.Fatalf("unexpected account %+v", a)
	}
}
