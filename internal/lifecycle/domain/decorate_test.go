package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSplitContactName(t *testing.T) {
	cases := []struct {
		in, first, last string
	}{
		{"Ahmad Bin Ali", "Ahmad", "Bin Ali"},
		{"Siti", "Siti", ""},
		{"  Tan   Mei  Ling ", "Tan", "Mei Ling"},
		{"", "", ""},
	}
	for _, tc := range cases {
		first, last := SplitContactName(tc.in)
		if first != tc.first || last != tc.last {
			t.Errorf("SplitContactName(%q) = %q/%q, want %q/%q", tc.in, first, last, tc.first, tc.last)
		}
	}
}

func TestDecorateUsesRealDataOutsideDemoMode(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	rep := "Nurul Huda"
	repID := uuid.New()
	activity := now.Add(-72 * time.Hour)

	e := Entity{
		ID:             uuid.New(),
		Status:         ProspectStatusQualified,
		Score:          intPtr(82),
		AssignedTo:     &repID,
		AssignedToName: &rep,
		ContactName:    "Ahmad Bin Ali",
		ContactPhone:   "+60123456789",
		LastActivityAt: &activity,
		ModifiedAt:     now.Add(-240 * time.Hour),
	}

	vf := Prospect.Decorate(e, now, false)

	if vf.Phase != 2 || vf.PhaseCriticality != 2 {
		t.Errorf("expected phase 2/2, got %d/%d", vf.Phase, vf.PhaseCriticality)
	}
	if vf.PriorityTier != 5 || vf.PriorityCriticality != "red" {
		t.Errorf("expected tier 5 red, got %d %s", vf.PriorityTier, vf.PriorityCriticality)
	}
	if vf.AssignedToName != rep {
		t.Errorf("expected assignee name, got %q", vf.AssignedToName)
	}
	if vf.LastFollowUp != "3 days ago" {
		t.Errorf("expected humanized activity age, got %q", vf.LastFollowUp)
	}
	if vf.PendingItems != "2 pending: contact email, about" {
		t.Errorf("unexpected pending items %q", vf.PendingItems)
	}
}

func TestDecorateDegradesWithoutData(t *testing.T) {
	vf := Merchant.Decorate(Entity{ID: uuid.New()}, time.Now(), false)

	if vf.PriorityTier != 0 || vf.PriorityCriticality != "" {
		t.Errorf("expected no priority for unscored entity, got %d %q", vf.PriorityTier, vf.PriorityCriticality)
	}
	if vf.AssignedToName != "Unassigned" {
		t.Errorf("expected Unassigned, got %q", vf.AssignedToName)
	}
	if vf.LastFollowUp != "Never" {
		t.Errorf("expected Never, got %q", vf.LastFollowUp)
	}
	if vf.Phase != 1 {
		t.Errorf("expected phase 1, got %d", vf.Phase)
	}
}

func TestDecorateDemoModeIsDeterministic(t *testing.T) {
	e := Entity{ID: uuid.MustParse("6f1d3c1e-0c1b-4b55-9f55-1f2f1e7d0a10"), Status: ProspectStatusNew}
	a := Prospect.Decorate(e, time.Now(), true)
	b := Prospect.Decorate(e, time.Now().Add(time.Hour), true)

	if a != b {
		t.Fatalf("expected identical demo fields, got %+v vs %+v", a, b)
	}
	found := false
	for _, v := range demoFollowUps {
		if v == a.LastFollowUp {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected canned follow-up, got %q", a.LastFollowUp)
	}
}

func TestPendingListEmptyForTerminalStatus(t *testing.T) {
	if items := Prospect.PendingList(Entity{Status: ProspectStatusLost}); len(items) != 0 {
		t.Fatalf("expected no pending items for lost prospect, got %s", strings.Join(items, ","))
	}
}
