package domain

import "testing"

func intPtr(v int) *int { return &v }

func TestPhaseUsesStatusTableFirst(t *testing.T) {
	cases := []struct {
		et     EntityType
		status string
		score  *int
		want   int
	}{
		{Prospect, ProspectStatusNew, intPtr(99), 1},
		{Prospect, ProspectStatusQualified, nil, 2},
		{Prospect, ProspectStatusInReview, intPtr(10), 3},
		{Prospect, ProspectStatusLost, intPtr(90), 1},
		{Merchant, MerchantStatusOnboarded, nil, 3},
	}
	for _, tc := range cases {
		if got := tc.et.Phase(tc.status, tc.score, "id", false); got != tc.want {
			t.Errorf("%s/%s: expected phase %d, got %d", tc.et.Kind, tc.status, tc.want, got)
		}
	}
}

func TestPhaseFallsBackToScoreBuckets(t *testing.T) {
	cases := []struct {
		score int
		want  int
	}{
		{100, 3}, {85, 3}, {84, 2}, {70, 2}, {69, 1}, {0, 1},
	}
	for _, tc := range cases {
		if got := Prospect.Phase("", intPtr(tc.score), "id", false); got != tc.want {
			t.Errorf("score %d: expected %d, got %d", tc.score, tc.want, got)
		}
	}
}

func TestPhaseHashOnlyInDemoMode(t *testing.T) {
	// 'b' is 98 and 98 % 3 = 2.
	if got := Prospect.Phase("", nil, "b", true); got != 3 {
		t.Fatalf("expected demo phase 3, got %d", got)
	}
	if got := Prospect.Phase("", nil, "b", false); got != 1 {
		t.Fatalf("expected default phase 1 outside demo mode, got %d", got)
	}
}

func TestPhaseCriticality(t *testing.T) {
	if PhaseCriticality(1) != 1 || PhaseCriticality(2) != 2 || PhaseCriticality(3) != 3 {
		t.Fatalf("unexpected criticality mapping")
	}
	if PhaseCriticality(0) != CriticalityNegative {
		t.Fatalf("expected unknown phases to map to negative")
	}
}

func TestPriorityTierThresholdsAndColors(t *testing.T) {
	cases := []struct {
		score int
		tier  int
		color string
	}{
		{100, 5, "red"},
		{80, 5, "red"},
		{79, 4, "orange"},
		{60, 4, "orange"},
		{59, 3, "yellow"},
		{40, 3, "yellow"},
		{39, 2, "light green"},
		{20, 2, "light green"},
		{19, 1, "dark green"},
		{0, 1, "dark green"},
	}
	for _, tc := range cases {
		tier := PriorityTier(tc.score)
		if tier != tc.tier || PriorityColor(tier) != tc.color {
			t.Errorf("score %d: expected %d/%s, got %d/%s", tc.score, tc.tier, tc.color, tier, PriorityColor(tier))
		}
	}
}

func TestPriorityTierIsMonotonic(t *testing.T) {
	prev := PriorityTier(0)
	for s := 1; s <= 100; s++ {
		cur := PriorityTier(s)
		if cur < prev {
			t.Fatalf("tier decreased between %d and %d", s-1, s)
		}
		prev = cur
	}
}

func TestDemoIndexIsStable(t *testing.T) {
	id := "1f0c9a52-6a2e-4f0e-9d55-2b0d0c3a7e11"
	first := DemoIndex(id, 5)
	for i := 0; i < 10; i++ {
		if DemoIndex(id, 5) != first {
			t.Fatalf("expected stable index")
		}
	}
	if DemoIndex(id, 0) != 0 {
		t.Fatalf("expected 0 for non-positive n")
	}
}
