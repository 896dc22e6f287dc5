package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	cases := []struct {
		in     string
		region string
		want   string
	}{
		{"012-345 6789", "", "+60123456789"},
		{"+60 12-345 6789", "", "+60123456789"},
		{"9123 4567", "SG", "+6591234567"},
		{"  ", "", ""},
		{"not a number", "", "not a number"},
	}

	for _, tc := range cases {
		if got := NormalizeE164In(tc.in, tc.region); got != tc.want {
			t.Errorf("NormalizeE164In(%q, %q) = %q, want %q", tc.in, tc.region, got, tc.want)
		}
	}
}

func TestRegionForCountry(t *testing.T) {
	if RegionForCountry("Singapore") != "SG" {
		t.Fatalf("expected SG")
	}
	if RegionForCountry("Malaysia") != "MY" {
		t.Fatalf("expected MY default")
	}
}
