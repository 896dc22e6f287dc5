package storage

import "testing"

func TestSplitLocation(t *testing.T) {
	cases := []struct {
		in         string
		bucket     string
		key        string
		wantParsed bool
	}{
		{"crm-imports/lookup/about.csv", "crm-imports", "lookup/about.csv", true},
		{"bucket/file.csv", "bucket", "file.csv", true},
		{"/leading", "", "", false},
		{"trailing/", "", "", false},
		{"nobucket", "", "", false},
	}

	for _, tc := range cases {
		bucket, key, ok := SplitLocation(tc.in)
		if ok != tc.wantParsed || bucket != tc.bucket || key != tc.key {
			t.Errorf("SplitLocation(%q) = (%q, %q, %v)", tc.in, bucket, key, ok)
		}
	}
}
