package sanitize

import "testing"

func TestLineCollapsesWhitespaceAndTags(t *testing.T) {
	got := Line("  Glow <b>Beauty</b>\n\tSalon ")
	if got != "Glow Beauty Salon" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestTextStripsEncodedTags(t *testing.T) {
	got := Text("&lt;script&gt;alert(1)&lt;/script&gt;Hello")
	if got != "alert(1)Hello" {
		t.Fatalf("unexpected %q", got)
	}
}
