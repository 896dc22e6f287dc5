// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used for numbers written without a country prefix.
const DefaultRegion = "MY"

// NormalizeE164 formats a phone number to E.164 using DefaultRegion.
// If parsing fails, it returns the trimmed input.
func NormalizeE164(input string) string {
	return NormalizeE164In(input, DefaultRegion)
}

// NormalizeE164In formats a phone number to E.164 for the given region,
// falling back to DefaultRegion when region is empty.
func NormalizeE164In(input, region string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}
	if region == "" {
		region = DefaultRegion
	}

	number, err := phonenumbers.Parse(trimmed, strings.ToUpper(region))
	if err != nil {
		return trimmed
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}

// RegionForCountry maps a free-text country name to a region code.
func RegionForCountry(country string) string {
	switch strings.ToLower(strings.TrimSpace(country)) {
	case "singapore", "sg":
		return "SG"
	case "indonesia", "id":
		return "ID"
	case "thailand", "th":
		return "TH"
	case "brunei", "bn":
		return "BN"
	default:
		return DefaultRegion
	}
}
