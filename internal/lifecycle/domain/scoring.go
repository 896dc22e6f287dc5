package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	baseScore          = 50
	socialPresenceMin  = 20
	socialPresenceBump = 5
	majorCityBump      = 5

	unknownBusinessTypeBonus    = 10
	unknownDiscoverySourceBonus = 5
)

// Business types.
const (
	BusinessTypeSalon       = "Salon"
	BusinessTypeSpa         = "Spa"
	BusinessTypeRetailer    = "Retailer"
	BusinessTypeECommerce   = "E-commerce"
	BusinessTypeKiosk       = "Kiosk"
	BusinessTypeDistributor = "Distributor"
)

// Discovery sources.
const (
	DiscoverySourceOnlineWeb      = "Online Web"
	DiscoverySourcePartnership    = "Partnership"
	DiscoverySourceOffline        = "Offline"
	DiscoverySourceLeadConversion = "Lead Conversion"
	DiscoverySourceOther          = "Other"
)

// BusinessTypes lists the accepted business type values.
var BusinessTypes = []string{
	BusinessTypeSalon, BusinessTypeSpa, BusinessTypeRetailer,
	BusinessTypeECommerce, BusinessTypeKiosk, BusinessTypeDistributor,
}

// DiscoverySources lists the accepted discovery source values.
var DiscoverySources = []string{
	DiscoverySourceOnlineWeb, DiscoverySourcePartnership, DiscoverySourceOffline,
	DiscoverySourceLeadConversion, DiscoverySourceOther,
}

// CanonicalBusinessType returns the accepted spelling of v, matching
// case-insensitively. Unknown values come back trimmed but otherwise as given.
func CanonicalBusinessType(v string) string {
	return canonical(BusinessTypes, v)
}

// CanonicalDiscoverySource is CanonicalBusinessType for discovery sources.
func CanonicalDiscoverySource(v string) string {
	return canonical(DiscoverySources, v)
}

func canonical(values []string, v string) string {
	trimmed := strings.TrimSpace(v)
	for _, known := range values {
		if strings.EqualFold(known, trimmed) {
			return known
		}
	}
	return trimmed
}

var businessTypeBonus = map[string]int{
	"distributor": 25,
	"retailer":    20,
	"e-commerce":  18,
	"salon":       15,
	"spa":         15,
	"salon/spa":   15,
	"kiosk":       10,
}

var discoverySourceBonus = map[string]int{
	"lead conversion": 20,
	"partnership":     15,
	"online web":      12,
	"offline":         10,
}

// majorCities are matched as case-insensitive substrings of the city field.
var majorCities = []string{
	"kuala lumpur",
	"petaling jaya",
	"shah alam",
	"subang jaya",
	"putrajaya",
	"johor bahru",
	"george town",
	"penang",
	"ipoh",
	"kota kinabalu",
	"kuching",
	"melaka",
}

// ScoreInput holds the attributes the score is computed from.
type ScoreInput struct {
	BusinessType     string
	DiscoverySource  string
	SocialMediaLinks string
	City             string
}

// ScoreFactor is one contribution to a score.
type ScoreFactor struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Reason string `json:"reason"`
}

// ScoreBreakdown explains how a score was reached.
type ScoreBreakdown struct {
	Base    int           `json:"base"`
	Factors []ScoreFactor `json:"factors"`
	Raw     int           `json:"raw"`
	Score   int           `json:"score"`
}

// Score computes the 0..100 lead-quality score. Pure and total.
func Score(in ScoreInput) int {
	return ExplainScore(in).Score
}

// ExplainScore computes the score and the factors behind it.
func ExplainScore(in ScoreInput) ScoreBreakdown {
	b := ScoreBreakdown{Base: baseScore}

	bt := normalizeKey(in.BusinessType)
	if bonus, ok := businessTypeBonus[bt]; ok {
		b.add("businessType", bonus, in.BusinessType)
	} else {
		b.add("businessType", unknownBusinessTypeBonus, "unrecognized business type")
	}

	src := normalizeKey(in.DiscoverySource)
	if bonus, ok := discoverySourceBonus[src]; ok {
		b.add("discoverySource", bonus, in.DiscoverySource)
	} else {
		b.add("discoverySource", unknownDiscoverySourceBonus, "other or unrecognized source")
	}

	if utf8.RuneCountInString(in.SocialMediaLinks) > socialPresenceMin {
		b.add("socialMedia", socialPresenceBump, "social media presence")
	}

	if city, ok := matchMajorCity(in.City); ok {
		b.add("city", majorCityBump, city)
	}

	b.Raw = b.Base
	for _, f := range b.Factors {
		b.Raw += f.Points
	}
	b.Score = ClampScore(b.Raw)
	return b
}

func (b *ScoreBreakdown) add(name string, points int, reason string) {
	b.Factors = append(b.Factors, ScoreFactor{Name: name, Points: points, Reason: reason})
}

// ClampScore bounds value to [0,100].
func ClampScore(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

// IsMajorCity reports whether city contains one of the major-city names.
func IsMajorCity(city string) bool {
	_, ok := matchMajorCity(city)
	return ok
}

func matchMajorCity(city string) (string, bool) {
	lower := strings.ToLower(city)
	if strings.TrimSpace(lower) == "" {
		return "", false
	}
	for _, c := range majorCities {
		if strings.Contains(lower, c) {
			return c, true
		}
	}
	return "", false
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
