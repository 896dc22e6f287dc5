package about

import (
	"context"
	"fmt"
	"strings"

	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/platform/logger"
	"beautycrm_backend/platform/sanitize"
)

// Sources reported by the generator.
const (
	SourceLookup   = "lookup"
	SourceAI       = "ai"
	SourceTemplate = "template"
)

// Synthesizer writes about text from entity attributes.
type Synthesizer interface {
	Synthesize(ctx context.Context, e domain.Entity) (string, error)
}

// Generator implements the lookup, synthesis and template fallback chain.
type Generator struct {
	lookup Lookup
	ai     Synthesizer // optional
	log    *logger.Logger
}

// NewGenerator creates a generator. ai may be nil.
func NewGenerator(lookup Lookup, ai Synthesizer, log *logger.Logger) *Generator {
	if lookup == nil {
		lookup = Lookup{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Generator{lookup: lookup, ai: ai, log: log}
}

// Generate never fails: synthesis errors fall back to the template.
func (g *Generator) Generate(ctx context.Context, e domain.Entity) (string, string, error) {
	if text, ok := g.lookup.Get(e.ID.String()); ok {
		return text, SourceLookup, nil
	}

	if g.ai != nil {
		text, err := g.ai.Synthesize(ctx, e)
		if err == nil && strings.TrimSpace(text) != "" {
			return sanitize.Text(text), SourceAI, nil
		}
		if err != nil {
			g.log.Warn("about synthesis failed, using template", "entity_id", e.ID, "error", err)
		}
	}

	return Template(e), SourceTemplate, nil
}

// Template summarizes the entity from its own fields.
func Template(e domain.Entity) string {
	var b strings.Builder

	kind := strings.ToLower(strings.TrimSpace(e.BusinessType))
	if kind == "" {
		kind = "beauty business"
	}
	fmt.Fprintf(&b, "%s is %s %s", e.Name, article(kind), kind)

	if place := location(e); place != "" {
		fmt.Fprintf(&b, " based in %s", place)
	}
	b.WriteString(".")

	if src := strings.TrimSpace(e.DiscoverySource); src != "" {
		fmt.Fprintf(&b, " Discovered via %s.", strings.ToLower(src))
	}
	if strings.TrimSpace(e.SocialMediaLinks) != "" {
		b.WriteString(" Active on social media.")
	}
	if e.ContactName != "" {
		fmt.Fprintf(&b, " Primary contact: %s.", e.ContactName)
	}
	return b.String()
}

func location(e domain.Entity) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{e.City, e.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func article(word string) string {
	if word == "" {
		return "a"
	}
	switch word[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	default:
		return "a"
	}
}
