package about

import (
	"context"
	"fmt"
	"strings"
	"time"

	"beautycrm_backend/internal/lifecycle/domain"

	"google.golang.org/genai"
)

const synthesisTimeout = 20 * time.Second

// GeminiSynthesizer writes about text with a Gemini model. Only the entity's
// own fields are sent.
type GeminiSynthesizer struct {
	client *genai.Client
	model  string
}

// NewGeminiSynthesizer creates a synthesizer for apiKey and model.
func NewGeminiSynthesizer(ctx context.Context, apiKey, model string) (*GeminiSynthesizer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiSynthesizer{client: client, model: model}, nil
}

// Synthesize implements Synthesizer.
func (g *GeminiSynthesizer) Synthesize(ctx context.Context, e domain.Entity) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, synthesisTimeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(Prompt(e)), nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}

// Prompt builds the synthesis prompt from entity attributes.
func Prompt(e domain.Entity) string {
	var b strings.Builder
	b.WriteString("Write a two-sentence, factual company profile for a beauty-industry CRM record. ")
	b.WriteString("Use only the facts below and do not invent figures.\n")
	fmt.Fprintf(&b, "Name: %s\n", e.Name)
	fmt.Fprintf(&b, "Business type: %s\n", e.BusinessType)
	fmt.Fprintf(&b, "Discovered via: %s\n", e.DiscoverySource)
	fmt.Fprintf(&b, "Location: %s\n", location(e))
	if e.SocialMediaLinks != "" {
		fmt.Fprintf(&b, "Social media: %s\n", e.SocialMediaLinks)
	}
	return b.String()
}
