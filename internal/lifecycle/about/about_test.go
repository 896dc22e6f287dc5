package about

import (
	"context"
	"errors"
	"strings"
	"testing"

	"beautycrm_backend/internal/lifecycle/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSynth struct {
	text string
	err  error
}

func (s stubSynth) Synthesize(context.Context, domain.Entity) (string, error) {
	return s.text, s.err
}

func TestParseLookupWithHeader(t *testing.T) {
	id := uuid.New()
	csv := "name,about,id\nGlow,\"Curated <b>text</b>\"," + strings.ToUpper(id.String()) + "\n"

	lookup, err := ParseLookup(strings.NewReader(csv))

	require.NoError(t, err)
	text, ok := lookup.Get(id.String())
	assert.True(t, ok)
	assert.Equal(t, "Curated text", text)
}

func TestParseLookupWithoutHeader(t *testing.T) {
	id := uuid.New()

	lookup, err := ParseLookup(strings.NewReader(id.String() + ",Known distributor\nshort\n"))

	require.NoError(t, err)
	assert.Len(t, lookup, 1)
	text, _ := lookup.Get(id.String())
	assert.Equal(t, "Known distributor", text)
}

func TestGeneratorFallbackChain(t *testing.T) {
	known := domain.Entity{ID: uuid.New(), Name: "Glow"}
	other := domain.Entity{
		ID:              uuid.New(),
		Name:            "Island Spa",
		BusinessType:    "Spa",
		DiscoverySource: "Partnership",
		City:            "Penang",
		Country:         "Malaysia",
	}
	lookup := Lookup{strings.ToLower(known.ID.String()): "From the lookup."}

	g := NewGenerator(lookup, stubSynth{err: errors.New("quota")}, nil)

	text, source, err := g.Generate(context.Background(), known)
	require.NoError(t, err)
	assert.Equal(t, SourceLookup, source)
	assert.Equal(t, "From the lookup.", text)

	text, source, err = g.Generate(context.Background(), other)
	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, source)
	assert.Equal(t, "Island Spa is a spa based in Penang, Malaysia. Discovered via partnership.", text)

	g = NewGenerator(nil, stubSynth{text: "An AI profile."}, nil)
	_, source, _ = g.Generate(context.Background(), other)
	assert.Equal(t, SourceAI, source)
}

func TestTemplateWithoutBusinessType(t *testing.T) {
	text := Template(domain.Entity{Name: "Nameless", ContactName: "Ahmad Bin Ali"})
	assert.Equal(t, "Nameless is a beauty business. Primary contact: Ahmad Bin Ali.", text)
}

func TestPromptCarriesOnlyEntityFacts(t *testing.T) {
	p := Prompt(domain.Entity{Name: "Glow", BusinessType: "Salon", City: "Ipoh"})
	assert.Contains(t, p, "Name: Glow")
	assert.Contains(t, p, "Location: Ipoh")
	assert.NotContains(t, p, "Social media")
}
