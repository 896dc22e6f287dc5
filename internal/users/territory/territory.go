// Package territory maps cities to sales regions.
package territory

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed territories.yaml
var defaultMap []byte

// Region is a named sales region and the city substrings it covers.
type Region struct {
	Name   string   `yaml:"name"`
	Cities []string `yaml:"cities"`
}

// Map resolves cities to regions.
type Map struct {
	Regions []Region `yaml:"regions"`
}

// Parse decodes a territory map from YAML.
func Parse(data []byte) (*Map, error) {
	var m Map
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse territories: %w", err)
	}
	for i, r := range m.Regions {
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("parse territories: region %d has no name", i)
		}
		for j, c := range r.Cities {
			m.Regions[i].Cities[j] = strings.ToLower(strings.TrimSpace(c))
		}
	}
	return &m, nil
}

// Load reads the map at path, or the built-in map when path is empty.
func Load(path string) (*Map, error) {
	if path == "" {
		return Parse(defaultMap)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read territories: %w", err)
	}
	return Parse(data)
}

// Default returns the built-in map.
func Default() *Map {
	m, err := Parse(defaultMap)
	if err != nil {
		panic(err)
	}
	return m
}

// RegionFor returns the region whose city substring occurs in city. The
// longest match wins; ties keep file order.
func (m *Map) RegionFor(city string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(city))
	if needle == "" || m == nil {
		return "", false
	}

	best, bestLen := "", 0
	for _, r := range m.Regions {
		for _, c := range r.Cities {
			if c != "" && len(c) > bestLen && strings.Contains(needle, c) {
				best, bestLen = r.Name, len(c)
			}
		}
	}
	return best, bestLen > 0
}
