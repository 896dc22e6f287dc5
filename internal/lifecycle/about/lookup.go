// Package about produces the about text of prospects and merchant
// discoveries: a curated lookup table wins, then optional AI synthesis, then a
// template built from the entity's own fields.
package about

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"beautycrm_backend/internal/adapters/storage"
	"beautycrm_backend/platform/sanitize"
)

// Lookup maps entity ids to curated about text.
type Lookup map[string]string

// ParseLookup reads a CSV with an id column and an about column. A header
// row naming those columns is optional; without one the first two columns
// are used.
func ParseLookup(r io.Reader) (Lookup, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	idCol, aboutCol := 0, 1
	out := Lookup{}
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parse about lookup: %w", err)
		}

		if first {
			first = false
			if i, j, ok := headerColumns(record); ok {
				idCol, aboutCol = i, j
				continue
			}
		}
		if len(record) <= idCol || len(record) <= aboutCol {
			continue
		}

		id := strings.ToLower(strings.TrimSpace(record[idCol]))
		text := sanitize.Text(record[aboutCol])
		if id != "" && text != "" {
			out[id] = text
		}
	}
}

func headerColumns(record []string) (int, int, bool) {
	idCol, aboutCol := -1, -1
	for i, name := range record {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "id", "entity_id", "entityid":
			idCol = i
		case "about", "description":
			aboutCol = i
		}
	}
	return idCol, aboutCol, idCol >= 0 && aboutCol >= 0
}

// Get returns the curated text for id.
func (l Lookup) Get(id string) (string, bool) {
	text, ok := l[strings.ToLower(id)]
	return text, ok
}

// LoadLookupFile reads a lookup table from disk. An empty path yields an empty table.
func LoadLookupFile(path string) (Lookup, error) {
	if path == "" {
		return Lookup{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseLookup(f)
}

// LoadLookupObject reads a lookup table from object storage. location is
// "bucket/key". A missing object yields an empty table.
func LoadLookupObject(ctx context.Context, store storage.StorageService, location string) (Lookup, error) {
	bucket, key, ok := storage.SplitLocation(location)
	if !ok {
		return nil, fmt.Errorf("invalid about lookup location %q, expected bucket/key", location)
	}
	body, err := store.DownloadFile(ctx, bucket, key)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return Lookup{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return ParseLookup(body)
}
