package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"beautycrm_backend/internal/events"
	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/internal/lifecycle/repository"
	"beautycrm_backend/internal/lifecycle/transport"
	"beautycrm_backend/platform/apperr"
	"beautycrm_backend/platform/phone"
	"beautycrm_backend/platform/sanitize"
	"beautycrm_backend/platform/validator"

	"github.com/google/uuid"
)

const (
	skipMalformed  = "malformed row"
	skipValidation = "validation failed"
	skipInsert     = "insert failed"
)

// BulkImport creates one entity per valid row of a JSON array payload.
// Invalid rows and rows whose insert fails are skipped and reported by
// index; valid rows are scored, start in the initial status and are
// assigned by territory when possible.
func (s *Service) BulkImport(ctx context.Context, payload []byte, actorID uuid.UUID) (transport.BulkImportResponse, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return transport.BulkImportResponse{}, apperr.Validation("import payload must be a JSON array")
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return transport.BulkImportResponse{}, apperr.Validation("import payload must be a JSON array")
	}

	resp := transport.BulkImportResponse{
		IDs:     make([]uuid.UUID, 0, len(raw)),
		Skipped: make([]transport.SkippedRow, 0),
	}
	var assigned []events.EntityAssigned

	for i, item := range raw {
		var row transport.ImportRow
		if err := json.Unmarshal(item, &row); err != nil {
			resp.Skipped = append(resp.Skipped, transport.SkippedRow{Index: i, Reason: skipMalformed})
			continue
		}
		row = cleanRow(row)
		if err := s.val.Struct(row); err != nil {
			resp.Skipped = append(resp.Skipped, transport.SkippedRow{
				Index:  i,
				Reason: skipValidation,
				Fields: validator.FieldErrors(err),
			})
			continue
		}

		params := s.importParams(row)
		rep, ok, err := s.reps.TerritoryRep(ctx, row.City)
		if err != nil {
			s.log.Warn("territory lookup failed", "city", row.City, "error", err)
		} else if ok {
			params.AssignedTo = &rep.ID
		}

		id, err := s.repo.Create(ctx, params)
		if err != nil {
			s.log.DatabaseError(s.op("BulkImport"), err)
			importedRowsTotal.WithLabelValues(string(s.et.Kind), "failed").Inc()
			resp.Skipped = append(resp.Skipped, transport.SkippedRow{Index: i, Reason: skipInsert})
			continue
		}
		resp.IDs = append(resp.IDs, id)

		if params.AssignedTo != nil {
			assigned = append(assigned, events.EntityAssigned{
				BaseEvent:  events.NewBaseEvent(),
				EntityType: string(s.et.Kind),
				EntityID:   id,
				EntityName: params.Name,
				ActorID:    actorID,
				RepID:      rep.ID,
				RepName:    rep.FullName,
				RepEmail:   rep.Email,
				Automatic:  true,
			})
		}
	}

	resp.Count = len(resp.IDs)
	importedRowsTotal.WithLabelValues(string(s.et.Kind), "imported").Add(float64(resp.Count))
	importedRowsTotal.WithLabelValues(string(s.et.Kind), "skipped").Add(float64(len(resp.Skipped)))

	if s.archiver != nil {
		key, err := s.archiver.ArchiveImport(ctx, s.et.Kind, trimmed)
		if err != nil {
			s.log.Warn("import archive failed", "entity", s.et.Kind, "error", err)
		} else {
			resp.ArchiveKey = key
		}
	}

	if s.tasks != nil {
		for _, id := range resp.IDs {
			if err := s.tasks.EnqueueGenerateAbout(ctx, s.et.Kind, id); err != nil {
				s.log.Warn("enqueue about generation failed", "entity", s.et.Kind, "id", id, "error", err)
			}
		}
	}

	s.log.LifecycleEvent(string(s.et.Kind), "", "imported", "count", resp.Count, "skipped", len(resp.Skipped))
	if resp.Count > 0 {
		s.publish(ctx, events.EntitiesImported{
			BaseEvent:  events.NewBaseEvent(),
			EntityType: string(s.et.Kind),
			ActorID:    actorID,
			IDs:        resp.IDs,
			Skipped:    len(resp.Skipped),
			ArchiveKey: resp.ArchiveKey,
		})
	}
	for _, evt := range assigned {
		s.publish(ctx, evt)
	}

	return resp, nil
}

func (s *Service) importParams(row transport.ImportRow) repository.CreateParams {
	params := repository.CreateParams{
		Name:             row.Name,
		BusinessType:     row.BusinessType,
		DiscoverySource:  row.DiscoverySource,
		ContactName:      row.ContactName,
		ContactEmail:     row.ContactEmail,
		ContactPhone:     phone.NormalizeE164In(row.ContactPhone, phone.RegionForCountry(row.Country)),
		SocialMediaLinks: row.SocialMediaLinks,
		Street:           row.Street,
		City:             row.City,
		State:            row.State,
		Country:          row.Country,
		PostalCode:       row.PostalCode,
		EstimatedValue:   row.EstimatedValue,
		Status:           s.et.InitialStatus(),
	}
	params.Score = domain.Score(domain.ScoreInput{
		BusinessType:     row.BusinessType,
		DiscoverySource:  row.DiscoverySource,
		SocialMediaLinks: row.SocialMediaLinks,
		City:             row.City,
	})
	return params
}

func cleanRow(row transport.ImportRow) transport.ImportRow {
	row.Name = sanitize.Line(row.Name)
	row.BusinessType = domain.CanonicalBusinessType(row.BusinessType)
	row.DiscoverySource = domain.CanonicalDiscoverySource(row.DiscoverySource)
	row.ContactName = sanitize.Line(row.ContactName)
	row.ContactEmail = strings.ToLower(strings.TrimSpace(row.ContactEmail))
	row.SocialMediaLinks = sanitize.Text(row.SocialMediaLinks)
	row.Street = sanitize.Line(row.Street)
	row.City = sanitize.Line(row.City)
	row.State = sanitize.Line(row.State)
	row.Country = sanitize.Line(row.Country)
	row.PostalCode = strings.TrimSpace(row.PostalCode)
	return row
}
