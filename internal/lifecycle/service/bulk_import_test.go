package service

import (
	"context"
	"testing"

	"beautycrm_backend/internal/events"
	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/internal/lifecycle/ports"
	"beautycrm_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkImportRejectsNonArray(t *testing.T) {
	f := newFixture(domain.Prospect)

	for _, body := range []string{`{"name":"x"}`, ``, `"rows"`, `[{"name":]`} {
		_, err := f.svc.BulkImport(context.Background(), []byte(body), uuid.New())
		assert.True(t, apperr.Is(err, apperr.KindValidation), "body %q", body)
	}
	assert.Empty(t, f.repo.rows)
}

func TestBulkImportSkipsInvalidRows(t *testing.T) {
	f := newFixture(domain.Prospect)
	payload := `[
		{"name": "Glow Beauty", "businessType": "Salon", "discoverySource": "Offline", "contactPhone": "012-345 6789"},
		{"businessType": "Spa"},
		42,
		{"name": "Bad Enum", "businessType": "Bakery"},
		{"name": "  <b>Kiosk KL</b>  ", "businessType": "Kiosk", "city": "Kuala Lumpur"}
	]`

	resp, err := f.svc.BulkImport(context.Background(), []byte(payload), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Skipped, 3)
	assert.Equal(t, 1, resp.Skipped[0].Index)
	assert.Equal(t, "required", resp.Skipped[0].Fields["name"])
	assert.Equal(t, 2, resp.Skipped[1].Index)
	assert.Equal(t, skipMalformed, resp.Skipped[1].Reason)
	assert.Equal(t, "businesstype", resp.Skipped[2].Fields["businessType"])

	first := f.repo.get(resp.IDs[0])
	assert.Equal(t, domain.ProspectStatusNew, first.Status)
	assert.Equal(t, "+60123456789", first.ContactPhone)
	require.NotNil(t, first.Score)
	assert.Equal(t, 75, *first.Score)

	second := f.repo.get(resp.IDs[1])
	assert.Equal(t, "Kiosk KL", second.Name)
	assert.Equal(t, 70, *second.Score)
}

func TestBulkImportAssignsByTerritoryAndArchives(t *testing.T) {
	f := newFixture(domain.Merchant)
	rep := ports.SalesRep{ID: uuid.New(), FullName: "Lim Wei", Email: "lim@example.com", Active: true}
	f.reps.territory["Penang"] = rep
	archiver := &fakeArchiver{}
	tasks := &fakeTasks{}
	f.svc.SetImportArchiver(archiver)
	f.svc.SetTaskEnqueuer(tasks)

	payload := `[{"name": "Island Spa", "businessType": "Spa", "city": "Penang"}, {"name": "Remote Salon", "city": "Kuantan"}]`
	resp, err := f.svc.BulkImport(context.Background(), []byte(payload), uuid.New())

	require.NoError(t, err)
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "imports/merchant/batch.json", resp.ArchiveKey)
	assert.JSONEq(t, payload, string(archiver.payload))
	assert.Equal(t, resp.IDs, tasks.ids)

	assigned := f.repo.get(resp.IDs[0])
	require.NotNil(t, assigned.AssignedTo)
	assert.Equal(t, rep.ID, *assigned.AssignedTo)
	assert.Equal(t, domain.MerchantStatusDiscovered, assigned.Status)
	assert.Nil(t, f.repo.get(resp.IDs[1]).AssignedTo)

	assert.Equal(t, []string{events.NameEntitiesImported, events.NameEntityAssigned}, f.bus.names())
	evt := f.bus.events[1].(events.EntityAssigned)
	assert.True(t, evt.Automatic)
}

func TestBulkImportContinuesPastFailedInsert(t *testing.T) {
	f := newFixture(domain.Prospect)
	rep := ports.SalesRep{ID: uuid.New(), FullName: "Aina", Email: "aina@example.com", Active: true}
	f.reps.territory["Ipoh"] = rep
	tasks := &fakeTasks{}
	archiver := &fakeArchiver{}
	f.svc.SetTaskEnqueuer(tasks)
	f.svc.SetImportArchiver(archiver)
	f.repo.failName = "B"

	payload := `[{"name": "A", "city": "Ipoh"}, {"name": "B", "city": "Ipoh"}, {"name": "C", "city": "Ipoh"}]`
	resp, err := f.svc.BulkImport(context.Background(), []byte(payload), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.IDs, 2)
	assert.Equal(t, "A", f.repo.get(resp.IDs[0]).Name)
	assert.Equal(t, "C", f.repo.get(resp.IDs[1]).Name)
	assert.Len(t, f.repo.rows, 2)

	require.Len(t, resp.Skipped, 1)
	assert.Equal(t, 1, resp.Skipped[0].Index)
	assert.Equal(t, skipInsert, resp.Skipped[0].Reason)

	assert.Equal(t, resp.IDs, tasks.ids)
	assert.NotEmpty(t, resp.ArchiveKey)
	assert.Equal(t, []string{events.NameEntitiesImported, events.NameEntityAssigned, events.NameEntityAssigned}, f.bus.names())
	imported := f.bus.events[0].(events.EntitiesImported)
	assert.Equal(t, resp.IDs, imported.IDs)
	assert.Equal(t, 1, imported.Skipped)
}

func TestBulkImportAllInsertsFailing(t *testing.T) {
	f := newFixture(domain.Prospect)
	f.repo.failOn = "create"

	resp, err := f.svc.BulkImport(context.Background(), []byte(`[{"name": "Glow"}, {"name": "Luxe"}]`), uuid.New())

	require.NoError(t, err)
	assert.Zero(t, resp.Count)
	assert.Empty(t, resp.IDs)
	require.Len(t, resp.Skipped, 2)
	assert.Equal(t, skipInsert, resp.Skipped[1].Reason)
	assert.Empty(t, f.bus.names())
}

func TestBulkImportAcceptsEnumsInAnyCase(t *testing.T) {
	f := newFixture(domain.Prospect)

	payload := `[{"name": "Lower", "businessType": "salon", "discoverySource": "partnership"},
		{"name": "Upper", "businessType": " E-COMMERCE ", "discoverySource": "ONLINE WEB"}]`
	resp, err := f.svc.BulkImport(context.Background(), []byte(payload), uuid.New())

	require.NoError(t, err)
	require.Empty(t, resp.Skipped)
	require.Equal(t, 2, resp.Count)

	lower := f.repo.get(resp.IDs[0])
	assert.Equal(t, domain.BusinessTypeSalon, lower.BusinessType)
	assert.Equal(t, domain.DiscoverySourcePartnership, lower.DiscoverySource)
	assert.Equal(t, 80, *lower.Score)

	upper := f.repo.get(resp.IDs[1])
	assert.Equal(t, domain.BusinessTypeECommerce, upper.BusinessType)
	assert.Equal(t, domain.DiscoverySourceOnlineWeb, upper.DiscoverySource)
}

func TestRescoreUpdatesChangedActiveRows(t *testing.T) {
	stale := prospect(domain.ProspectStatusContacted)
	old := 10
	stale.Score = &old
	current := prospect(domain.ProspectStatusNew)
	fresh := 100
	current.Score = &fresh
	closed := prospect(domain.ProspectStatusLost)

	repo := newFakeRepo(domain.KindProspect, stale, current, closed)

	result, err := Rescore(context.Background(), repo, 1)

	require.NoError(t, err)
	assert.Equal(t, RescoreResult{Scanned: 2, Updated: 1}, result)
	assert.Equal(t, 100, *repo.get(stale.ID).Score)
	assert.Nil(t, repo.get(closed.ID).Score)
}
