package service

import (
	"context"
	"testing"

	"beautycrm_backend/internal/events"
	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/internal/lifecycle/ports"
	"beautycrm_backend/internal/lifecycle/transport"
	"beautycrm_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeStatusRejectsUnknownStatusWithoutMutation(t *testing.T) {
	p := prospect(domain.ProspectStatusNew)
	f := newFixture(domain.Prospect, p)

	_, err := f.svc.ChangeStatus(context.Background(), p.ID, "Bogus", uuid.New())

	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Contains(t, err.Error(), "Negotiating")
	assert.Equal(t, domain.ProspectStatusNew, f.repo.get(p.ID).Status)
	assert.Empty(t, f.bus.names())
}

func TestChangeStatusNotFound(t *testing.T) {
	f := newFixture(domain.Prospect)

	_, err := f.svc.ChangeStatus(context.Background(), uuid.New(), domain.ProspectStatusContacted, uuid.New())

	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestChangeStatusForwardPersistsAndPublishes(t *testing.T) {
	p := prospect(domain.ProspectStatusNew)
	f := newFixture(domain.Prospect, p)
	actor := uuid.New()

	resp, err := f.svc.ChangeStatus(context.Background(), p.ID, "contacted", actor)

	require.NoError(t, err)
	assert.Equal(t, domain.ProspectStatusContacted, resp.Status)
	assert.Equal(t, 1, resp.Phase)
	assert.Nil(t, f.repo.get(p.ID).Score, "score only changes when entering Qualified")
	require.Equal(t, []string{events.NameEntityStatusChanged}, f.bus.names())

	evt := f.bus.events[0].(events.EntityStatusChanged)
	assert.Equal(t, actor, evt.ActorID)
	assert.Equal(t, domain.ProspectStatusNew, evt.From)
}

func TestChangeStatusSameStatusIsNoop(t *testing.T) {
	p := prospect(domain.ProspectStatusContacted)
	f := newFixture(domain.Prospect, p)

	resp, err := f.svc.ChangeStatus(context.Background(), p.ID, domain.ProspectStatusContacted, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, domain.ProspectStatusContacted, resp.Status)
	assert.Empty(t, f.bus.names())
}

func TestChangeStatusBackwardAndTerminalConflict(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
	}{
		{"backward", domain.ProspectStatusNegotiating, domain.ProspectStatusContacted},
		{"out of lost", domain.ProspectStatusLost, domain.ProspectStatusContacted},
		{"reserved converted", domain.ProspectStatusInReview, domain.ProspectStatusConverted},
		{"out of converted", domain.ProspectStatusConverted, domain.ProspectStatusLost},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := prospect(tc.from)
			f := newFixture(domain.Prospect, p)

			_, err := f.svc.ChangeStatus(context.Background(), p.ID, tc.to, uuid.New())

			assert.True(t, apperr.Is(err, apperr.KindConflict), "got %v", err)
			assert.Equal(t, tc.from, f.repo.get(p.ID).Status)
		})
	}
}

func TestChangeStatusToQualifiedRescores(t *testing.T) {
	p := prospect(domain.ProspectStatusContacted)
	f := newFixture(domain.Prospect, p)

	resp, err := f.svc.ChangeStatus(context.Background(), p.ID, domain.ProspectStatusQualified, uuid.New())

	require.NoError(t, err)
	require.NotNil(t, resp.Score)
	assert.Equal(t, 100, *resp.Score)
	assert.Equal(t, 5, resp.PriorityTier)
	assert.Equal(t, []string{events.NameEntityStatusChanged, events.NameEntityQualified}, f.bus.names())
}

func TestChangeStatusLostRaceIsConflict(t *testing.T) {
	p := prospect(domain.ProspectStatusNew)
	f := newFixture(domain.Prospect, p)
	f.repo.staleFor = p.ID

	_, err := f.svc.ChangeStatus(context.Background(), p.ID, domain.ProspectStatusContacted, uuid.New())

	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestMerchantNegativeStatusFromAnyNonTerminal(t *testing.T) {
	m := prospect(domain.MerchantStatusNegotiating)
	m.Kind = domain.KindMerchant
	f := newFixture(domain.Merchant, m)

	resp, err := f.svc.ChangeStatus(context.Background(), m.ID, domain.MerchantStatusRejected, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, domain.MerchantStatusRejected, resp.Status)
	assert.Equal(t, 1, resp.Phase)
}

func TestQualify(t *testing.T) {
	p := prospect(domain.ProspectStatusNew)
	f := newFixture(domain.Prospect, p)

	resp, err := f.svc.Qualify(context.Background(), p.ID, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, transport.QualifyResponse{Status: domain.ProspectStatusQualified, Score: 100}, resp)

	_, err = f.svc.Qualify(context.Background(), p.ID, uuid.New())
	assert.True(t, apperr.Is(err, apperr.KindConflict), "qualifying twice must conflict")
}

func TestQualifyTerminalConflicts(t *testing.T) {
	p := prospect(domain.ProspectStatusLost)
	f := newFixture(domain.Prospect, p)

	_, err := f.svc.Qualify(context.Background(), p.ID, uuid.New())

	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestAssign(t *testing.T) {
	p := prospect(domain.ProspectStatusNew)
	f := newFixture(domain.Prospect, p)
	active := ports.SalesRep{ID: uuid.New(), FullName: "Siti Aminah", Email: "siti@example.com", Active: true}
	inactive := ports.SalesRep{ID: uuid.New(), FullName: "Former Rep"}
	f.reps.reps[active.ID] = active
	f.reps.reps[inactive.ID] = inactive

	resp, err := f.svc.Assign(context.Background(), p.ID, active.ID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "Siti Aminah", resp.SalesRepName)
	assert.Equal(t, active.ID, *f.repo.get(p.ID).AssignedTo)
	assert.Equal(t, []string{events.NameEntityAssigned}, f.bus.names())

	_, err = f.svc.Assign(context.Background(), p.ID, inactive.ID, uuid.New())
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	_, err = f.svc.Assign(context.Background(), p.ID, uuid.New(), uuid.New())
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = f.svc.Assign(context.Background(), uuid.New(), active.ID, uuid.New())
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestGetDecoratesVirtualFields(t *testing.T) {
	p := prospect(domain.ProspectStatusNegotiating)
	f := newFixture(domain.Prospect, p)

	resp, err := f.svc.Get(context.Background(), p.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Phase)
	assert.Equal(t, domain.CriticalityCritical, resp.PhaseCriticality)
	assert.Equal(t, 0, resp.PriorityTier)
	assert.Equal(t, "", resp.PriorityCriticality)
	assert.Equal(t, "Unassigned", resp.AssignedToName)
	assert.Equal(t, "3 days ago", resp.LastFollowUp)
	assert.Contains(t, resp.PendingItems, "pending")
}

func TestListFiltersByCanonicalStatus(t *testing.T) {
	a := prospect(domain.ProspectStatusNew)
	b := prospect(domain.ProspectStatusContacted)
	f := newFixture(domain.Prospect, a, b)

	resp, err := f.svc.List(context.Background(), transport.ListRequest{Status: "new"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, a.ID, resp.Items[0].ID)
	assert.Equal(t, 1, resp.TotalPages)

	_, err = f.svc.List(context.Background(), transport.ListRequest{Status: "Bogus"})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestGenerateAboutPersists(t *testing.T) {
	p := prospect(domain.ProspectStatusNew)
	f := newFixture(domain.Prospect, p)

	resp, err := f.svc.GenerateAbout(context.Background(), p.ID, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, "Glow Beauty is a Distributor.", resp.About)
	assert.Equal(t, []string{events.NameEntityAboutUpdated}, f.bus.names())
}

func TestScoreBreakdownMatchesScore(t *testing.T) {
	p := prospect(domain.ProspectStatusNew)
	f := newFixture(domain.Prospect, p)

	b, err := f.svc.ScoreBreakdown(context.Background(), p.ID)

	require.NoError(t, err)
	assert.Equal(t, 100, b.Score)
	assert.Equal(t, 100, b.Raw)
	assert.Len(t, b.Factors, 4)
}
