package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"beautycrm_backend/internal/events"
	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/internal/lifecycle/ports"
	"beautycrm_backend/internal/lifecycle/repository"
	"beautycrm_backend/internal/lifecycle/transport"
	"beautycrm_backend/platform/logger"
	"beautycrm_backend/platform/validator"

	"github.com/google/uuid"
)

var fixedNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type fakeRepo struct {
	mu       sync.Mutex
	rows     map[uuid.UUID]domain.Entity
	kind     domain.Kind
	failOn   string
	failName string
	staleFor uuid.UUID
}

func newFakeRepo(kind domain.Kind, rows ...domain.Entity) *fakeRepo {
	r := &fakeRepo{rows: map[uuid.UUID]domain.Entity{}, kind: kind}
	for _, e := range rows {
		r.rows[e.ID] = e
	}
	return r
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Entity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return domain.Entity{}, repository.ErrNotFound
	}
	return e, nil
}

func (r *fakeRepo) List(_ context.Context, p repository.ListParams) ([]domain.Entity, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Entity
	for _, e := range r.rows {
		if p.Status != nil && e.Status != *p.Status {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	total := len(out)
	if p.Offset < len(out) {
		out = out[p.Offset:]
	} else {
		out = nil
	}
	if len(out) > p.Limit {
		out = out[:p.Limit]
	}
	return out, total, nil
}

func (r *fakeRepo) Create(_ context.Context, p repository.CreateParams) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOn == "create" || (r.failName != "" && p.Name == r.failName) {
		return uuid.Nil, errors.New("insert failed")
	}
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	score := p.Score
	r.rows[id] = domain.Entity{
		ID: id, Kind: r.kind, Name: p.Name, BusinessType: p.BusinessType,
		DiscoverySource: p.DiscoverySource, ContactName: p.ContactName,
		ContactEmail: p.ContactEmail, ContactPhone: p.ContactPhone,
		SocialMediaLinks: p.SocialMediaLinks, City: p.City, Country: p.Country,
		EstimatedValue: p.EstimatedValue, Score: &score, Status: p.Status,
		AssignedTo: p.AssignedTo, CreatedAt: fixedNow, ModifiedAt: fixedNow,
	}
	return id, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, p repository.UpdateStatusParams) (domain.Entity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[p.ID]
	if !ok {
		return domain.Entity{}, repository.ErrNotFound
	}
	if e.Status != p.FromStatus || r.staleFor == p.ID {
		return domain.Entity{}, repository.ErrStatusConflict
	}
	e.Status = p.ToStatus
	if p.Score != nil {
		v := *p.Score
		e.Score = &v
	}
	e.ModifiedAt = fixedNow
	r.rows[p.ID] = e
	return e, nil
}

func (r *fakeRepo) UpdateScore(_ context.Context, id uuid.UUID, score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	e.Score = &score
	r.rows[id] = e
	return nil
}

func (r *fakeRepo) Assign(_ context.Context, id uuid.UUID, repID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	e.AssignedTo = &repID
	r.rows[id] = e
	return nil
}

func (r *fakeRepo) UpdateAbout(_ context.Context, id uuid.UUID, about string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	e.About = about
	r.rows[id] = e
	return nil
}

func (r *fakeRepo) GetMetrics(context.Context) (repository.Metrics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return repository.Metrics{Total: len(r.rows)}, nil
}

func (r *fakeRepo) ListActiveAfter(_ context.Context, after uuid.UUID, limit int) ([]domain.Entity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	et, _ := domain.TypeByKind(r.kind)
	var out []domain.Entity
	for _, e := range r.rows {
		if et.IsTerminal(e.Status) || e.ID.String() <= after.String() {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRepo) get(id uuid.UUID) domain.Entity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[id]
}

type fakeReps struct {
	reps      map[uuid.UUID]ports.SalesRep
	territory map[string]ports.SalesRep
}

func (f *fakeReps) GetRep(_ context.Context, id uuid.UUID) (ports.SalesRep, error) {
	rep, ok := f.reps[id]
	if !ok {
		return ports.SalesRep{}, ports.ErrRepNotFound
	}
	return rep, nil
}

func (f *fakeReps) TerritoryRep(_ context.Context, city string) (ports.SalesRep, bool, error) {
	rep, ok := f.territory[city]
	return rep, ok, nil
}

type fakeAbout struct{}

func (fakeAbout) Generate(_ context.Context, e domain.Entity) (string, string, error) {
	return e.Name + " is a " + e.BusinessType + ".", "template", nil
}

type fakeArchiver struct{ payload []byte }

func (f *fakeArchiver) ArchiveImport(_ context.Context, kind domain.Kind, payload []byte) (string, error) {
	f.payload = payload
	return "imports/" + string(kind) + "/batch.json", nil
}

type fakeTasks struct{ ids []uuid.UUID }

func (f *fakeTasks) EnqueueGenerateAbout(_ context.Context, _ domain.Kind, id uuid.UUID) error {
	f.ids = append(f.ids, id)
	return nil
}

// recordingBus keeps published events in order, synchronously.
type recordingBus struct {
	mu     sync.Mutex
	events []events.Event
}

func (b *recordingBus) Publish(_ context.Context, e events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) PublishSync(ctx context.Context, e events.Event) error {
	b.Publish(ctx, e)
	return nil
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

func (b *recordingBus) names() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.EventName())
	}
	return out
}

type fixture struct {
	svc  *Service
	repo *fakeRepo
	reps *fakeReps
	bus  *recordingBus
}

func newFixture(et domain.EntityType, rows ...domain.Entity) fixture {
	val := validator.New()
	if err := transport.RegisterValidations(val); err != nil {
		panic(err)
	}
	repo := newFakeRepo(et.Kind, rows...)
	reps := &fakeReps{reps: map[uuid.UUID]ports.SalesRep{}, territory: map[string]ports.SalesRep{}}
	bus := &recordingBus{}
	svc := New(et, Deps{
		Repo:      repo,
		Reps:      reps,
		About:     fakeAbout{},
		Bus:       bus,
		Validator: val,
		Log:       logger.Nop(),
	})
	svc.now = func() time.Time { return fixedNow }
	return fixture{svc: svc, repo: repo, reps: reps, bus: bus}
}

func prospect(status string) domain.Entity {
	return domain.Entity{
		ID:               uuid.New(),
		Kind:             domain.KindProspect,
		Name:             "Glow Beauty",
		BusinessType:     domain.BusinessTypeDistributor,
		DiscoverySource:  domain.DiscoverySourcePartnership,
		SocialMediaLinks: "https://instagram.com/glowbeauty.my",
		City:             "Kuala Lumpur",
		Status:           status,
		CreatedAt:        fixedNow.Add(-72 * time.Hour),
		ModifiedAt:       fixedNow.Add(-72 * time.Hour),
	}
}
