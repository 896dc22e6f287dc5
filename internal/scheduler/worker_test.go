package scheduler

import (
	"context"
	"errors"
	"testing"

	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/internal/lifecycle/transport"
	"beautycrm_backend/platform/apperr"
	"beautycrm_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	calls []uuid.UUID
	err   error
}

func (f *fakeGenerator) GenerateAbout(_ context.Context, id uuid.UUID, _ uuid.UUID) (transport.EntityResponse, error) {
	f.calls = append(f.calls, id)
	return transport.EntityResponse{}, f.err
}

func TestAboutHandlerDispatchesByEntityType(t *testing.T) {
	prospects, merchants := &fakeGenerator{}, &fakeGenerator{}
	h := &aboutHandler{
		generators: map[domain.Kind]AboutGenerator{domain.KindProspect: prospects, domain.KindMerchant: merchants},
		log:        logger.Nop(),
	}
	id := uuid.New()
	task, err := NewGenerateAboutTask(GenerateAboutPayload{EntityType: "merchant", EntityID: id.String()})
	require.NoError(t, err)

	require.NoError(t, h.ProcessTask(context.Background(), task))

	assert.Equal(t, []uuid.UUID{id}, merchants.calls)
	assert.Empty(t, prospects.calls)
}

func TestAboutHandlerSkipsRetryOnBadPayload(t *testing.T) {
	h := &aboutHandler{generators: map[domain.Kind]AboutGenerator{}, log: logger.Nop()}

	err := h.ProcessTask(context.Background(), asynq.NewTask(TaskGenerateAbout, []byte(`{"entityType":"prospect","entityId":"nope"}`)))
	assert.True(t, errors.Is(err, asynq.SkipRetry))

	task, _ := NewGenerateAboutTask(GenerateAboutPayload{EntityType: "lead", EntityID: uuid.NewString()})
	err = h.ProcessTask(context.Background(), task)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestAboutHandlerIgnoresDeletedEntities(t *testing.T) {
	gen := &fakeGenerator{err: apperr.NotFound("prospect not found")}
	h := &aboutHandler{generators: map[domain.Kind]AboutGenerator{domain.KindProspect: gen}, log: logger.Nop()}
	task, _ := NewGenerateAboutTask(GenerateAboutPayload{EntityType: "prospect", EntityID: uuid.NewString()})

	assert.NoError(t, h.ProcessTask(context.Background(), task))

	gen.err = errors.New("db down")
	assert.Error(t, h.ProcessTask(context.Background(), task))
}
