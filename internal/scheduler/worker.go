package scheduler

import (
	"context"
	"fmt"

	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/internal/lifecycle/transport"
	"beautycrm_backend/platform/apperr"
	"beautycrm_backend/platform/config"
	"beautycrm_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// AboutGenerator regenerates the about text of one entity.
type AboutGenerator interface {
	GenerateAbout(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (transport.EntityResponse, error)
}

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, generators map[domain.Kind]AboutGenerator, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL)
	if err != nil {
		return nil, err
	}

	concurrency := cfg.GetWorkerConcurrency()
	if concurrency < 1 {
		concurrency = 5
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			defaultQueue: 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.Handle(TaskGenerateAbout, &aboutHandler{generators: generators, log: log})

	return &Worker{server: server, mux: mux, log: log}, nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

type aboutHandler struct {
	generators map[domain.Kind]AboutGenerator
	log        *logger.Logger
}

func (h *aboutHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseGenerateAboutPayload(task)
	if err != nil {
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}

	id, err := uuid.Parse(payload.EntityID)
	if err != nil {
		return fmt.Errorf("entity id: %v: %w", err, asynq.SkipRetry)
	}

	gen, ok := h.generators[domain.Kind(payload.EntityType)]
	if !ok {
		return fmt.Errorf("unknown entity type %q: %w", payload.EntityType, asynq.SkipRetry)
	}

	if _, err := gen.GenerateAbout(ctx, id, uuid.Nil); err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			h.log.Warn("about generation skipped, entity gone", "entity", payload.EntityType, "id", id)
			return nil
		}
		return err
	}
	return nil
}
