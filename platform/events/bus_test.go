package events

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"beautycrm_backend/platform/logger"
)

type pingEvent struct {
	BaseEvent
}

func (pingEvent) EventName() string { return "test.ping" }

func TestPublishSyncRunsHandlersAndJoinsErrors(t *testing.T) {
	bus := NewInMemoryBus(logger.Nop())
	var calls int32

	bus.Subscribe("test.ping", HandlerFunc(func(ctx context.Context, e Event) error {
		atomic.AddInt32(&calls, 1)
		return nil
	}))
	bus.Subscribe("test.ping", HandlerFunc(func(ctx context.Context, e Event) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("handler failed")
	}))

	err := bus.PublishSync(context.Background(), pingEvent{BaseEvent: NewBaseEvent()})
	if err == nil {
		t.Fatalf("expected joined error")
	}
	if calls != 2 {
		t.Fatalf("expected 2 handler calls, got %d", calls)
	}
}

func TestPublishAsyncSurvivesCanceledContext(t *testing.T) {
	bus := NewInMemoryBus(logger.Nop())
	var seenErr atomic.Value

	bus.Subscribe("test.ping", HandlerFunc(func(ctx context.Context, e Event) error {
		seenErr.Store(ctx.Err() == nil)
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bus.Publish(ctx, pingEvent{BaseEvent: NewBaseEvent()})
	bus.Wait()

	if ok, _ := seenErr.Load().(bool); !ok {
		t.Fatalf("expected handler context to be live after publisher cancellation")
	}
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := NewInMemoryBus(logger.Nop())
	bus.Publish(context.Background(), pingEvent{BaseEvent: NewBaseEvent()})
	bus.Wait()
	if err := bus.PublishSync(context.Background(), pingEvent{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
