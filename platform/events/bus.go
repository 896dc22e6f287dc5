package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"beautycrm_backend/platform/logger"
)

const asyncHandlerTimeout = 30 * time.Second

// InMemoryBus dispatches events to handlers registered in the same process.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	log      *logger.Logger
	wg       sync.WaitGroup
}

// NewInMemoryBus creates an empty bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string][]Handler),
		log:      log,
	}
}

// Subscribe registers handler for eventName.
func (b *InMemoryBus) Subscribe(eventName string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

// Publish runs every handler in its own goroutine. The request context is not
// propagated for cancellation so handlers outlive the publishing request.
func (b *InMemoryBus) Publish(ctx context.Context, event Event) {
	for _, h := range b.snapshot(event.EventName()) {
		b.wg.Add(1)
		go func(h Handler) {
			defer b.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					b.log.Error("event handler panicked", "event", event.EventName(), "panic", fmt.Sprint(r))
				}
			}()

			hctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), asyncHandlerTimeout)
			defer cancel()
			if err := h.Handle(hctx, event); err != nil {
				b.log.Error("event handler failed", "event", event.EventName(), "error", err)
			}
		}(h)
	}
}

// PublishSync runs handlers sequentially and joins their errors.
func (b *InMemoryBus) PublishSync(ctx context.Context, event Event) error {
	var errs []error
	for _, h := range b.snapshot(event.EventName()) {
		if err := h.Handle(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Wait blocks until in-flight async handlers finish. Used during shutdown.
func (b *InMemoryBus) Wait() {
	b.wg.Wait()
}

func (b *InMemoryBus) snapshot(name string) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	handlers := b.handlers[name]
	out := make([]Handler, len(handlers))
	copy(out, handlers)
	return out
}
