package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/platform/config"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

const defaultQueue = "default"

type Client struct {
	client *asynq.Client
	queue  string
}

func NewClient(cfg config.SchedulerConfig) (*Client, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		client: asynq.NewClient(opt),
		queue:  defaultQueue,
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// EnqueueGenerateAbout schedules about generation for one entity. Repeated
// requests for the same entity within a minute collapse into one task.
func (c *Client) EnqueueGenerateAbout(ctx context.Context, kind domain.Kind, id uuid.UUID) error {
	if c == nil || c.client == nil {
		return nil
	}

	task, err := NewGenerateAboutTask(GenerateAboutPayload{EntityType: string(kind), EntityID: id.String()})
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue(c.queue),
		asynq.MaxRetry(3),
		asynq.Unique(time.Minute),
	)
	if err != nil && !errors.Is(err, asynq.ErrDuplicateTask) {
		return err
	}
	return nil
}

func redisClientOpt(redisURL string) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Username:  opt.Username,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: opt.TLSConfig,
	}, nil
}
