// Package bootstrap holds the composition steps shared by the api, worker
// and crmctl binaries.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"beautycrm_backend/internal/accounts"
	"beautycrm_backend/internal/activity"
	"beautycrm_backend/internal/adapters"
	"beautycrm_backend/internal/adapters/storage"
	"beautycrm_backend/internal/events"
	"beautycrm_backend/internal/lifecycle"
	"beautycrm_backend/internal/lifecycle/about"
	"beautycrm_backend/internal/lifecycle/transport"
	"beautycrm_backend/internal/merchants"
	"beautycrm_backend/internal/opportunities"
	"beautycrm_backend/internal/prospects"
	"beautycrm_backend/internal/users"
	"beautycrm_backend/platform/cache"
	"beautycrm_backend/platform/config"
	"beautycrm_backend/platform/db"
	"beautycrm_backend/platform/logger"
	"beautycrm_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

const rosterCachePrefix = "beautycrm:"

// WithRetry runs fn up to attempts times with quadratic backoff.
func WithRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}

// ConnectDB opens the pool, retrying while the database comes up.
func ConnectDB(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	err := WithRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// NewCache returns a Redis cache when REDIS_URL is set, otherwise a no-op.
// The returned close func is never nil.
func NewCache(cfg config.RedisConfig, log *logger.Logger) (cache.Cache, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; roster cache disabled")
		return cache.NewNoop(), func() {}
	}
	rc, err := cache.NewRedis(cfg.GetRedisURL(), rosterCachePrefix)
	if err != nil {
		log.Error("failed to initialize redis cache, continuing without", "error", err)
		return cache.NewNoop(), func() {}
	}
	return rc, func() { _ = rc.Close() }
}

// NewStorage returns the object store, or nil when MinIO is not configured.
func NewStorage(ctx context.Context, cfg config.MinIOConfig, log *logger.Logger) (storage.StorageService, error) {
	if !cfg.IsMinIOEnabled() {
		log.Warn("MINIO_ENDPOINT not configured; import archiving disabled")
		return nil, nil
	}

	svc, err := storage.NewMinIOService(cfg)
	if err != nil {
		return nil, err
	}
	bucket := cfg.GetMinioBucketImports()
	if err := WithRetry(ctx, log, "ensure imports bucket", 5, 2*time.Second, func() error {
		return svc.EnsureBucketExists(ctx, bucket)
	}); err != nil {
		return nil, fmt.Errorf("ensure storage bucket %s: %w", bucket, err)
	}
	log.Info("storage service initialized", "importsBucket", bucket)
	return svc, nil
}

// NewAboutGenerator loads the curated lookup table (file first, then object
// storage) and enables Gemini synthesis when an API key is configured.
func NewAboutGenerator(ctx context.Context, cfg config.AboutConfig, store storage.StorageService, log *logger.Logger) (*about.Generator, error) {
	lookup, err := about.LoadLookupFile(cfg.GetAboutLookupFile())
	if err != nil {
		return nil, fmt.Errorf("load about lookup file: %w", err)
	}
	if location := cfg.GetAboutLookupObject(); location != "" && store != nil {
		remote, err := about.LoadLookupObject(ctx, store, location)
		if err != nil {
			return nil, fmt.Errorf("load about lookup object: %w", err)
		}
		for id, text := range remote {
			if _, ok := lookup[id]; !ok {
				lookup[id] = text
			}
		}
	}

	var ai about.Synthesizer
	if key := cfg.GetGeminiAPIKey(); key != "" {
		g, err := about.NewGeminiSynthesizer(ctx, key, cfg.GetGeminiModel())
		if err != nil {
			log.Error("gemini unavailable, about text falls back to template", "error", err)
		} else {
			ai = g
		}
	}

	log.Info("about generator initialized", "lookupEntries", len(lookup), "ai", ai != nil)
	return about.NewGenerator(lookup, ai, log), nil
}

// Config is everything the domain modules read from configuration.
type Config interface {
	config.RedisConfig
	config.TerritoryConfig
	config.MinIOConfig
	config.AboutConfig
	config.LifecycleConfig
}

// Modules are the wired domain modules.
type Modules struct {
	Users         *users.Module
	Accounts      *accounts.Module
	Opportunities *opportunities.Module
	Prospects     *prospects.Module
	Merchants     *merchants.Module
	Activity      *activity.Module
	Validator     *validator.Validator

	closers []func()
}

// Close releases the cache connection.
func (m *Modules) Close() {
	for i := len(m.closers) - 1; i >= 0; i-- {
		m.closers[i]()
	}
}

// Lifecycles returns the lifecycle stacks of both entity types.
func (m *Modules) Lifecycles() []*lifecycle.EntityLifecycle {
	return []*lifecycle.EntityLifecycle{m.Prospects.Lifecycle(), m.Merchants.Lifecycle()}
}

// BuildModules wires users, accounts, opportunities, both lifecycles and the
// activity recorder on top of pool and bus.
func BuildModules(ctx context.Context, cfg Config, pool *pgxpool.Pool, bus events.Bus, log *logger.Logger) (*Modules, error) {
	val := validator.New()
	if err := transport.RegisterValidations(val); err != nil {
		return nil, fmt.Errorf("register validations: %w", err)
	}

	rosterCache, closeCache := NewCache(cfg, log)
	mods := &Modules{Validator: val, closers: []func(){closeCache}}

	usersModule, err := users.NewModule(pool, rosterCache, cfg, val, log)
	if err != nil {
		mods.Close()
		return nil, fmt.Errorf("users module: %w", err)
	}
	mods.Users = usersModule

	store, err := NewStorage(ctx, cfg, log)
	if err != nil {
		mods.Close()
		return nil, err
	}
	generator, err := NewAboutGenerator(ctx, cfg, store, log)
	if err != nil {
		mods.Close()
		return nil, err
	}

	deps := lifecycle.Deps{
		DB:        pool,
		Reps:      adapters.NewRepDirectoryAdapter(usersModule.Service()),
		About:     generator,
		Bus:       bus,
		Validator: val,
		Log:       log,
		DemoMode:  cfg.IsDemoMode(),
	}

	mods.Accounts = accounts.NewModule(pool, log)
	mods.Opportunities = opportunities.NewModule(pool, log)
	mods.Prospects = prospects.NewModule(deps, pool, mods.Accounts.Repository(), mods.Opportunities.Repository(), cfg)
	mods.Merchants = merchants.NewModule(deps)
	mods.Activity = activity.NewModule(pool, bus, log)

	if store != nil {
		archiver := adapters.NewImportArchiver(store, cfg.GetMinioBucketImports())
		for _, lc := range mods.Lifecycles() {
			lc.Service().SetImportArchiver(archiver)
		}
	}

	return mods, nil
}
