package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"beautycrm_backend/internal/bootstrap"
	"beautycrm_backend/internal/events"
	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/internal/scheduler"
	"beautycrm_backend/platform/config"
	"beautycrm_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting worker", "env", cfg.Env, "concurrency", cfg.WorkerConcurrency)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := bootstrap.ConnectDB(ctx, cfg, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	// About updates from the worker still land in the activity timeline.
	eventBus := events.NewInMemoryBus(log)

	mods, err := bootstrap.BuildModules(ctx, cfg, pool, eventBus, log)
	if err != nil {
		log.Error("failed to initialize modules", "error", err)
		panic("failed to initialize modules: " + err.Error())
	}
	defer mods.Close()

	worker, err := scheduler.NewWorker(cfg, map[domain.Kind]scheduler.AboutGenerator{
		domain.KindProspect: mods.Prospects.Lifecycle().Service(),
		domain.KindMerchant: mods.Merchants.Lifecycle().Service(),
	}, log)
	if err != nil {
		log.Error("failed to initialize worker", "error", err)
		panic("failed to initialize worker: " + err.Error())
	}

	worker.Run(ctx)
	eventBus.Wait()
	log.Info("worker stopped")
}
