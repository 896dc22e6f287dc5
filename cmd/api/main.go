package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beautycrm_backend/internal/bootstrap"
	"beautycrm_backend/internal/email"
	"beautycrm_backend/internal/events"
	apphttp "beautycrm_backend/internal/http"
	"beautycrm_backend/internal/http/router"
	"beautycrm_backend/internal/notification"
	"beautycrm_backend/internal/scheduler"
	"beautycrm_backend/migrations"
	"beautycrm_backend/platform/config"
	"beautycrm_backend/platform/db"
	"beautycrm_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr, "demoMode", cfg.DemoMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := bootstrap.ConnectDB(ctx, cfg, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	if err := bootstrap.WithRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, pool, migrations.FS)
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	eventBus := events.NewInMemoryBus(log)

	mods, err := bootstrap.BuildModules(ctx, cfg, pool, eventBus, log)
	if err != nil {
		log.Error("failed to initialize modules", "error", err)
		panic("failed to initialize modules: " + err.Error())
	}
	defer mods.Close()

	notificationModule := notification.New(email.NewSender(cfg), cfg.GetAppBaseURL(), log)
	notificationModule.RegisterHandlers(eventBus)

	taskClient, closeTasks := initTaskClient(cfg, log)
	if taskClient != nil {
		defer closeTasks()
		for _, lc := range mods.Lifecycles() {
			lc.Service().SetTaskEnqueuer(taskClient)
		}
	}

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			mods.Users,
			mods.Accounts,
			mods.Opportunities,
			mods.Prospects,
			mods.Merchants,
			mods.Activity,
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		panic("server error: " + err.Error())
	}

	eventBus.Wait()
	log.Info("server stopped")
}

func initTaskClient(cfg config.SchedulerConfig, log *logger.Logger) (*scheduler.Client, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; imported rows get no background about text")
		return nil, nil
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize task client", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}
