// Command crmctl runs operational tasks against the CRM database:
// migrations, batch rescoring, offline bulk import and dev tokens.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"beautycrm_backend/platform/config"
	"beautycrm_backend/platform/logger"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "crmctl",
		Short:         "Operational commands for the beauty CRM backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newMigrateCmd(),
		newRescoreCmd(),
		newImportCmd(),
		newTokenCmd(),
	)
	return root
}

// env is loaded lazily so `crmctl --help` works without a configured environment.
type env struct {
	cfg *config.Config
	log *logger.Logger
}

func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &env{cfg: cfg, log: logger.New(cfg.Env)}, nil
}
