package main

import (
	"encoding/json"
	"fmt"
	"os"

	"beautycrm_backend/internal/bootstrap"
	"beautycrm_backend/internal/events"
	"beautycrm_backend/internal/lifecycle/domain"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	var (
		kind  string
		actor string
	)
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Bulk import prospects or merchants from a JSON array file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := domain.TypeByKind(domain.Kind(kind)); !ok {
				return fmt.Errorf("unknown entity type %q", kind)
			}
			actorID := uuid.Nil
			if actor != "" {
				id, err := uuid.Parse(actor)
				if err != nil {
					return fmt.Errorf("invalid --actor: %w", err)
				}
				actorID = id
			}

			payload, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			e, err := loadEnv()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			pool, err := bootstrap.ConnectDB(ctx, e.cfg, e.log)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer pool.Close()

			bus := events.NewInMemoryBus(e.log)
			mods, err := bootstrap.BuildModules(ctx, e.cfg, pool, bus, e.log)
			if err != nil {
				return err
			}
			defer mods.Close()

			svc := mods.Prospects.Lifecycle().Service()
			if domain.Kind(kind) == domain.KindMerchant {
				svc = mods.Merchants.Lifecycle().Service()
			}

			resp, err := svc.BulkImport(ctx, payload, actorID)
			bus.Wait()
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}
	cmd.Flags().StringVar(&kind, "type", string(domain.KindProspect), "Entity type (prospect|merchant)")
	cmd.Flags().StringVar(&actor, "actor", "", "User id recorded as the importer")
	return cmd
}
