package main

import (
	"fmt"
	"sync"

	"beautycrm_backend/internal/bootstrap"
	"beautycrm_backend/internal/lifecycle/domain"
	"beautycrm_backend/internal/lifecycle/repository"
	"beautycrm_backend/internal/lifecycle/service"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newRescoreCmd() *cobra.Command {
	var (
		batch int
		kinds []string
	)
	cmd := &cobra.Command{
		Use:   "rescore",
		Short: "Recompute scores for every non-terminal prospect and merchant",
		Long: `Recompute the score of every row that is not converted or lost and
persist the ones that changed. Entity types run concurrently; rows within a
type are visited in id order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			types, err := parseKinds(kinds)
			if err != nil {
				return err
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

			var mu sync.Mutex
			results := make(map[domain.Kind]service.RescoreResult, len(types))

			g, gctx := errgroup.WithContext(ctx)
			for _, et := range types {
				g.Go(func() error {
					repo := repository.New(pool, repository.TableFor(et.Kind))
					res, err := service.Rescore(gctx, repo, batch)
					if err != nil {
						return fmt.Errorf("rescore %s: %w", et.Kind, err)
					}
					mu.Lock()
					results[et.Kind] = res
					mu.Unlock()
					e.log.Info("rescore complete", "entity", et.Kind, "scanned", res.Scanned, "updated", res.Updated)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for _, et := range types {
				r := results[et.Kind]
				fmt.Fprintf(cmd.OutOrStdout(), "%s: scanned=%d updated=%d\n", et.Kind, r.Scanned, r.Updated)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&batch, "batch", 200, "Rows per page")
	cmd.Flags().StringSliceVar(&kinds, "type", []string{string(domain.KindProspect), string(domain.KindMerchant)}, "Entity types to rescore (prospect,merchant)")
	return cmd
}

func parseKinds(values []string) ([]domain.EntityType, error) {
	types := make([]domain.EntityType, 0, len(values))
	seen := make(map[domain.Kind]bool, len(values))
	for _, v := range values {
		et, ok := domain.TypeByKind(domain.Kind(v))
		if !ok {
			return nil, fmt.Errorf("unknown entity type %q", v)
		}
		if seen[et.Kind] {
			continue
		}
		seen[et.Kind] = true
		types = append(types, et)
	}
	return types, nil
}
