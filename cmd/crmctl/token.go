package main

import (
	"fmt"
	"time"

	"beautycrm_backend/platform/httpkit"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		roles []string
		ttl   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Mint an access token for local development",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id: %w", err)
			}
			e, err := loadEnv()
			if err != nil {
				return err
			}
			token, err := httpkit.IssueAccessToken(e.cfg, userID, roles, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&roles, "role", []string{httpkit.RoleSalesRep}, "Roles to embed (admin,sales_manager,sales_rep)")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	return cmd
}
