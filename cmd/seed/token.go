package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ngenohkevin/maishamaua/internal/config"
	"github.com/ngenohkevin/maishamaua/internal/utils"
)

var tokenTTL time.Duration

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Generate a revalidation webhook token",
	Long: `Prints a signed JWT for the CMS webhook to present to the site server's
POST /api/revalidate endpoint. Configure it as the webhook's Authorization
bearer token. Requires REVALIDATE_SECRET.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cfg.RevalidateSecret == "" {
			return fmt.Errorf("REVALIDATE_SECRET environment variable is required")
		}

		token, err := utils.GenerateRevalidateToken(cfg.RevalidateSecret, tokenTTL)
		if err != nil {
			return fmt.Errorf("generate token: %w", err)
		}

		fmt.Println(token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 365*24*time.Hour, "token lifetime")
}
