package main

import (
	"github.com/spf13/cobra"

	"github.com/ngenohkevin/maishamaua/internal/config"
	"github.com/ngenohkevin/maishamaua/internal/logger"
	"github.com/ngenohkevin/maishamaua/internal/seeder"
	"github.com/ngenohkevin/maishamaua/internal/strapi"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Seed categories, products, gallery entries and site settings",
	Long: `Runs the full content-seeding workflow against the CMS. Categories are
looked up by slug first, so re-running never duplicates them. Products and
metadata-only gallery entries carry no such check: re-running the command
creates duplicates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		cfg.RequireToken()

		log := logger.New(cfg.AppEnv)
		defer log.Sync()

		client := strapi.NewClient(cfg.StrapiURL, cfg.StrapiToken)
		return seeder.New(client, log).Run(cmd.Context())
	},
}
