package main

import (
	"github.com/spf13/cobra"

	"github.com/ngenohkevin/maishamaua/internal/config"
	"github.com/ngenohkevin/maishamaua/internal/logger"
	"github.com/ngenohkevin/maishamaua/internal/seeder"
	"github.com/ngenohkevin/maishamaua/internal/strapi"
)

var productImagesCmd = &cobra.Command{
	Use:   "product-images",
	Short: "Upload product images and link them to products",
	Long: `Fetches every product from the CMS, uploads the mapped local image file
for each, then replaces the product's image list with the new asset.
Products without a mapping or a local file are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		cfg.RequireToken()

		log := logger.New(cfg.AppEnv)
		defer log.Sync()

		client := strapi.NewClient(cfg.StrapiURL, cfg.StrapiToken)
		return seeder.New(client, log).UploadProductImages(cmd.Context(), cfg.ImagesDir)
	},
}

var galleryImagesCmd = &cobra.Command{
	Use:   "gallery-images",
	Short: "Upload gallery images and create gallery entries",
	Long: `Deletes all existing gallery entries, then uploads each local gallery
image and creates an entry referencing it. Missing local files are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		cfg.RequireToken()

		log := logger.New(cfg.AppEnv)
		defer log.Sync()

		client := strapi.NewClient(cfg.StrapiURL, cfg.StrapiToken)
		return seeder.New(client, log).UploadGalleryImages(cmd.Context(), cfg.ImagesDir)
	},
}
