package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Maisha Maua CMS seeding tools",
		Long: `Populates the headless CMS with the bootstrap dataset: categories,
products, gallery entries and site settings, and uploads the image assets
that go with them. Requires STRAPI_API_TOKEN.`,
	}

	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(productImagesCmd)
	rootCmd.AddCommand(galleryImagesCmd)
	rootCmd.AddCommand(tokenCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
