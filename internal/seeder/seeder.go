package seeder

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ngenohkevin/maishamaua/internal/strapi"
)

// Seeder populates the CMS with the bootstrap dataset. Steps run strictly
// in order because later steps consume identifiers produced by earlier
// ones, and all calls are sequential: the CMS is rate sensitive and a
// single manual run has no need for fan-out.
type Seeder struct {
	client *strapi.Client
	log    *zap.Logger
}

// New builds a Seeder. Every log line of a run carries the same run id.
func New(client *strapi.Client, log *zap.Logger) *Seeder {
	return &Seeder{
		client: client,
		log:    log.With(zap.String("run_id", uuid.NewString())),
	}
}

// Run executes the full content-seeding workflow: categories, products,
// gallery entries, site settings. The first unrecoverable error aborts the
// run; per-item recoverable errors are logged and skipped.
func (s *Seeder) Run(ctx context.Context) error {
	s.log.Info("starting seed", zap.String("strapi_url", s.client.BaseURL()))

	categoryIDs, err := s.SeedCategories(ctx)
	if err != nil {
		return err
	}

	if err := s.SeedProducts(ctx, categoryIDs); err != nil {
		return err
	}

	if err := s.SeedGalleryEntries(ctx); err != nil {
		return err
	}

	if err := s.SeedSiteSettings(ctx); err != nil {
		return err
	}

	s.log.Info("seed completed")
	return nil
}

// SeedCategories creates the bootstrap categories, reusing any record that
// already carries the slug, and returns the slug to id map the product
// step needs. Safe to re-run.
func (s *Seeder) SeedCategories(ctx context.Context) (map[string]int, error) {
	categoryIDs := make(map[string]int, len(bootstrapCategories))

	for _, category := range bootstrapCategories {
		existing := s.findCategoryBySlug(ctx, category.Slug)
		if existing != nil {
			s.log.Info("category already exists", zap.String("name", category.Name))
			categoryIDs[category.Slug] = existing.ID
			continue
		}

		created, err := s.client.CreateCategory(ctx, strapi.CategoryInput{
			Name:        category.Name,
			Slug:        category.Slug,
			Description: category.Description,
			SortOrder:   category.SortOrder,
		})
		if err != nil {
			return nil, fmt.Errorf("create category %s: %w", category.Name, err)
		}

		s.log.Info("created category", zap.String("name", category.Name))
		categoryIDs[category.Slug] = created.ID
	}

	return categoryIDs, nil
}

// findCategoryBySlug treats any lookup failure as "not found", matching
// the create-on-doubt behavior of the original workflow.
func (s *Seeder) findCategoryBySlug(ctx context.Context, slug string) *strapi.Category {
	q := strapi.NewListQuery().Eq("slug", slug)
	categories, err := s.client.ListCategories(ctx, q)
	if err != nil || len(categories) == 0 {
		return nil
	}
	return &categories[0]
}

// SeedProducts creates the bootstrap products. A product whose category
// slug does not resolve is skipped with a warning rather than aborting the
// run. Re-running duplicates products: creation performs no existence
// check. Products with sortOrder 4 or lower are marked featured.
func (s *Seeder) SeedProducts(ctx context.Context, categoryIDs map[string]int) error {
	for _, product := range bootstrapProducts {
		categoryID, ok := categoryIDs[product.CategorySlug]
		if !ok {
			s.log.Warn("category not found for product, skipping",
				zap.String("product", product.Name),
				zap.String("category_slug", product.CategorySlug))
			continue
		}

		_, err := s.client.CreateProduct(ctx, strapi.ProductInput{
			Name:        product.Name,
			Slug:        Slugify(product.Name),
			Description: product.Description,
			Price:       product.Price,
			Size:        product.Size,
			SortOrder:   product.SortOrder,
			Featured:    product.SortOrder <= 4,
			Available:   true,
			CustomOrder: product.CustomOrder,
			Category:    categoryID,
		})
		if err != nil {
			return fmt.Errorf("create product %s: %w", product.Name, err)
		}

		s.log.Info("created product", zap.String("name", product.Name))
	}

	return nil
}

// SeedGalleryEntries creates the metadata-only gallery entries. Entries
// with sortOrder 8 or lower are marked featured. Not idempotent.
func (s *Seeder) SeedGalleryEntries(ctx context.Context) error {
	for _, entry := range bootstrapGalleryEntries {
		_, err := s.client.CreateGalleryImage(ctx, strapi.GalleryImageInput{
			Title:           entry.Title,
			GalleryCategory: entry.Category,
			SortOrder:       entry.SortOrder,
			Featured:        entry.SortOrder <= 8,
		})
		if err != nil {
			return fmt.Errorf("create gallery image %s: %w", entry.Title, err)
		}

		s.log.Info("created gallery image", zap.String("title", entry.Title))
	}

	return nil
}

// SeedSiteSettings creates or updates the site settings singleton. The
// existence check decides POST versus PUT so re-runs never produce a
// second row.
func (s *Seeder) SeedSiteSettings(ctx context.Context) error {
	existing, err := s.client.GetSiteSettings(ctx, nil)
	if err != nil {
		return fmt.Errorf("check site settings: %w", err)
	}

	if existing != nil {
		if _, err := s.client.UpdateSiteSettings(ctx, bootstrapSiteSettings); err != nil {
			return fmt.Errorf("update site settings: %w", err)
		}
		s.log.Info("updated site settings")
		return nil
	}

	if _, err := s.client.CreateSiteSettings(ctx, bootstrapSiteSettings); err != nil {
		return fmt.Errorf("create site settings: %w", err)
	}
	s.log.Info("created site settings")
	return nil
}

// Slugify derives a URL slug from a display name: lowercase with runs of
// whitespace collapsed to single dashes.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
