package seeder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ngenohkevin/maishamaua/internal/strapi"
)

// UploadProductImages uploads a local image for each product and links it
// as the product's image list, replacing whatever was attached before.
// Products without a mapping or whose file is missing are skipped.
func (s *Seeder) UploadProductImages(ctx context.Context, imagesDir string) error {
	s.log.Info("starting product image upload", zap.String("strapi_url", s.client.BaseURL()))

	products, err := s.client.ListProducts(ctx, nil)
	if err != nil {
		return fmt.Errorf("fetch products: %w", err)
	}
	s.log.Info("fetched products", zap.Int("count", len(products)))

	for _, product := range products {
		fileName, ok := productImageFiles[product.Slug]
		if !ok {
			s.log.Warn("no image mapping for product", zap.String("name", product.Name))
			continue
		}

		imagePath := filepath.Join(imagesDir, fileName)
		if _, err := os.Stat(imagePath); err != nil {
			s.log.Warn("image file not found", zap.String("path", imagePath))
			continue
		}

		asset, err := s.uploadFile(ctx, imagePath, fileName)
		if err != nil {
			s.log.Error("upload failed", zap.String("product", product.Name), zap.Error(err))
			continue
		}

		_, err = s.client.UpdateProduct(ctx, product.DocumentID, strapi.ProductUpdate{Images: []int{asset.ID}})
		if err != nil {
			s.log.Error("link failed", zap.String("product", product.Name), zap.Error(err))
			continue
		}

		s.log.Info("linked image to product",
			zap.String("product", product.Name),
			zap.Int("asset_id", asset.ID))
	}

	s.log.Info("product image upload complete")
	return nil
}

// UploadGalleryImages clears all existing gallery entries, then uploads
// each local gallery file and creates an entry referencing the new asset.
// Clearing first keeps re-runs from accumulating duplicate or orphaned
// entries. Missing files are skipped. Entries with sortOrder 12 or lower
// are marked featured.
func (s *Seeder) UploadGalleryImages(ctx context.Context, imagesDir string) error {
	s.log.Info("starting gallery image upload", zap.String("strapi_url", s.client.BaseURL()))

	s.deleteExistingGalleryEntries(ctx)

	uploaded := 0
	sortOrder := 1
	for _, item := range galleryImageFiles {
		imagePath := filepath.Join(imagesDir, item.File)
		if _, err := os.Stat(imagePath); err != nil {
			s.log.Warn("image not found", zap.String("file", item.File))
			continue
		}

		s.log.Info("uploading gallery image",
			zap.Int("position", sortOrder),
			zap.Int("total", len(galleryImageFiles)),
			zap.String("title", item.Title))

		asset, err := s.uploadFile(ctx, imagePath, item.File)
		if err != nil {
			s.log.Error("upload failed", zap.String("file", item.File), zap.Error(err))
			continue
		}

		_, err = s.client.CreateGalleryImage(ctx, strapi.GalleryImageInput{
			Title:           item.Title,
			GalleryCategory: item.Category,
			Image:           asset.ID,
			SortOrder:       sortOrder,
			Featured:        sortOrder <= 12,
		})
		if err != nil {
			s.log.Error("create gallery entry failed", zap.String("title", item.Title), zap.Error(err))
			continue
		}

		uploaded++
		sortOrder++
	}

	s.log.Info("gallery upload complete", zap.Int("uploaded", uploaded))
	return nil
}

// deleteExistingGalleryEntries removes current gallery entries. A listing
// failure is tolerated: the upload pass then runs against whatever is
// there, same as the original workflow.
func (s *Seeder) deleteExistingGalleryEntries(ctx context.Context) {
	q := strapi.NewListQuery().Limit(100)
	entries, err := s.client.ListGalleryImages(ctx, q)
	if err != nil {
		s.log.Warn("could not list existing gallery entries", zap.Error(err))
		return
	}

	for _, entry := range entries {
		if err := s.client.DeleteGalleryImage(ctx, entry.DocumentID); err != nil {
			s.log.Warn("delete failed", zap.String("title", entry.Title), zap.Error(err))
			continue
		}
		s.log.Info("deleted old gallery entry", zap.String("title", entry.Title))
	}
}

func (s *Seeder) uploadFile(ctx context.Context, path, fileName string) (*strapi.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return s.client.Upload(ctx, fileName, f)
}
