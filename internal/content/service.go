package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ngenohkevin/maishamaua/internal/cache"
	"github.com/ngenohkevin/maishamaua/internal/strapi"
)

// Invalidation tags, one per CMS collection the read path consumes.
const (
	TagProducts     = "products"
	TagCategories   = "categories"
	TagGallery      = "gallery"
	TagTestimonials = "testimonials"
	TagSiteSettings = "site-settings"
)

// ErrNoSiteSettings is returned when the CMS singleton has not been
// created yet.
var ErrNoSiteSettings = errors.New("site settings not configured in CMS")

// Service produces typed, cached views over the CMS collections. Each
// accessor memoizes its result for the configured TTL under a named tag;
// concurrent callers inside the window get the cached copy without a new
// HTTP call. Fetch errors propagate to the caller, whose contract is to
// substitute the bundled fallback content via Fallback.
type Service struct {
	client *strapi.Client
	cache  cache.Cache
	ttl    time.Duration
	log    *zap.Logger
}

// NewService wires a content service over the given CMS client and cache.
func NewService(client *strapi.Client, c cache.Cache, ttl time.Duration, log *zap.Logger) *Service {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &Service{client: client, cache: c, ttl: ttl, log: log}
}

// Client exposes the underlying CMS client for URL resolution.
func (s *Service) Client() *strapi.Client {
	return s.client
}

// ProductFilter narrows product listings. Nil pointer fields are skipped;
// all set fields AND-combine.
type ProductFilter struct {
	Featured     *bool
	Available    *bool
	CategorySlug string
	Limit        int
}

// GalleryFilter narrows gallery listings.
type GalleryFilter struct {
	Category string
	Featured *bool
	Limit    int
}

// TestimonialFilter narrows testimonial listings.
type TestimonialFilter struct {
	Featured *bool
	Limit    int
}

// cached memoizes fetch under key/tag, round-tripping values through JSON
// so the cache backend stays type-agnostic. Cache population is idempotent
// and safe to race.
func cached[T any](ctx context.Context, s *Service, key, tag string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	if raw, err := s.cache.Get(ctx, key); err == nil {
		var out T
		if err := json.Unmarshal(raw, &out); err == nil {
			return out, nil
		}
		s.log.Warn("discarding undecodable cache entry", zap.String("key", key))
	} else if !cache.IsMiss(err) {
		s.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	value, err := fetch(ctx)
	if err != nil {
		return zero, err
	}

	if raw, err := json.Marshal(value); err == nil {
		if err := s.cache.Set(ctx, key, raw, tag, s.ttl); err != nil {
			s.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return value, nil
}

// Products returns products matching the filter, orderered by sortOrder
// with relations expanded. Zero matching rows yield an empty slice.
func (s *Service) Products(ctx context.Context, filter ProductFilter) ([]strapi.Product, error) {
	q := strapi.NewListQuery().Populate("*").SortAsc("sortOrder")
	if filter.Featured != nil {
		q.Eq("featured", *filter.Featured)
	}
	if filter.Available != nil {
		q.Eq("available", *filter.Available)
	}
	if filter.CategorySlug != "" {
		q.Eq("category.slug", filter.CategorySlug)
	}
	if filter.Limit > 0 {
		q.Limit(filter.Limit)
	}

	key := "products?" + q.Encode()
	return cached(ctx, s, key, TagProducts, func(ctx context.Context) ([]strapi.Product, error) {
		return s.client.ListProducts(ctx, q)
	})
}

// ProductBySlug returns a single product, or nil when no product carries
// the slug.
func (s *Service) ProductBySlug(ctx context.Context, slug string) (*strapi.Product, error) {
	q := strapi.NewListQuery().Populate("*").Eq("slug", slug)

	key := "product?" + q.Encode()
	products, err := cached(ctx, s, key, TagProducts, func(ctx context.Context) ([]strapi.Product, error) {
		return s.client.ListProducts(ctx, q)
	})
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}
	return &products[0], nil
}

// Categories returns all categories ordered by sortOrder.
func (s *Service) Categories(ctx context.Context) ([]strapi.Category, error) {
	q := strapi.NewListQuery().Populate("*").SortAsc("sortOrder")

	key := "categories?" + q.Encode()
	return cached(ctx, s, key, TagCategories, func(ctx context.Context) ([]strapi.Category, error) {
		return s.client.ListCategories(ctx, q)
	})
}

// GalleryImages returns gallery entries matching the filter, ordered by
// sortOrder.
func (s *Service) GalleryImages(ctx context.Context, filter GalleryFilter) ([]strapi.GalleryImage, error) {
	q := strapi.NewListQuery().Populate("*").SortAsc("sortOrder")
	if filter.Category != "" {
		q.Eq("galleryCategory", filter.Category)
	}
	if filter.Featured != nil {
		q.Eq("featured", *filter.Featured)
	}
	if filter.Limit > 0 {
		q.Limit(filter.Limit)
	}

	key := "gallery-images?" + q.Encode()
	return cached(ctx, s, key, TagGallery, func(ctx context.Context) ([]strapi.GalleryImage, error) {
		return s.client.ListGalleryImages(ctx, q)
	})
}

// Testimonials returns testimonials matching the filter, ordered by
// sortOrder.
func (s *Service) Testimonials(ctx context.Context, filter TestimonialFilter) ([]strapi.Testimonial, error) {
	q := strapi.NewListQuery().Populate("*").SortAsc("sortOrder")
	if filter.Featured != nil {
		q.Eq("featured", *filter.Featured)
	}
	if filter.Limit > 0 {
		q.Limit(filter.Limit)
	}

	key := "testimonials?" + q.Encode()
	return cached(ctx, s, key, TagTestimonials, func(ctx context.Context) ([]strapi.Testimonial, error) {
		return s.client.ListTestimonials(ctx, q)
	})
}

// SiteSettings returns the site settings singleton. An absent singleton is
// an error so callers fall back to the bundled settings.
func (s *Service) SiteSettings(ctx context.Context) (*strapi.SiteSettings, error) {
	q := strapi.NewListQuery().Populate("*")

	key := "site-setting?" + q.Encode()
	settings, err := cached(ctx, s, key, TagSiteSettings, func(ctx context.Context) (*strapi.SiteSettings, error) {
		return s.client.GetSiteSettings(ctx, q)
	})
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, ErrNoSiteSettings
	}
	return settings, nil
}

// Invalidate drops every cached entry under the given tags, forcing the
// next accessor call to refetch before the TTL expires.
func (s *Service) Invalidate(ctx context.Context, tags ...string) error {
	for _, tag := range tags {
		if err := s.cache.InvalidateTag(ctx, tag); err != nil {
			return fmt.Errorf("invalidate tag %s: %w", tag, err)
		}
		s.log.Info("cache tag invalidated", zap.String("tag", tag))
	}
	return nil
}
