package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ngenohkevin/maishamaua/internal/content"
	"github.com/ngenohkevin/maishamaua/internal/gallery"
	"github.com/ngenohkevin/maishamaua/internal/strapi"
	"github.com/ngenohkevin/maishamaua/internal/utils"
)

// ContentHandler serves the page payloads the frontend renders. Every CMS
// read is wrapped in the fallback decorator: an unreachable CMS degrades
// content freshness, never page availability.
type ContentHandler struct {
	svc *content.Service
	log *zap.Logger
}

// NewContentHandler constructs ContentHandler.
func NewContentHandler(svc *content.Service, log *zap.Logger) *ContentHandler {
	return &ContentHandler{svc: svc, log: log}
}

// Home returns everything the landing page needs in one payload.
func (h *ContentHandler) Home(c *fiber.Ctx) error {
	ctx := c.UserContext()
	available := true

	settings := content.Fallback(h.log, func() (*strapi.SiteSettings, error) {
		return h.svc.SiteSettings(ctx)
	}, content.FallbackSiteSettings())

	products := content.Fallback(h.log, func() ([]strapi.Product, error) {
		return h.svc.Products(ctx, content.ProductFilter{Available: &available, CategorySlug: "standard-bouquets"})
	}, content.FallbackProducts())

	customProducts := content.Fallback(h.log, func() ([]strapi.Product, error) {
		return h.svc.Products(ctx, content.ProductFilter{Available: &available, CategorySlug: "custom-orders"})
	}, content.FallbackCustomProducts())

	categories := content.Fallback(h.log, func() ([]strapi.Category, error) {
		return h.svc.Categories(ctx)
	}, content.FallbackCategories())

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"siteSettings":   settings,
		"products":       products,
		"customProducts": customProducts,
		"categories":     categories,
	}})
}

// ListProducts returns products filtered by the query parameters.
func (h *ContentHandler) ListProducts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	filter := content.ProductFilter{
		Featured:     utils.QueryBool(c, "featured"),
		Available:    utils.QueryBool(c, "available"),
		CategorySlug: c.Query("category"),
		Limit:        utils.QueryInt(c, "limit", 0),
	}

	products := content.Fallback(h.log, func() ([]strapi.Product, error) {
		return h.svc.Products(ctx, filter)
	}, content.FallbackProducts())

	return c.JSON(fiber.Map{"success": true, "data": products})
}

// GetProduct returns a single product by slug.
func (h *ContentHandler) GetProduct(c *fiber.Ctx) error {
	ctx := c.UserContext()
	slug := c.Params("slug")

	product := content.Fallback(h.log, func() (*strapi.Product, error) {
		return h.svc.ProductBySlug(ctx, slug)
	}, fallbackProductBySlug(slug))

	if product == nil {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// ListCategories returns all categories.
func (h *ContentHandler) ListCategories(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categories := content.Fallback(h.log, func() ([]strapi.Category, error) {
		return h.svc.Categories(ctx)
	}, content.FallbackCategories())

	return c.JSON(fiber.Map{"success": true, "data": categories})
}

// Gallery returns gallery entries plus the lightbox view state for the
// optionally selected image.
func (h *ContentHandler) Gallery(c *fiber.Ctx) error {
	ctx := c.UserContext()

	filter := content.GalleryFilter{
		Category: c.Query("category"),
		Featured: utils.QueryBool(c, "featured"),
		Limit:    utils.QueryInt(c, "limit", 0),
	}

	images := content.Fallback(h.log, func() ([]strapi.GalleryImage, error) {
		return h.svc.GalleryImages(ctx, filter)
	}, content.FallbackGalleryImages())

	slides := make([]gallery.Slide, 0, len(images))
	for _, img := range images {
		slides = append(slides, gallery.Slide{
			Src: h.svc.Client().ImageURL(img.Image),
			Alt: img.Title,
		})
	}

	lightbox := gallery.NewLightbox(slides)
	view := fiber.Map{"open": false}
	if index := utils.QueryInt(c, "index", -1); index >= 0 {
		lightbox.Open(index)
		if slide, ok := lightbox.Current(); ok {
			view = fiber.Map{
				"open":    true,
				"index":   lightbox.Index(),
				"slide":   slide,
				"counter": lightbox.Counter(),
				"next":    lightbox.NextIndex(),
				"prev":    lightbox.PrevIndex(),
			}
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"images":   images,
		"slides":   slides,
		"lightbox": view,
	}})
}

// ListTestimonials returns testimonials filtered by the query parameters.
// There is no bundled testimonial dataset, so an outage yields an empty
// list rather than stale quotes.
func (h *ContentHandler) ListTestimonials(c *fiber.Ctx) error {
	ctx := c.UserContext()

	filter := content.TestimonialFilter{
		Featured: utils.QueryBool(c, "featured"),
		Limit:    utils.QueryInt(c, "limit", 0),
	}

	testimonials := content.Fallback(h.log, func() ([]strapi.Testimonial, error) {
		return h.svc.Testimonials(ctx, filter)
	}, []strapi.Testimonial{})

	return c.JSON(fiber.Map{"success": true, "data": testimonials})
}

// SiteSettings returns the site settings singleton.
func (h *ContentHandler) SiteSettings(c *fiber.Ctx) error {
	ctx := c.UserContext()

	settings := content.Fallback(h.log, func() (*strapi.SiteSettings, error) {
		return h.svc.SiteSettings(ctx)
	}, content.FallbackSiteSettings())

	return c.JSON(fiber.Map{"success": true, "data": settings})
}

// fallbackProductBySlug searches the bundled dataset so product pages stay
// rendered during a CMS outage.
func fallbackProductBySlug(slug string) *strapi.Product {
	for _, set := range [][]strapi.Product{content.FallbackProducts(), content.FallbackCustomProducts()} {
		for i := range set {
			if set[i].Slug == slug {
				return &set[i]
			}
		}
	}
	return nil
}
