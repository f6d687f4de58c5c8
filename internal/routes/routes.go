package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ngenohkevin/maishamaua/internal/config"
	"github.com/ngenohkevin/maishamaua/internal/content"
	"github.com/ngenohkevin/maishamaua/internal/handlers"
	"github.com/ngenohkevin/maishamaua/internal/middleware"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, svc *content.Service, cfg *config.Config, log *zap.Logger) {
	contentHandler := handlers.NewContentHandler(svc, log)
	revalidateHandler := handlers.NewRevalidateHandler(svc, log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	pages := api.Group("/pages")
	pages.Get("/home", contentHandler.Home)

	products := api.Group("/products")
	products.Get("/", contentHandler.ListProducts)
	products.Get("/:slug", contentHandler.GetProduct)

	api.Get("/categories", contentHandler.ListCategories)
	api.Get("/gallery", contentHandler.Gallery)
	api.Get("/testimonials", contentHandler.ListTestimonials)
	api.Get("/site-settings", contentHandler.SiteSettings)

	if cfg.RevalidateSecret != "" {
		api.Post("/revalidate", middleware.RevalidateAuth(cfg.RevalidateSecret), revalidateHandler.Revalidate)
	} else {
		log.Warn("REVALIDATE_SECRET not set, cache revalidation endpoint disabled")
	}
}
