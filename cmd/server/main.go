package main

import (
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/ngenohkevin/maishamaua/internal/cache"
	"github.com/ngenohkevin/maishamaua/internal/config"
	"github.com/ngenohkevin/maishamaua/internal/content"
	"github.com/ngenohkevin/maishamaua/internal/logger"
	"github.com/ngenohkevin/maishamaua/internal/routes"
	"github.com/ngenohkevin/maishamaua/internal/strapi"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.AppEnv)
	defer log.Sync()

	store := newCache(cfg, log)
	defer store.Close()

	client := strapi.NewClient(cfg.StrapiURL, cfg.StrapiToken)
	svc := content.NewService(client, store, cfg.CacheTTL, log)

	app := fiber.New(fiber.Config{
		AppName: "Maisha Maua Backend",
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())

	routes.Register(app, svc, cfg, log)

	log.Info("starting server",
		zap.String("port", cfg.AppPort),
		zap.String("strapi_url", cfg.StrapiURL))
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatal("fiber.Listen error", zap.Error(err))
	}
}

// newCache picks the cache backend: Redis when REDIS_ADDR is set so
// multiple instances share invalidations, in-memory otherwise.
func newCache(cfg *config.Config, log *zap.Logger) cache.Cache {
	cacheCfg := cache.DefaultConfig()
	cacheCfg.DefaultTTL = cfg.CacheTTL

	if cfg.RedisAddr != "" {
		store, err := cache.NewRedis(cfg.RedisAddr, cacheCfg)
		if err != nil {
			log.Warn("redis unavailable, using in-memory cache", zap.Error(err))
			return cache.NewMemoryWithConfig(cacheCfg)
		}
		log.Info("using redis cache", zap.String("addr", cfg.RedisAddr))
		return store
	}

	return cache.NewMemoryWithConfig(cacheCfg)
}
