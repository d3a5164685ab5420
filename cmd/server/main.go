package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/sagarvizla/indus-creator-portal/internal/config"
	"github.com/sagarvizla/indus-creator-portal/internal/db"
	"github.com/sagarvizla/indus-creator-portal/internal/handler"
	"github.com/sagarvizla/indus-creator-portal/internal/middleware"
	"github.com/sagarvizla/indus-creator-portal/internal/repository"
	"github.com/sagarvizla/indus-creator-portal/internal/router"
	"github.com/sagarvizla/indus-creator-portal/internal/service"
	"github.com/sagarvizla/indus-creator-portal/internal/sink"
	"github.com/sagarvizla/indus-creator-portal/internal/youtube"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "creator-portal")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	handler.InitMetrics(pool)

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	catalog := youtube.NewClient(cfg.YouTubeAPIKey)
	if cfg.YouTubeAPIKey == "" {
		log.Println("warning: YOUTUBE_API_KEY not set, catalog calls will fail")
	}
	sheetSink := sink.NewClient(cfg.SinkWebAppURL)
	if cfg.SinkWebAppURL == "" {
		log.Println("warning: SINK_WEBAPP_URL not set, submissions will fail")
	}

	bindings := repository.NewBindingRepo(pool, cfg.MaxChannelChanges)
	sessions := service.NewSessionService()
	resolver := service.NewResolver(catalog)
	bindingSvc := service.NewBindingService(bindings, resolver, catalog, cache)
	catalogSvc := service.NewCatalogService(catalog, sessions, cfg.CatalogMaxResults)
	submissionSvc := service.NewSubmissionService(sessions, sheetSink)

	app := fiber.New(fiber.Config{
		AppName:      "Creator Portal API",
		ServerHeader: "CreatorPortal",
	})

	router.Setup(app, &router.Handlers{
		Binding:      handler.NewBindingHandler(bindingSvc, sessions),
		Catalog:      handler.NewCatalogHandler(bindingSvc, catalogSvc, sessions),
		Submit:       handler.NewSubmitHandler(bindingSvc, submissionSvc, sessions),
		Notification: handler.NewNotificationHandler(sessions),
		Health:       handler.NewHealthHandler(pool, cache.Client()),
	}, cfg.CORSOrigins)

	log.Printf("creator portal backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
