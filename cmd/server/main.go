package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-seatmap-editor/internal/config"
	"github.com/iliyamo/venue-seatmap-editor/internal/database"
	"github.com/iliyamo/venue-seatmap-editor/internal/handler"
	"github.com/iliyamo/venue-seatmap-editor/internal/middleware"
	"github.com/iliyamo/venue-seatmap-editor/internal/queue"
	"github.com/iliyamo/venue-seatmap-editor/internal/repository"
	"github.com/iliyamo/venue-seatmap-editor/internal/router"
	queue_publisher "github.com/iliyamo/venue-seatmap-editor/internal/service"
	"github.com/iliyamo/venue-seatmap-editor/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DSN())
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	maps := repository.NewSeatMapRepo(db)
	seats := repository.NewSeatRepo(db)
	tickets := repository.NewTicketTypeRepo(db)

	adapter := store.NewAdapter(store.NewRepoStore(seats, maps))

	authH := handler.NewAuthHandler(cfg, users, tokens)
	seatmapH := handler.NewSeatMapHandler(maps, seats, adapter, queue_publisher.PublishSeatMapSaved)
	ticketH := handler.NewTicketTypeHandler(tickets)
	editorH := handler.NewEditorConfigHandler(cfg.Editor)
	publicH := handler.NewPublicHandler(maps, adapter)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; caching and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limitMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterEditor(e, seatmapH, ticketH, editorH, cfg.JWTSecret, limitMW)
	router.RegisterPublic(e, publicH, cacheMW)

	go func() {
		if err := queue.StartSavedConsumer(); err != nil {
			log.Printf("seatmap consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
