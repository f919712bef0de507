package main

import (
	"context"
	"log"
	"net/http"

	_ "festadmin/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"festadmin/internal/auth"
	"festadmin/internal/cache"
	"festadmin/internal/config"
	"festadmin/internal/gate"
	"festadmin/internal/handler"
	"festadmin/internal/router"
	"festadmin/internal/session"
	"festadmin/internal/upstream"
)

// @title Festival Admin Dashboard
// @version 1.0
// @description Staff dashboard over the festival registration API: volunteer and master applications, ticket management.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	e := echo.New()
	e.HideBanner = true

	renderer, err := handler.NewRenderer()
	if err != nil {
		logger.Fatal("template init", zap.Error(err))
	}
	e.Renderer = renderer

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	store := session.NewStore(session.NewCacheStorage(cacheClient), logger, cfg.DefaultLocale)
	store.Hydrate(context.Background())

	// A 401 from the upstream means the token died server-side; the hook
	// clears the session before the failing call returns.
	client := upstream.New(cfg.UpstreamURL, store, logger,
		upstream.WithUnauthorizedHook(func(ctx context.Context) {
			store.Logout(ctx)
		}))
	store.SetAuthenticator(client)

	jwtService := auth.NewJWTService(cfg.SessionSecret)
	g := gate.New(store, jwtService)

	controllers := handler.NewControllers(client, store.Locale)

	authHandler := handler.NewAuthHandler(store, jwtService, logger)
	pageHandler := handler.NewPageHandler(store, client, controllers, cfg.PageSize)
	volunteerHandler := handler.NewVolunteerHandler(store, controllers)
	masterHandler := handler.NewMasterHandler(store, client, controllers)
	ticketHandler := handler.NewTicketHandler(store, client, controllers)

	router.Register(
		e,
		g,
		authHandler,
		pageHandler,
		volunteerHandler,
		masterHandler,
		ticketHandler,
	)

	logger.Info("starting dashboard",
		zap.String("port", cfg.ServerPort),
		zap.String("upstream", cfg.UpstreamURL))

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server start", zap.Error(err))
	}
}
