// Package main wires the HTTP server for the lead management service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	handlers_fiber "leadflow-crm/internal/transport/http/server/handlers-fiber"
	"leadflow-crm/internal/usecase"

	"leadflow-crm/config"
	"leadflow-crm/internal/auth"
	"leadflow-crm/internal/cache"
	"leadflow-crm/internal/repository"
	"leadflow-crm/internal/transport/http/middleware"
	"leadflow-crm/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	analyticsCache := cache.NewAnalytics(log, cfg.Redis)
	defer func() { _ = analyticsCache.Close() }()

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, tokens, analyticsCache, timeout, cfg.Auth.BcryptCost)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))
	serv.Use(helmet.New())
	serv.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.CORSOrigin,
		AllowCredentials: true,
	}))

	h := handlers_fiber.NewHandler(log, uc)
	handlers_fiber.RegisterRoutes(serv, h, tokens, cfg.RateLimit)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
