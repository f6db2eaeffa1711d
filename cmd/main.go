package main

import (
	"context"
	stdlog "log"

	"github.com/angusyg/mean-stack/config"
	"github.com/angusyg/mean-stack/db"
	"github.com/angusyg/mean-stack/internal/auth/handler"
	repo "github.com/angusyg/mean-stack/internal/auth/repository/postgres"
	"github.com/angusyg/mean-stack/internal/auth/service"
	"github.com/angusyg/mean-stack/internal/logging"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logging.New(cfg.Env)
	if err != nil {
		stdlog.Fatalf("failed to build logger: %v", err)
	}
	defer log.Sync() //nolint:errcheck

	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		log.Fatal("migrations failed", zap.Error(err))
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatal("db connection failed", zap.Error(err))
	}
	defer dbPool.Close()

	userRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.TokenSecret, cfg.AccessTokenExpiry)
	userService := service.NewUserService(userRepo, tokenService, cfg)
	authHandler := handler.NewAuthHandler(userService, tokenService, cfg, log)

	app := fiber.New(fiber.Config{
		ErrorHandler: handler.ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logging.RequestLogger(log))
	app.Use(helmet.New())
	app.Use(cors.New(corsConfig(cfg)))
	app.Use(compress.New())

	handler.RegisterRoutes(app, authHandler, cfg)

	log.Info("server listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// corsConfig builds the cross-origin policy. An empty whitelist allows any
// origin (without credentials); a configured whitelist also enables
// credentialed requests, matching the SPA's expectations.
func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods: "GET,POST,OPTIONS,PUT,PATCH,DELETE",
		AllowHeaders: "Authorization, Refresh, Content-Type",
		MaxAge:       600,
	}

	if cfg.CORSOrigins != "" {
		corsCfg.AllowOrigins = cfg.CORSOrigins
		corsCfg.AllowCredentials = true
	}

	return corsCfg
}
