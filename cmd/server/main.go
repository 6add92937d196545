package main

import (
	"context"
	"net/http"

	_ "bragboard/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"bragboard/internal/cache"
	"bragboard/internal/config"
	"bragboard/internal/db"
	"bragboard/internal/handler"
	"bragboard/internal/httperr"
	"bragboard/internal/repository"
	"bragboard/internal/router"
	"bragboard/internal/service"
	"bragboard/pkg/logger"
)

// @title BragBoard API
// @version 1.0
// @description Internal recognition board: shoutouts, notifications, and a leaderboard of shoutouts received.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token from /auth/login.
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if cfg.ResetDB {
		log.Warn().Msg("RESET_DB=true, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			log.Fatal().Err(err).Msg("reset schema")
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	created, err := db.SeedAdmin(ctx, gormDB, cfg.Admin.Email, cfg.Admin.Name, cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("seed admin")
	}
	if created {
		log.Info().Str("email", cfg.Admin.Email).Msg("admin account seeded")
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	tokenRepo := repository.NewTokenRepository(gormDB)
	employeeRepo := repository.NewEmployeeRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)
	shoutoutRepo := repository.NewShoutoutRepository(gormDB)

	// Services
	authService := service.NewAuthService(userRepo, tokenRepo, employeeRepo, cacheClient)
	employeeService := service.NewEmployeeService(employeeRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	shoutoutService := service.NewShoutoutService(shoutoutRepo, userRepo, notificationRepo)
	leaderboardService := service.NewLeaderboardService(shoutoutRepo, cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	shoutoutHandler := handler.NewShoutoutHandler(shoutoutService)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httperr.NewHTTPErrorHandler(log)

	router.Register(
		e,
		cfg,
		authHandler,
		employeeHandler,
		notificationHandler,
		shoutoutHandler,
		leaderboardHandler,
		authService,
	)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
