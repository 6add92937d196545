// Command lite runs the ephemeral variant of the BragBoard API: the same
// signup/login contract plus a notification inbox, backed entirely by an
// in-process store. Data vanishes on restart. It has no shoutout or
// leaderboard concept and does not share anything with cmd/server.
package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sethvargo/go-envconfig"

	"bragboard/internal/ephemeral"
	"bragboard/internal/validation"
	"bragboard/pkg/logger"
)

type liteConfig struct {
	Port     string `env:"LITE_PORT, default=3001"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:3000,http://127.0.0.1:3000,http://localhost:3002,http://127.0.0.1:3002,http://localhost:3004,http://127.0.0.1:3004"`
}

func main() {
	ctx := context.Background()

	var cfg liteConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))
	e.Validator = validation.NewValidator()

	store := ephemeral.NewStore()
	ephemeral.NewHandler(store).Register(e)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("starting ephemeral server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
