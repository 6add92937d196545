package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"bragboard/internal/config"
	"bragboard/internal/handler"
	"bragboard/internal/middleware"
	"bragboard/internal/validation"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	employeeHandler *handler.EmployeeHandler,
	notificationHandler *handler.NotificationHandler,
	shoutoutHandler *handler.ShoutoutHandler,
	leaderboardHandler *handler.LeaderboardHandler,
	resolver middleware.TokenResolver,
) {
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// Fixed allow-list of local development origins for the web client.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	e.Validator = validation.NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/employees", employeeHandler.ListActive)
	e.PUT("/employees/:id/toggle", employeeHandler.Toggle)
	e.GET("/leaderboard", leaderboardHandler.Top)
	e.GET("/shoutouts", shoutoutHandler.List)

	// Routes requiring a bearer token
	secured := e.Group("", middleware.Auth(resolver))
	secured.GET("/notifications", notificationHandler.List)
	secured.PUT("/notifications/:id/read", notificationHandler.MarkRead)
	secured.POST("/shoutouts", shoutoutHandler.Create)
	secured.PUT("/shoutouts/:id", shoutoutHandler.Update)
	secured.DELETE("/shoutouts/:id", shoutoutHandler.Delete)
}
