package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"bragboard/internal/model"
)

// CurrentUserKey is the echo context key the authenticated user is stored
// under.
const CurrentUserKey = "current_user"

// TokenResolver maps an opaque bearer token to its user.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (*model.User, error)
}

// Auth resolves the Authorization bearer token and injects the user into
// the request context. Missing or malformed headers and unknown tokens all
// yield 401.
func Auth(resolver TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := resolver.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CurrentUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser extracts the authenticated user placed by Auth. Handlers
// behind the middleware can rely on it being present.
func CurrentUser(c echo.Context) (*model.User, error) {
	user, ok := c.Get(CurrentUserKey).(*model.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return user, nil
}
