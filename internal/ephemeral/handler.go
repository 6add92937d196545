package ephemeral

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Handler exposes the ephemeral auth and notification endpoints over an
// injected Store.
type Handler struct {
	store *Store
}

// NewHandler creates a handler around the given store.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Register wires the handler's routes onto the echo instance.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.Root)
	e.POST("/auth/signup", h.Signup)
	e.POST("/auth/login", h.Login)
	e.GET("/notifications", h.ListNotifications)
	e.POST("/notifications", h.CreateNotification)
	// mark-all-read is registered before :id/read so the literal path wins
	e.PUT("/notifications/mark-all-read", h.MarkAllRead)
	e.PUT("/notifications/:id/read", h.MarkRead)
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// NotificationRequest represents a notification creation request.
type NotificationRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// Root reports the service banner.
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "BragBoard ephemeral API running"})
}

// Signup registers a user. No employee record exists in this variant.
func (h *Handler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.store.CreateUser(req.Email, req.FullName, req.Password, req.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "email exists")
	}
	return c.JSON(http.StatusCreated, user)
}

// Login exchanges credentials for an opaque token.
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, ok := h.store.FindUserByEmail(req.Email)
	if !ok || user.Password != req.Password {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	token := h.store.IssueToken(user.ID)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// ListNotifications returns the caller's inbox; admins see every user's
// notifications.
func (h *Handler) ListNotifications(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}

	if user.Role == "ADMIN" {
		return c.JSON(http.StatusOK, h.store.Notifications())
	}
	return c.JSON(http.StatusOK, h.store.NotificationsFor(user.ID))
}

// CreateNotification appends a notification. Only admins may target other
// users.
func (h *Handler) CreateNotification(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}

	var req NotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if user.Role != "ADMIN" && req.UserID != user.ID {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	n := h.store.AddNotification(req.UserID, req.Title, req.Content)
	return c.JSON(http.StatusCreated, n)
}

// MarkRead marks one notification read. Owners and admins only.
func (h *Handler) MarkRead(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	existing, ok := h.store.Notification(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "notification not found")
	}
	if existing.UserID != user.ID && user.Role != "ADMIN" {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	updated, _ := h.store.MarkRead(id)
	return c.JSON(http.StatusOK, updated)
}

// MarkAllRead marks every notification of the caller as read.
func (h *Handler) MarkAllRead(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}

	count := h.store.MarkAllRead(user.ID)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"marked": true,
		"count":  count,
	})
}

// currentUser resolves the bearer token against the store.
func (h *Handler) currentUser(c echo.Context) (User, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return User{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return User{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	user, ok := h.store.UserByToken(parts[1])
	if !ok {
		return User{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return user, nil
}
