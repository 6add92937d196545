package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bragboard/internal/middleware"
	"bragboard/internal/service"
)

// ShoutoutHandler handles recognition post endpoints.
type ShoutoutHandler struct {
	shoutoutService service.ShoutoutService
}

// NewShoutoutHandler creates a new shoutout handler.
func NewShoutoutHandler(shoutoutService service.ShoutoutService) *ShoutoutHandler {
	return &ShoutoutHandler{shoutoutService: shoutoutService}
}

// CreateShoutoutRequest represents a shoutout creation request. The author
// is always taken from the bearer token, never from the body.
type CreateShoutoutRequest struct {
	Title        string   `json:"title" validate:"required"`
	Content      string   `json:"content" validate:"required"`
	RecipientIDs []string `json:"recipient_ids"`
}

// UpdateShoutoutRequest represents a partial shoutout update. Absent fields
// are left unchanged; a present recipient_ids replaces the whole set.
type UpdateShoutoutRequest struct {
	Title        *string   `json:"title"`
	Content      *string   `json:"content"`
	RecipientIDs *[]string `json:"recipient_ids"`
}

// IDResponse carries the id of the created or updated shoutout.
type IDResponse struct {
	ID string `json:"id"`
}

// List godoc
// @Summary List all shoutouts with recipients, newest first
// @Tags shoutouts
// @Produce json
// @Success 200 {array} service.ShoutoutView
// @Router /shoutouts [get]
func (h *ShoutoutHandler) List(c echo.Context) error {
	views, err := h.shoutoutService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Create godoc
// @Summary Post a shoutout and notify its recipients
// @Tags shoutouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateShoutoutRequest true "Shoutout data"
// @Success 201 {object} IDResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /shoutouts [post]
func (h *ShoutoutHandler) Create(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req CreateShoutoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.shoutoutService.Create(c.Request().Context(), user, req.Title, req.Content, req.RecipientIDs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, IDResponse{ID: id.String()})
}

// Update godoc
// @Summary Update a shoutout (author or admin only)
// @Tags shoutouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shoutout ID"
// @Param request body UpdateShoutoutRequest true "Fields to change"
// @Success 200 {object} IDResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shoutouts/{id} [put]
func (h *ShoutoutHandler) Update(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req UpdateShoutoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	input := service.UpdateShoutoutInput{
		Title:        req.Title,
		Content:      req.Content,
		RecipientIDs: req.RecipientIDs,
	}
	id, err := h.shoutoutService.Update(c.Request().Context(), user, c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, IDResponse{ID: id.String()})
}

// Delete godoc
// @Summary Delete a shoutout (author or admin only)
// @Tags shoutouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shoutout ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shoutouts/{id} [delete]
func (h *ShoutoutHandler) Delete(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	if err := h.shoutoutService.Delete(c.Request().Context(), user, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
