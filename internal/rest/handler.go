package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/blog-platform/internal/blog"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	manager *blog.Manager
	log     *slog.Logger
}

func NewHandler(manager *blog.Manager, log *slog.Logger) *Handler {
	return &Handler{
		manager: manager,
		log:     log,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.ErrorContext(c.Request().Context(), "handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// handleBlogError maps the error kinds of the blog package to response codes.
// Unknown errors are hidden behind a generic message.
func (h *Handler) handleBlogError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, blog.ErrValidation), errors.Is(err, blog.ErrPreconditionFailed):
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	case errors.Is(err, blog.ErrNotFound):
		return h.handleError(c, err, http.StatusNotFound, err.Error())
	case errors.Is(err, blog.ErrConflict):
		return h.handleError(c, err, http.StatusConflict, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return h.handleError(c, err, http.StatusServiceUnavailable, "request timed out")
	}

	return h.handleError(c, err, http.StatusInternalServerError, "internal error")
}

func postID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

func categoryID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err == nil && id <= 0 {
		err = errors.New("id must be positive")
	}

	return id, err
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
