package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler serves the operational endpoints that need no usecase behind
// them.
type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

// Health reports liveness together with the current server time in UTC.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}
