package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pasinduJDJ/lonex-investments/internal/domain/fault"
)

// writeError maps the domain error taxonomy onto HTTP statuses. Every
// failure carries a human-readable message.
func writeError(c echo.Context, err error) error {
	switch {
	case fault.IsValidation(err):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case fault.IsNotFound(err):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case fault.IsConflict(err):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	}
}

// parseDate accepts a bare calendar date (2006-01-02).
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
