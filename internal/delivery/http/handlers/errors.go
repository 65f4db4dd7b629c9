package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kbf-dev/galerie-commerce-service/internal/delivery/http/dto/response"
	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/kbf-dev/galerie-commerce-service/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// writeError maps core error kinds to HTTP statuses. Internal details
// never leak to the client.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInactiveMerchant),
		errors.Is(err, domain.ErrInactiveProduct),
		errors.Is(err, domain.ErrInsufficientStock):
		return c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	default:
		logger.GetLogger().Error("request failed",
			zap.String("path", c.Path()),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: message})
}

// parsePage reads page-number pagination params, falling back to page 1
// and the configured default size.
func parsePage(c echo.Context, defaultSize int) (page, size int) {
	page = 1
	size = defaultSize
	if v := c.QueryParam("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.QueryParam("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			size = n
		}
	}
	return page, size
}
