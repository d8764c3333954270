package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"biomarket-api/internal/client"
	"biomarket-api/internal/service"
	"biomarket-api/internal/validate"
)

// httpError converts service-layer failures to echo HTTP errors. Anything
// unmapped falls through to the server's error handler as a 500.
func httpError(err error) error {
	var fieldErrs *validate.Errors
	if errors.As(err, &fieldErrs) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]interface{}{
			"error":   "Validation error",
			"details": fieldErrs.Fields(),
		})
	}

	switch {
	case errors.Is(err, service.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, "User already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrUnknownPlan):
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown subscription plan")
	case errors.Is(err, service.ErrUnknownProduct):
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown product")
	case errors.Is(err, client.ErrCardDeclined):
		return echo.NewHTTPError(http.StatusPaymentRequired, "Card declined")
	}

	return err
}
