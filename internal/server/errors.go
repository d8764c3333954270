package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// errorHandler maps unhandled errors to the response taxonomy: echo HTTP
// errors pass through, gorm errors become a generic database error, and
// everything else is a 500. Error detail is only exposed in development.
func errorHandler(development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			body := httpErr.Message
			if msg, okStr := body.(string); okStr {
				body = map[string]string{"error": msg}
			}
			if jsonErr := c.JSON(httpErr.Code, body); jsonErr != nil {
				c.Logger().Error(jsonErr)
			}
			return
		}

		c.Logger().Error(err)

		if isDatabaseError(err) {
			body := map[string]string{"error": "Database error"}
			if development {
				body["message"] = err.Error()
			}
			if jsonErr := c.JSON(http.StatusInternalServerError, body); jsonErr != nil {
				c.Logger().Error(jsonErr)
			}
			return
		}

		body := map[string]string{"error": "Internal server error"}
		if development {
			body["message"] = err.Error()
		}
		if jsonErr := c.JSON(http.StatusInternalServerError, body); jsonErr != nil {
			c.Logger().Error(jsonErr)
		}
	}
}

func isDatabaseError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, gorm.ErrInvalidTransaction) ||
		errors.Is(err, gorm.ErrInvalidData) ||
		errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrInvalidDB)
}
