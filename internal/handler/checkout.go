package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"biomarket-api/internal/dto"
	"biomarket-api/internal/middleware"
	"biomarket-api/internal/service"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.checkoutService.Checkout(ctx, userID, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}
