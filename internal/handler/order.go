package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"biomarket-api/internal/dto"
	"biomarket-api/internal/middleware"
	"biomarket-api/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	orders, err := h.orderService.List(ctx, userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	order, err := h.orderService.Get(ctx, uint(orderID), userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	order, err := h.orderService.Create(ctx, userID, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Order created successfully",
		"order":   order,
	})
}
