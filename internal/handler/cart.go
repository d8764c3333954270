package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"biomarket-api/internal/dto"
	"biomarket-api/internal/middleware"
	"biomarket-api/internal/service"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	cart, err := h.cartService.Get(ctx, userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cart, err := h.cartService.AddItem(ctx, userID, req.ProductID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req dto.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cart, err := h.cartService.UpdateQuantity(ctx, userID, productID, req.Quantity)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	cart, err := h.cartService.RemoveItem(ctx, userID, productID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) Clear(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	if err := h.cartService.Clear(ctx, userID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Cart cleared"})
}
