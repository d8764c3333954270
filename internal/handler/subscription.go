package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"biomarket-api/internal/dto"
	"biomarket-api/internal/middleware"
	"biomarket-api/internal/service"
)

type SubscriptionHandler struct {
	subService service.SubscriptionService
}

func NewSubscriptionHandler(subService service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subService: subService}
}

// Get returns the user's most recent subscription, or a JSON null when the
// user never subscribed.
func (h *SubscriptionHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	sub, err := h.subService.Latest(ctx, userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, sub)
}

func (h *SubscriptionHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	sub, err := h.subService.Create(ctx, userID, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":      "Subscription created successfully",
		"subscription": sub,
	})
}

func (h *SubscriptionHandler) Plans(c echo.Context) error {
	plans := make([]service.Plan, 0, len(service.Plans))
	for _, id := range []string{"1month", "3months", "1year"} {
		plans = append(plans, service.Plans[id])
	}
	return c.JSON(http.StatusOK, plans)
}
