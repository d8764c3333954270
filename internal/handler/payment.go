package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"biomarket-api/internal/dto"
	"biomarket-api/internal/middleware"
	"biomarket-api/internal/service"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) History(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	payments, err := h.paymentService.History(ctx, userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) Process(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.ProcessPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	payment, err := h.paymentService.Process(ctx, userID, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.PaymentResponse{
		Message: "Payment processed successfully",
		Payment: payment,
		IsMock:  true,
	})
}

func (h *PaymentHandler) Methods(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": h.paymentService.Methods(),
	})
}

// Webhook acknowledges gateway deliveries. Always 200: the gateway retries
// on anything else and the dedup table already guards against replays.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	ctx := c.Request().Context()

	var event dto.WebhookRequest
	if err := c.Bind(&event); err != nil {
		return c.String(http.StatusOK, "Webhook received")
	}

	if err := h.paymentService.HandleWebhook(ctx, &event); err != nil {
		c.Logger().Error("handle webhook: ", err)
	}

	return c.String(http.StatusOK, "Webhook received")
}
