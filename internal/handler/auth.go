package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"biomarket-api/internal/dto"
	"biomarket-api/internal/middleware"
	"biomarket-api/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, token, err := h.authService.Register(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "Registration successful",
		User:    user,
		Token:   token,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, token, err := h.authService.Login(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		User:    user,
		Token:   token,
	})
}

// Logout only acknowledges; tokens are stateless and expire on their own.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Logout successful"})
}

func (h *AuthHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.CurrentUser(ctx, userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, user)
}
