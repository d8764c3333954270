package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"biomarket-api/internal/auth"
	"biomarket-api/internal/config"
	"biomarket-api/internal/handler"
	"biomarket-api/internal/middleware"
)

type Server struct {
	echo *echo.Echo
	cfg  *config.Config

	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	catalogHandler      *handler.CatalogHandler
	cartHandler         *handler.CartHandler
	orderHandler        *handler.OrderHandler
	subscriptionHandler *handler.SubscriptionHandler
	paymentHandler      *handler.PaymentHandler
	checkoutHandler     *handler.CheckoutHandler
	jwt                 *auth.JWTManager
}

func NewServer(
	cfg *config.Config,
	jwt *auth.JWTManager,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	paymentHandler *handler.PaymentHandler,
	checkoutHandler *handler.CheckoutHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	e.HTTPErrorHandler = errorHandler(cfg.IsDevelopment())

	s := &Server{
		echo:                e,
		cfg:                 cfg,
		authHandler:         authHandler,
		userHandler:         userHandler,
		catalogHandler:      catalogHandler,
		cartHandler:         cartHandler,
		orderHandler:        orderHandler,
		subscriptionHandler: subscriptionHandler,
		paymentHandler:      paymentHandler,
		checkoutHandler:     checkoutHandler,
		jwt:                 jwt,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.health)

	api := s.echo.Group("/api")
	authGuard := middleware.JWTAuth(s.jwt)

	// -------- auth --------
	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.authHandler.Register)
	authGroup.POST("/login", s.authHandler.Login)
	authGroup.POST("/logout", s.authHandler.Logout)
	authGroup.GET("/me", s.authHandler.Me, authGuard)

	// -------- users --------
	users := api.Group("/users", authGuard)
	users.GET("/profile", s.userHandler.GetProfile)
	users.PUT("/profile", s.userHandler.UpdateProfile)
	users.DELETE("/profile", s.userHandler.DeleteProfile)
	users.GET("/data", s.userHandler.ExportData)

	// -------- catalog (public) --------
	api.GET("/products", s.catalogHandler.ListProducts)
	api.GET("/products/:id", s.catalogHandler.GetProduct)
	api.GET("/farms", s.catalogHandler.ListFarms)
	api.GET("/farms/:id", s.catalogHandler.GetFarm)

	// -------- cart --------
	cart := api.Group("/cart", authGuard)
	cart.GET("", s.cartHandler.Get)
	cart.POST("/items", s.cartHandler.AddItem)
	cart.PUT("/items/:productId", s.cartHandler.UpdateItem)
	cart.DELETE("/items/:productId", s.cartHandler.RemoveItem)
	cart.DELETE("", s.cartHandler.Clear)

	// -------- orders --------
	orders := api.Group("/orders", authGuard)
	orders.GET("", s.orderHandler.List)
	orders.GET("/:id", s.orderHandler.Get)
	orders.POST("", s.orderHandler.Create)

	// -------- subscriptions --------
	subs := api.Group("/subscriptions", authGuard)
	subs.GET("", s.subscriptionHandler.Get)
	subs.POST("", s.subscriptionHandler.Create)
	api.GET("/subscriptions/plans", s.subscriptionHandler.Plans)

	// -------- payments --------
	payments := api.Group("/payments")
	payments.GET("/methods", s.paymentHandler.Methods)
	payments.POST("/webhook", s.paymentHandler.Webhook)
	payments.GET("", s.paymentHandler.History, authGuard)
	payments.POST("/process", s.paymentHandler.Process, authGuard)

	// -------- checkout --------
	// Subscription purchase is a buyer flow; farmers have no cart.
	api.POST("/checkout", s.checkoutHandler.Checkout, authGuard, middleware.RequireRole("buyer"))
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": s.cfg.Environment.Name,
		"timezone":    s.cfg.Timezone,
	})
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

// Echo returns the underlying echo instance, used by handler tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
