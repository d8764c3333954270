package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"biomarket-api/internal/auth"
	"biomarket-api/internal/catalog"
	"biomarket-api/internal/client"
	"biomarket-api/internal/config"
	"biomarket-api/internal/handler"
	"biomarket-api/internal/repository"
	"biomarket-api/internal/server"
	"biomarket-api/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	// Refuse to start with a missing or weak JWT secret.
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}

	db, err := client.InitDBClient(cfg.Database)
	if err != nil {
		log.Fatal("init database: ", err)
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		log.Fatal("init jwt manager: ", err)
	}

	var gateway client.PaymentGateway
	switch cfg.Payment.Provider {
	case "braintree":
		gateway = client.NewBraintreeGateway(cfg.Braintree)
	default:
		gateway = client.NewMockGateway(cfg.Payment.MockDelay)
	}

	cat := catalog.New()

	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	webhookEventRepo := repository.NewWebhookEventRepository(db)

	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	cartService := service.NewCartService(cartRepo, cat)
	orderService := service.NewOrderService(db, orderRepo, userRepo)
	subService := service.NewSubscriptionService(db, subRepo)
	paymentService := service.NewPaymentService(db, gateway, paymentRepo, webhookEventRepo)
	checkoutService := service.NewCheckoutService(db, gateway, paymentRepo, subRepo, cartService)

	srv := server.NewServer(
		cfg,
		jwtManager,
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewCatalogHandler(cat),
		handler.NewCartHandler(cartService),
		handler.NewOrderHandler(orderService),
		handler.NewSubscriptionHandler(subService),
		handler.NewPaymentHandler(paymentService),
		handler.NewCheckoutHandler(checkoutService),
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error: ", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error: ", err)
	}
}
