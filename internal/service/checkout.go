package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"biomarket-api/internal/client"
	"biomarket-api/internal/dto"
	"biomarket-api/internal/model"
	"biomarket-api/internal/repository"
)

type CheckoutService interface {
	// Checkout runs the subscription purchase flow: validate the payment
	// payload, charge the gateway, record the payment, activate the
	// subscription and empty the cart.
	Checkout(ctx context.Context, userID uint, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	db          *gorm.DB
	gateway     client.PaymentGateway
	paymentRepo repository.PaymentRepository
	subRepo     repository.SubscriptionRepository
	cartService CartService
}

func NewCheckoutService(
	db *gorm.DB,
	gateway client.PaymentGateway,
	paymentRepo repository.PaymentRepository,
	subRepo repository.SubscriptionRepository,
	cartService CartService,
) CheckoutService {
	return &checkoutServiceImpl{
		db:          db,
		gateway:     gateway,
		paymentRepo: paymentRepo,
		subRepo:     subRepo,
		cartService: cartService,
	}
}

func (s *checkoutServiceImpl) Checkout(ctx context.Context, userID uint, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	plan, found := Plans[req.Plan]
	if !found {
		return nil, ErrUnknownPlan
	}

	if err := validatePayment(req.PaymentMethod, req.Card); err != nil {
		return nil, err
	}

	charge := client.ChargeRequest{
		Amount:        plan.Price,
		Currency:      paymentCurrency,
		PaymentMethod: req.PaymentMethod,
	}
	if req.Card != nil {
		charge.CardNumber = req.Card.Number
	}

	result, err := s.gateway.Charge(ctx, charge)
	if err != nil {
		return nil, fmt.Errorf("gateway charge: %w", err)
	}

	payment := &model.Payment{
		UserID:        userID,
		TransactionID: result.TransactionID,
		Amount:        plan.Price,
		Currency:      paymentCurrency,
		Status:        result.Status,
	}

	start := time.Now()
	sub := &model.Subscription{
		UserID:    userID,
		Plan:      plan.ID,
		Status:    "active",
		StartDate: start,
		EndDate:   start.AddDate(plan.AddYear, plan.AddMonth, 0),
	}

	// The gateway has already settled; keep the local records consistent
	// with each other by writing them in one transaction. If this fails
	// the charge has no compensating refund, only the surfaced error.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return fmt.Errorf("store payment: %w", err)
		}
		if err := s.subRepo.Create(ctx, tx, sub); err != nil {
			return fmt.Errorf("store subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("record checkout after charge %s: %w", result.TransactionID, err)
	}

	if err := s.cartService.Clear(ctx, userID); err != nil {
		// Not fatal: the purchase is complete, the stale cart only
		// affects the next page load.
		log.Println("clear cart after checkout:", err)
	}

	return &dto.CheckoutResponse{
		Message:      "Checkout completed successfully",
		Payment:      payment,
		Subscription: sub,
	}, nil
}
