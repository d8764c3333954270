package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"biomarket-api/internal/client"
	"biomarket-api/internal/dto"
	"biomarket-api/internal/model"
	"biomarket-api/internal/repository"
	"biomarket-api/internal/validate"
)

type PaymentService interface {
	History(ctx context.Context, userID uint) ([]model.Payment, error)
	// Process charges the configured gateway and records the payment.
	Process(ctx context.Context, userID uint, req *dto.ProcessPaymentRequest) (*model.Payment, error)
	Methods() []dto.PaymentMethod
	// HandleWebhook acknowledges gateway deliveries, deduplicating by
	// event id. Redeliveries are recorded at most once.
	HandleWebhook(ctx context.Context, event *dto.WebhookRequest) error
}

type paymentServiceImpl struct {
	db          *gorm.DB
	gateway     client.PaymentGateway
	paymentRepo repository.PaymentRepository
	webhookRepo repository.WebhookEventRepository
}

func NewPaymentService(
	db *gorm.DB,
	gateway client.PaymentGateway,
	paymentRepo repository.PaymentRepository,
	webhookRepo repository.WebhookEventRepository,
) PaymentService {
	return &paymentServiceImpl{
		db:          db,
		gateway:     gateway,
		paymentRepo: paymentRepo,
		webhookRepo: webhookRepo,
	}
}

const paymentCurrency = "CZK"

func (s *paymentServiceImpl) History(ctx context.Context, userID uint) ([]model.Payment, error) {
	payments, err := s.paymentRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	if payments == nil {
		payments = []model.Payment{}
	}
	return payments, nil
}

func (s *paymentServiceImpl) Process(ctx context.Context, userID uint, req *dto.ProcessPaymentRequest) (*model.Payment, error) {
	if err := validatePayment(req.PaymentMethod, req.Card); err != nil {
		return nil, err
	}

	charge := client.ChargeRequest{
		Amount:        req.Amount,
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
		Amount:        req.Amount,
		Currency:      paymentCurrency,
		Status:        result.Status,
	}

	if err := s.paymentRepo.Create(ctx, s.db, payment); err != nil {
		return nil, fmt.Errorf("store payment: %w", err)
	}

	return payment, nil
}

func (s *paymentServiceImpl) Methods() []dto.PaymentMethod {
	return []dto.PaymentMethod{
		{ID: "card", Type: "card", Name: "Platební karta", Available: true},
		{ID: "bank", Type: "bank", Name: "Bankovní převod", Available: true},
		{ID: "googlepay", Type: "googlepay", Name: "Google Pay", Available: true},
		{ID: "applepay", Type: "applepay", Name: "Apple Pay", Available: true},
	}
}

func (s *paymentServiceImpl) HandleWebhook(ctx context.Context, event *dto.WebhookRequest) error {
	if event.EventID == "" {
		return nil
	}

	processed, err := s.webhookRepo.Exists(ctx, event.EventID)
	if err != nil {
		return fmt.Errorf("check webhook event: %w", err)
	}
	if processed {
		return nil
	}

	if err := s.webhookRepo.MarkProcessed(ctx, event.EventID, event.EventType); err != nil {
		return fmt.Errorf("mark webhook event: %w", err)
	}

	return nil
}

// validatePayment performs field-level card validation. Only the card path
// has payload data to check; other methods are accepted as-is.
func validatePayment(method string, card *dto.CardDetails) error {
	var fieldErrs validate.Errors

	switch method {
	case "card":
		if card == nil {
			fieldErrs.Add("card", "card details are required")
			break
		}
		fieldErrs.Check("card.number", validate.CardNumber(card.Number))
		fieldErrs.Check("card.expiry", validate.CardExpiry(card.Expiry))
		fieldErrs.Check("card.cvv", validate.CVV(card.CVV))
	case "bank", "googlepay", "applepay":
	default:
		fieldErrs.Add("paymentMethod", "unsupported payment method")
	}

	if fieldErrs.HasErrors() {
		return &fieldErrs
	}
	return nil
}
