package client

import (
	"context"
	"fmt"

	"github.com/braintree-go/braintree-go"
	"github.com/shopspring/decimal"

	"biomarket-api/internal/config"
)

type braintreeGateway struct {
	gateway *braintree.Braintree
}

// NewBraintreeGateway adapts the Braintree SDK to the PaymentGateway
// contract. Selected with PAYMENT_PROVIDER=braintree.
func NewBraintreeGateway(cfg config.Braintree) PaymentGateway {
	env := braintree.Sandbox
	if cfg.Environment == "production" {
		env = braintree.Production
	}

	gateway := braintree.New(
		env,
		cfg.MerchantID,
		cfg.PublicKey,
		cfg.PrivateKey,
	)

	return &braintreeGateway{gateway: gateway}
}

func (g *braintreeGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	// Braintree expects NewDecimal(unscaled, scale). For 2 decimal places:
	// 590.00 CZK -> 59000 -> braintree.NewDecimal(59000, 2)
	cents := decimal.NewFromFloat(req.Amount).Mul(decimal.NewFromInt(100)).IntPart()
	btAmount := braintree.NewDecimal(cents, 2)

	txReq := &braintree.TransactionRequest{
		Type:               "sale",
		Amount:             btAmount,
		PaymentMethodToken: req.PaymentToken,
		Options: &braintree.TransactionOptions{
			SubmitForSettlement: true,
		},
	}

	tx, err := g.gateway.Transaction().Create(ctx, txReq)
	if err != nil {
		return nil, fmt.Errorf("transaction creation failed: %w", err)
	}

	if tx.Status == braintree.TransactionStatusProcessorDeclined {
		return nil, fmt.Errorf("%w: %s", ErrCardDeclined, tx.ProcessorResponseText)
	}

	return &ChargeResult{
		TransactionID: tx.Id,
		Status:        "success",
	}, nil
}
