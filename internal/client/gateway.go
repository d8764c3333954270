package client

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// ErrCardDeclined is returned when the processor refuses the charge.
var ErrCardDeclined = errors.New("card declined")

type ChargeRequest struct {
	Amount        float64
	Currency      string
	PaymentMethod string // card | bank | googlepay | applepay
	CardNumber    string
	PaymentToken  string
}

type ChargeResult struct {
	TransactionID string
	Status        string // success | failed
}

// PaymentGateway abstracts the payment processor so checkout orchestration
// never touches provider SDKs directly. Swapping the mock for a real
// provider is a wiring change in main.
type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// Test card numbers recognized by the mock gateway.
const (
	mockCardSuccess  = "4111111111111111"
	mockCardDeclined = "4000000000000002"
)

var nonDigits = regexp.MustCompile(`\D`)

type mockGateway struct {
	delay time.Duration
}

// NewMockGateway returns a gateway that settles every charge after a fixed
// artificial delay. Only the hardcoded declined test card fails.
func NewMockGateway(delay time.Duration) PaymentGateway {
	return &mockGateway{delay: delay}
}

func (g *mockGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	select {
	case <-time.After(g.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if req.PaymentMethod == "card" {
		number := nonDigits.ReplaceAllString(req.CardNumber, "")
		if number == mockCardDeclined {
			return nil, fmt.Errorf("charge %s %.2f: %w", req.Currency, req.Amount, ErrCardDeclined)
		}
	}

	return &ChargeResult{
		TransactionID: "mock_txn_" + uuid.NewString(),
		Status:        "success",
	}, nil
}
