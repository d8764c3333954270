package dto

import "biomarket-api/internal/model"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
	Token   string      `json:"token"`
}

type UpdateProfileRequest struct {
	Fullname *string `json:"fullname"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

type DataExport struct {
	User          *model.User          `json:"user"`
	Orders        []model.Order        `json:"orders"`
	Subscriptions []model.Subscription `json:"subscriptions"`
	Payments      []model.Payment      `json:"payments"`
	ExportedAt    string               `json:"exportedAt"`
}

type AddCartItemRequest struct {
	ProductID int `json:"productId"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	Items []model.CartItem `json:"items"`
	Count int              `json:"count"`
	Total string           `json:"total"`
}

type OrderItemRequest struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Total     float64 `json:"total"`
}

type CreateOrderRequest struct {
	Items        []OrderItemRequest `json:"items"`
	DeliveryDate string             `json:"deliveryDate"`
	Address      string             `json:"address"`
}

type CreateSubscriptionRequest struct {
	Plan          string `json:"plan"`
	PaymentMethod string `json:"paymentMethod"`
}

type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
	Holder string `json:"holder"`
}

type ProcessPaymentRequest struct {
	Amount        float64      `json:"amount"`
	PlanID        string       `json:"planId"`
	PaymentMethod string       `json:"paymentMethod"`
	Card          *CardDetails `json:"card"`
}

type PaymentResponse struct {
	Message string         `json:"message"`
	Payment *model.Payment `json:"payment"`
	IsMock  bool           `json:"isMock"`
}

type CheckoutRequest struct {
	Plan          string       `json:"plan"`
	PaymentMethod string       `json:"paymentMethod"`
	Card          *CardDetails `json:"card"`
	BankReference string       `json:"bankReference"`
}

type CheckoutResponse struct {
	Message      string              `json:"message"`
	Payment      *model.Payment      `json:"payment"`
	Subscription *model.Subscription `json:"subscription"`
}

type PaymentMethod struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

type WebhookRequest struct {
	EventID   string `json:"eventId"`
	EventType string `json:"eventType"`
}
