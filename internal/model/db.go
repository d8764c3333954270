package model

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:128;not null" json:"-"`
	Fullname  string    `gorm:"size:100;not null" json:"fullname"`
	Role      string    `gorm:"size:16;not null;default:buyer" json:"role"` // buyer | farmer
	Phone     string    `gorm:"size:32" json:"phone"`
	Address   string    `gorm:"size:200" json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Orders        []Order        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Subscriptions []Subscription `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Payments      []Payment      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Cart          *Cart          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	UserID       uint        `gorm:"index;not null" json:"userId"`
	Total        float64     `gorm:"not null" json:"total"`
	DeliveryDate string      `gorm:"size:32" json:"deliveryDate"`
	Address      string      `gorm:"size:200" json:"address"`
	Status       string      `gorm:"size:16;index;not null;default:pending" json:"status"` // pending | processing | delivered | cancelled
	Items        []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// OrderItem is a denormalized snapshot of a catalog product at order time.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index;not null" json:"orderId"`
	ProductID int     `gorm:"not null" json:"productId"`
	Name      string  `gorm:"size:100;not null" json:"name"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
	Total     float64 `gorm:"not null" json:"total"`
}

type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"uniqueIndex;not null" json:"userId"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type CartItem struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	CartID            uint    `gorm:"not null;uniqueIndex:idx_cart_item_product" json:"-"`
	ProductID         int     `gorm:"not null;uniqueIndex:idx_cart_item_product" json:"productId"`
	Name              string  `gorm:"size:100;not null" json:"name"`
	Price             float64 `gorm:"not null" json:"price"`
	PriceSubscription float64 `gorm:"not null" json:"priceSubscription"`
	Quantity          int     `gorm:"not null" json:"quantity"`
}

type Subscription struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Plan      string    `gorm:"size:16;not null" json:"plan"`                  // 1month | 3months | 1year
	Status    string    `gorm:"size:16;not null;default:active" json:"status"` // active | expired | cancelled
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"userId"`
	TransactionID string    `gorm:"size:64;uniqueIndex;not null" json:"transactionId"`
	Amount        float64   `gorm:"not null" json:"amount"`
	Currency      string    `gorm:"size:8;not null;default:CZK" json:"currency"`
	Status        string    `gorm:"size:16;not null" json:"status"` // success | pending | failed
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// WebhookEvent records processed gateway webhook deliveries so redeliveries
// are acknowledged without side effects.
type WebhookEvent struct {
	EventID     string    `gorm:"primaryKey;size:128;not null" json:"eventId"`
	EventType   string    `gorm:"size:64;index" json:"eventType"`
	ProcessedAt time.Time `json:"processedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}
