package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"biomarket-api/internal/dto"
	"biomarket-api/internal/model"
	"biomarket-api/internal/repository"
	"biomarket-api/internal/validate"
)

type OrderService interface {
	List(ctx context.Context, userID uint) ([]model.Order, error)
	Get(ctx context.Context, orderID, userID uint) (*model.Order, error)
	Create(ctx context.Context, userID uint, req *dto.CreateOrderRequest) (*model.Order, error)
}

type orderServiceImpl struct {
	db        *gorm.DB
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
}

func NewOrderService(db *gorm.DB, orderRepo repository.OrderRepository, userRepo repository.UserRepository) OrderService {
	return &orderServiceImpl{
		db:        db,
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

func (s *orderServiceImpl) List(ctx context.Context, userID uint) ([]model.Order, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

func (s *orderServiceImpl) Get(ctx context.Context, orderID, userID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return order, nil
}

// Create writes the order and its item snapshots in one transaction. The
// total is the sum of the submitted line totals; line prices come from the
// client-held catalog snapshot, not a server-side price list.
func (s *orderServiceImpl) Create(ctx context.Context, userID uint, req *dto.CreateOrderRequest) (*model.Order, error) {
	if err := validateCreateOrder(req); err != nil {
		return nil, err
	}

	address := req.Address
	if address == "" {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find user: %w", err)
		}
		if user != nil {
			address = user.Address
		}
	}

	total := decimal.Zero
	items := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		total = total.Add(decimal.NewFromFloat(item.Total))
		items[i] = model.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Total:     item.Total,
		}
	}

	order := &model.Order{
		UserID:       userID,
		Total:        total.InexactFloat64(),
		DeliveryDate: req.DeliveryDate,
		Address:      address,
		Status:       "pending",
		Items:        items,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.Create(ctx, tx, order)
	})
	if err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}

	return order, nil
}

func validateCreateOrder(req *dto.CreateOrderRequest) error {
	var fieldErrs validate.Errors
	if len(req.Items) == 0 {
		fieldErrs.Add("items", "order must have at least one item")
	}
	for i, item := range req.Items {
		field := fmt.Sprintf("items[%d]", i)
		if item.Name == "" {
			fieldErrs.Add(field+".name", "name is required")
		}
		if item.Quantity < 1 {
			fieldErrs.Add(field+".quantity", "quantity must be at least 1")
		}
		if item.Price < 0 {
			fieldErrs.Add(field+".price", "price must not be negative")
		}
		if item.Total < 0 {
			fieldErrs.Add(field+".total", "total must not be negative")
		}
	}
	if req.DeliveryDate == "" {
		fieldErrs.Add("deliveryDate", "delivery date is required")
	}
	if fieldErrs.HasErrors() {
		return &fieldErrs
	}
	return nil
}
