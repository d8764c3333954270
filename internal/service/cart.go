package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"biomarket-api/internal/catalog"
	"biomarket-api/internal/dto"
	"biomarket-api/internal/model"
	"biomarket-api/internal/repository"
)

type CartService interface {
	Get(ctx context.Context, userID uint) (*dto.CartResponse, error)
	// AddItem appends the product with quantity 1, or increments the
	// existing line. Unknown product ids are rejected.
	AddItem(ctx context.Context, userID uint, productID int) (*dto.CartResponse, error)
	// UpdateQuantity sets the line quantity; zero or negative removes the
	// line entirely.
	UpdateQuantity(ctx context.Context, userID uint, productID, quantity int) (*dto.CartResponse, error)
	RemoveItem(ctx context.Context, userID uint, productID int) (*dto.CartResponse, error)
	Clear(ctx context.Context, userID uint) error
}

type cartServiceImpl struct {
	cartRepo repository.CartRepository
	catalog  *catalog.Catalog
}

func NewCartService(cartRepo repository.CartRepository, cat *catalog.Catalog) CartService {
	return &cartServiceImpl{
		cartRepo: cartRepo,
		catalog:  cat,
	}
}

func (s *cartServiceImpl) Get(ctx context.Context, userID uint) (*dto.CartResponse, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	return cartResponse(cart), nil
}

func (s *cartServiceImpl) AddItem(ctx context.Context, userID uint, productID int) (*dto.CartResponse, error) {
	product, found := s.catalog.ProductByID(productID)
	if !found {
		return nil, ErrUnknownProduct
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	existing, err := s.cartRepo.FindItem(ctx, cart.ID, productID)
	switch {
	case err == nil:
		if err := s.cartRepo.UpdateItemQuantity(ctx, existing.ID, existing.Quantity+1); err != nil {
			return nil, fmt.Errorf("increment cart item: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item := &model.CartItem{
			CartID:            cart.ID,
			ProductID:         product.ID,
			Name:              product.Name,
			Price:             product.Price,
			PriceSubscription: product.PriceSubscription,
			Quantity:          1,
		}
		if err := s.cartRepo.CreateItem(ctx, item); err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, fmt.Errorf("create cart item: %w", err)
			}
			// A concurrent add won the insert; the unique index on
			// (cart, product) caught it, fold this add into that line.
			existing, findErr := s.cartRepo.FindItem(ctx, cart.ID, productID)
			if findErr != nil {
				return nil, fmt.Errorf("find cart item: %w", findErr)
			}
			if err := s.cartRepo.UpdateItemQuantity(ctx, existing.ID, existing.Quantity+1); err != nil {
				return nil, fmt.Errorf("increment cart item: %w", err)
			}
		}
	default:
		return nil, fmt.Errorf("find cart item: %w", err)
	}

	return s.Get(ctx, userID)
}

func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, userID uint, productID, quantity int) (*dto.CartResponse, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, productID)
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	item, err := s.cartRepo.FindItem(ctx, cart.ID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find cart item: %w", err)
	}

	if err := s.cartRepo.UpdateItemQuantity(ctx, item.ID, quantity); err != nil {
		return nil, fmt.Errorf("update cart item: %w", err)
	}

	return s.Get(ctx, userID)
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID uint, productID int) (*dto.CartResponse, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	removed, err := s.cartRepo.DeleteItem(ctx, cart.ID, productID)
	if err != nil {
		return nil, fmt.Errorf("delete cart item: %w", err)
	}
	if !removed {
		return nil, ErrNotFound
	}

	return s.Get(ctx, userID)
}

func (s *cartServiceImpl) Clear(ctx context.Context, userID uint) error {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	if err := s.cartRepo.ClearItems(ctx, cart.ID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	return nil
}

// cartResponse computes the line count and the subscription-price total.
func cartResponse(cart *model.Cart) *dto.CartResponse {
	count := 0
	total := decimal.Zero
	for _, item := range cart.Items {
		count += item.Quantity
		line := decimal.NewFromFloat(item.PriceSubscription).
			Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}

	items := cart.Items
	if items == nil {
		items = []model.CartItem{}
	}

	return &dto.CartResponse{
		Items: items,
		Count: count,
		Total: total.StringFixed(2),
	}
}
