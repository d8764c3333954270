package repository

import (
	"context"

	"gorm.io/gorm"

	"biomarket-api/internal/model"
)

type CartRepository interface {
	// GetOrCreate returns the user's cart with items, creating an empty
	// cart row on first access.
	GetOrCreate(ctx context.Context, userID uint) (*model.Cart, error)
	FindItem(ctx context.Context, cartID uint, productID int) (*model.CartItem, error)
	CreateItem(ctx context.Context, item *model.CartItem) error
	UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error
	DeleteItem(ctx context.Context, cartID uint, productID int) (bool, error)
	ClearItems(ctx context.Context, cartID uint) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{db: db}
}

func (r *cartRepoImpl) GetOrCreate(ctx context.Context, userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).
		Where(model.Cart{UserID: userID}).
		Preload("Items").
		FirstOrCreate(&cart).Error

	if err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *cartRepoImpl) FindItem(ctx context.Context, cartID uint, productID int) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error

	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *cartRepoImpl) CreateItem(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepoImpl) UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error {
	return r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

func (r *cartRepoImpl) DeleteItem(ctx context.Context, cartID uint, productID int) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&model.CartItem{})

	return result.RowsAffected > 0, result.Error
}

func (r *cartRepoImpl) ClearItems(ctx context.Context, cartID uint) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItem{}).Error
}
