package repository

import (
	"context"

	"gorm.io/gorm"

	"biomarket-api/internal/model"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *model.Order) error
	// FindByUser returns the user's orders with items, newest first.
	FindByUser(ctx context.Context, userID uint) ([]model.Order, error)
	// FindByIDForUser scopes the lookup to the owner.
	FindByIDForUser(ctx context.Context, orderID, userID uint) (*model.Order, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{db: db}
}

func (r *orderRepoImpl) Create(ctx context.Context, tx *gorm.DB, order *model.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) FindByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) FindByIDForUser(ctx context.Context, orderID, userID uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}
