package repository

import (
	"context"

	"gorm.io/gorm"

	"biomarket-api/internal/model"
)

type PaymentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, payment *model.Payment) error
	FindByUser(ctx context.Context, userID uint) ([]model.Payment, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*model.Payment, error)
}

type paymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{db: db}
}

func (r *paymentRepoImpl) Create(ctx context.Context, tx *gorm.DB, payment *model.Payment) error {
	return tx.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepoImpl) FindByUser(ctx context.Context, userID uint) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error

	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *paymentRepoImpl) FindByTransactionID(ctx context.Context, transactionID string) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&payment).Error

	if err != nil {
		return nil, err
	}

	return &payment, nil
}
