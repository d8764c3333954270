package repository

import (
	"context"

	"gorm.io/gorm"

	"biomarket-api/internal/model"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, sub *model.Subscription) error
	// FindLatestByUser returns the user's most recent subscription or
	// gorm.ErrRecordNotFound.
	FindLatestByUser(ctx context.Context, userID uint) (*model.Subscription, error)
	FindByUser(ctx context.Context, userID uint) ([]model.Subscription, error)
}

type subscriptionRepoImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepoImpl{db: db}
}

func (r *subscriptionRepoImpl) Create(ctx context.Context, tx *gorm.DB, sub *model.Subscription) error {
	return tx.WithContext(ctx).Create(sub).Error
}

func (r *subscriptionRepoImpl) FindLatestByUser(ctx context.Context, userID uint) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&sub).Error

	if err != nil {
		return nil, err
	}

	return &sub, nil
}

func (r *subscriptionRepoImpl) FindByUser(ctx context.Context, userID uint) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error

	if err != nil {
		return nil, err
	}

	return subs, nil
}
