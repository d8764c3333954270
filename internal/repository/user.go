package repository

import (
	"context"

	"gorm.io/gorm"

	"biomarket-api/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *model.User) error
	// Delete removes the user; owned orders, subscriptions, payments and
	// cart rows cascade.
	Delete(ctx context.Context, id uint) error
	// FindWithData loads the user with all owned records for data export.
	FindWithData(ctx context.Context, id uint) (*model.User, error)
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepoImpl{db: db}
}

func (r *userRepoImpl) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepoImpl) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		First(&user, id).Error

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepoImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepoImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).
		Count(&count).Error

	return count > 0, err
}

func (r *userRepoImpl) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepoImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Association delete does not recurse and sqlite runs without FK
		// enforcement, so the nested snapshot rows go first.
		orderIDs := tx.Model(&model.Order{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("order_id IN (?)", orderIDs).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		cartIDs := tx.Model(&model.Cart{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("cart_id IN (?)", cartIDs).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}

		return tx.Select(
			"Orders", "Subscriptions", "Payments", "Cart",
		).Delete(&model.User{ID: id}).Error
	})
}

func (r *userRepoImpl) FindWithData(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Orders", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Orders.Items").
		Preload("Subscriptions", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&user, id).Error

	if err != nil {
		return nil, err
	}

	return &user, nil
}
