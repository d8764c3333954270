package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"biomarket-api/internal/auth"
	"biomarket-api/internal/config"
	"biomarket-api/internal/model"
)

// testDB opens a fresh in-memory sqlite database. The unique name keeps
// parallel tests from sharing state through the sqlite shared cache.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Order{},
		&model.OrderItem{},
		&model.Cart{},
		&model.CartItem{},
		&model.Subscription{},
		&model.Payment{},
		&model.WebhookEvent{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func testJWT(t *testing.T) *auth.JWTManager {
	t.Helper()

	manager, err := auth.NewJWTManager(config.JWT{
		Secret: "test_secret_that_is_long_enough_1234567890",
		Expiry: time.Hour,
	})
	if err != nil {
		t.Fatalf("init jwt manager: %v", err)
	}
	return manager
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	hash, err := auth.HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	user := &model.User{
		Email:    email,
		Password: hash,
		Fullname: "Test User",
		Role:     "buyer",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}
