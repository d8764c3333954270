package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"biomarket-api/internal/catalog"
	"biomarket-api/internal/model"
	"biomarket-api/internal/repository"
)

func newCartService(t *testing.T) (CartService, uint) {
	t.Helper()
	db := testDB(t)
	user := createTestUser(t, db, "cart@example.com")
	return NewCartService(repository.NewCartRepository(db), catalog.New()), user.ID
}

func TestCartAddItemMergesDuplicates(t *testing.T) {
	svc, userID := newCartService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, userID, 1); err != nil {
		t.Fatalf("AddItem() error: %v", err)
	}
	cart, err := svc.AddItem(ctx, userID, 1)
	if err != nil {
		t.Fatalf("AddItem() error: %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1 (same product must merge)", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", cart.Items[0].Quantity)
	}
	if cart.Count != 2 {
		t.Errorf("count = %d, want 2", cart.Count)
	}
}

// The schema itself rejects a second row for the same (cart, product) pair,
// so the one-line-per-product rule holds even under concurrent adds.
func TestCartItemUniquePerCartProduct(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "cart@example.com")
	svc := NewCartService(repository.NewCartRepository(db), catalog.New())
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, user.ID, 1); err != nil {
		t.Fatal(err)
	}

	var item model.CartItem
	if err := db.Where("product_id = ?", 1).First(&item).Error; err != nil {
		t.Fatal(err)
	}

	dup := model.CartItem{
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Name:      item.Name,
		Quantity:  1,
	}
	err := db.Create(&dup).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("duplicate insert error = %v, want gorm.ErrDuplicatedKey", err)
	}
}

// missingFirstLookupRepo reports the first FindItem as a miss, the way a
// concurrent add that has not committed yet would look.
type missingFirstLookupRepo struct {
	repository.CartRepository
	missed bool
}

func (r *missingFirstLookupRepo) FindItem(ctx context.Context, cartID uint, productID int) (*model.CartItem, error) {
	if !r.missed {
		r.missed = true
		return nil, gorm.ErrRecordNotFound
	}
	return r.CartRepository.FindItem(ctx, cartID, productID)
}

func TestCartAddItemRecoversFromLostInsertRace(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "cart@example.com")
	cartRepo := repository.NewCartRepository(db)
	ctx := context.Background()

	if _, err := NewCartService(cartRepo, catalog.New()).AddItem(ctx, user.ID, 1); err != nil {
		t.Fatal(err)
	}

	racing := NewCartService(&missingFirstLookupRepo{CartRepository: cartRepo}, catalog.New())
	cart, err := racing.AddItem(ctx, user.ID, 1)
	if err != nil {
		t.Fatalf("AddItem() error: %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1 (lost race must fold into the existing line)", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", cart.Items[0].Quantity)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	svc, userID := newCartService(t)

	_, err := svc.AddItem(context.Background(), userID, 9999)
	if !errors.Is(err, ErrUnknownProduct) {
		t.Errorf("AddItem(9999) error = %v, want ErrUnknownProduct", err)
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	svc, userID := newCartService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, userID, 1); err != nil {
		t.Fatal(err)
	}

	cart, err := svc.UpdateQuantity(ctx, userID, 1, 5)
	if err != nil {
		t.Fatalf("UpdateQuantity() error: %v", err)
	}
	if cart.Items[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", cart.Items[0].Quantity)
	}
}

func TestCartUpdateQuantityZeroRemoves(t *testing.T) {
	svc, userID := newCartService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, userID, 1); err != nil {
		t.Fatal(err)
	}

	cart, err := svc.UpdateQuantity(ctx, userID, 1, 0)
	if err != nil {
		t.Fatalf("UpdateQuantity(.., 0) error: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Errorf("len(Items) = %d, want 0 (zero quantity removes the line)", len(cart.Items))
	}

	// Negative quantity behaves the same.
	if _, err := svc.AddItem(ctx, userID, 2); err != nil {
		t.Fatal(err)
	}
	cart, err = svc.UpdateQuantity(ctx, userID, 2, -3)
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 0 {
		t.Errorf("len(Items) = %d after negative quantity, want 0", len(cart.Items))
	}
}

// The cart total uses the subscription price, not the regular price.
func TestCartTotalUsesSubscriptionPrice(t *testing.T) {
	svc, userID := newCartService(t)
	ctx := context.Background()
	cat := catalog.New()

	product, _ := cat.ProductByID(1)
	if product.Price == product.PriceSubscription {
		t.Fatal("test product must have distinct regular and subscription prices")
	}

	if _, err := svc.AddItem(ctx, userID, 1); err != nil {
		t.Fatal(err)
	}
	cart, err := svc.UpdateQuantity(ctx, userID, 1, 3)
	if err != nil {
		t.Fatal(err)
	}

	want := decimal.NewFromFloat(product.PriceSubscription).
		Mul(decimal.NewFromInt(3)).StringFixed(2)
	if cart.Total != want {
		t.Errorf("total = %s, want %s", cart.Total, want)
	}
}

func TestCartRemoveMissingItem(t *testing.T) {
	svc, userID := newCartService(t)

	_, err := svc.RemoveItem(context.Background(), userID, 1)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveItem() error = %v, want ErrNotFound", err)
	}
}

func TestCartClear(t *testing.T) {
	svc, userID := newCartService(t)
	ctx := context.Background()

	for id := 1; id <= 3; id++ {
		if _, err := svc.AddItem(ctx, userID, id); err != nil {
			t.Fatal(err)
		}
	}

	if err := svc.Clear(ctx, userID); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}

	cart, err := svc.Get(ctx, userID)
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 0 {
		t.Errorf("len(Items) = %d after clear, want 0", len(cart.Items))
	}
	if cart.Total != "0.00" {
		t.Errorf("total = %s after clear, want 0.00", cart.Total)
	}
}

func TestCartIsPerUser(t *testing.T) {
	db := testDB(t)
	svc := NewCartService(repository.NewCartRepository(db), catalog.New())
	ctx := context.Background()

	var userIDs []uint
	for i := 0; i < 2; i++ {
		user := createTestUser(t, db, fmt.Sprintf("user%d@example.com", i))
		userIDs = append(userIDs, user.ID)
	}

	if _, err := svc.AddItem(ctx, userIDs[0], 1); err != nil {
		t.Fatal(err)
	}

	other, err := svc.Get(ctx, userIDs[1])
	if err != nil {
		t.Fatal(err)
	}
	if len(other.Items) != 0 {
		t.Error("cart items leaked between users")
	}
}
