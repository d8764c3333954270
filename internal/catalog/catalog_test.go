package catalog

import "testing"

func TestProductByID(t *testing.T) {
	c := New()

	product, found := c.ProductByID(1)
	if !found {
		t.Fatal("ProductByID(1) not found")
	}
	if product.Name == "" || product.PriceSubscription <= 0 {
		t.Errorf("unexpected product: %+v", product)
	}

	if _, found := c.ProductByID(9999); found {
		t.Error("ProductByID(9999) found, want missing")
	}
}

func TestApplyCategoryFilter(t *testing.T) {
	c := New()

	tests := []struct {
		name     string
		filter   Filter
		wantsAll bool
	}{
		{"empty category matches all", Filter{}, true},
		{"all category matches all", Filter{Category: CategoryAll}, true},
		{"vegetables only", Filter{Category: CategoryVegetables}, false},
		{"eggs only", Filter{Category: CategoryEggs}, false},
	}

	total := len(c.Products())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Apply(tt.filter)
			if tt.wantsAll {
				if len(got) != total {
					t.Errorf("len = %d, want %d", len(got), total)
				}
				return
			}
			if len(got) == 0 || len(got) == total {
				t.Fatalf("len = %d, want strict subset of %d", len(got), total)
			}
			for _, p := range got {
				if p.Category != tt.filter.Category {
					t.Errorf("product %d category = %q, want %q", p.ID, p.Category, tt.filter.Category)
				}
			}
		})
	}
}

func TestApplySort(t *testing.T) {
	c := New()

	t.Run("rating descending", func(t *testing.T) {
		got := c.Apply(Filter{SortBy: SortRating})
		for i := 1; i < len(got); i++ {
			if got[i-1].Rating < got[i].Rating {
				t.Fatalf("ratings out of order at %d: %f < %f", i, got[i-1].Rating, got[i].Rating)
			}
		}
	})

	t.Run("price ascending", func(t *testing.T) {
		got := c.Apply(Filter{SortBy: SortPriceAsc})
		for i := 1; i < len(got); i++ {
			if got[i-1].PriceSubscription > got[i].PriceSubscription {
				t.Fatalf("prices out of order at %d", i)
			}
		}
	})

	t.Run("price descending", func(t *testing.T) {
		got := c.Apply(Filter{SortBy: SortPriceDesc})
		for i := 1; i < len(got); i++ {
			if got[i-1].PriceSubscription < got[i].PriceSubscription {
				t.Fatalf("prices out of order at %d", i)
			}
		}
	})

	t.Run("newest first", func(t *testing.T) {
		got := c.Apply(Filter{SortBy: SortNewest})
		seenOld := false
		for _, p := range got {
			if !p.IsNew {
				seenOld = true
			} else if seenOld {
				t.Fatal("new product after old product")
			}
		}
	})
}

func TestApplyVeganFilter(t *testing.T) {
	c := New()

	got := c.Apply(Filter{VeganOnly: true})
	if len(got) == 0 {
		t.Fatal("no vegan products")
	}
	for _, p := range got {
		if !p.IsVegan {
			t.Errorf("product %d is not vegan", p.ID)
		}
	}
}

func TestFarms(t *testing.T) {
	c := New()

	farm, found := c.FarmByID("hoki-farma")
	if !found {
		t.Fatal(`FarmByID("hoki-farma") not found`)
	}
	if farm.Name != "HOKI FARMA" {
		t.Errorf("farm name = %q", farm.Name)
	}

	products := c.FarmProducts(farm.ID)
	if len(products) == 0 {
		t.Fatal("farm has no products")
	}
	for _, p := range products {
		if p.FarmID != farm.ID {
			t.Errorf("product %d farm = %q, want %q", p.ID, p.FarmID, farm.ID)
		}
	}

	if _, found := c.FarmByID("missing"); found {
		t.Error(`FarmByID("missing") found, want missing`)
	}
}

func TestProductsReturnsCopy(t *testing.T) {
	c := New()

	products := c.Products()
	products[0].Name = "mutated"

	fresh := c.Products()
	if fresh[0].Name == "mutated" {
		t.Error("Products() exposes internal slice")
	}
}
