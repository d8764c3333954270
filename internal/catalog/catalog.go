package catalog

import "sort"

// Product categories.
const (
	CategoryAll        = "all"
	CategoryPotatoes   = "potatoes"
	CategoryVegetables = "vegetables"
	CategoryFruits     = "fruits"
	CategoryBerries    = "berries"
	CategoryHerbs      = "herbs"
	CategoryEggs       = "eggs"
	CategoryMeat       = "meat"
)

// Sort options.
const (
	SortRating    = "rating"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNewest    = "newest"
)

type Product struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	PriceSubscription float64 `json:"priceSubscription"`
	Unit              string  `json:"unit"`
	Rating            float64 `json:"rating"`
	FarmID            string  `json:"farmId"`
	IsVegan           bool    `json:"isVegan"`
	IsNew             bool    `json:"isNew"`
}

// Catalog is the product catalog of record. The storefront ships a fixed
// assortment; there is no product CRUD.
type Catalog struct {
	products []Product
	farms    []Farm
}

func New() *Catalog {
	return &Catalog{products: products, farms: farms}
}

func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) ProductByID(id int) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Filter narrows and orders the catalog. An empty or "all" category matches
// everything; an unknown sort option leaves the catalog order untouched.
type Filter struct {
	Category  string
	SortBy    string
	VeganOnly bool
	NewOnly   bool
}

func (c *Catalog) Apply(f Filter) []Product {
	filtered := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
			continue
		}
		if f.VeganOnly && !p.IsVegan {
			continue
		}
		if f.NewOnly && !p.IsNew {
			continue
		}
		filtered = append(filtered, p)
	}

	switch f.SortBy {
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PriceSubscription < filtered[j].PriceSubscription
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PriceSubscription > filtered[j].PriceSubscription
		})
	case SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].IsNew && !filtered[j].IsNew
		})
	}

	return filtered
}
