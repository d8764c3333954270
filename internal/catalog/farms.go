package catalog

type Farm struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	Description   string  `json:"description"`
	ProductsCount int     `json:"productsCount"`
	Followers     int     `json:"followers"`
	Established   string  `json:"established"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Website       string  `json:"website"`
}

func (c *Catalog) Farms() []Farm {
	out := make([]Farm, len(c.farms))
	copy(out, c.farms)
	return out
}

func (c *Catalog) FarmByID(id string) (Farm, bool) {
	for _, f := range c.farms {
		if f.ID == id {
			return f, true
		}
	}
	return Farm{}, false
}

// FarmProducts returns the catalog products supplied by one farm.
func (c *Catalog) FarmProducts(farmID string) []Product {
	var out []Product
	for _, p := range c.products {
		if p.FarmID == farmID {
			out = append(out, p)
		}
	}
	return out
}
