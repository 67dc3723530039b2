package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when a product id does not exist in the catalog.
var ErrProductNotFound = errors.New("produto não encontrado")

// Product is one catalog entry. The catalog is read-only for the
// lifetime of the process; products are never mutated after seeding.
type Product struct {
	ID            int
	Name          string
	Category      string
	Price         decimal.Decimal
	StockQuantity int
	Description   string
}

// PriceRange returns the minimum and maximum price across products.
// The ok result is false for an empty catalog.
func PriceRange(products []Product) (min, max decimal.Decimal, ok bool) {
	if len(products) == 0 {
		return decimal.Zero, decimal.Zero, false
	}
	min, max = products[0].Price, products[0].Price
	for _, p := range products[1:] {
		if p.Price.LessThan(min) {
			min = p.Price
		}
		if p.Price.GreaterThan(max) {
			max = p.Price
		}
	}
	return min, max, true
}

// Categories returns the distinct product categories in catalog order.
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	var out []string
	for _, p := range products {
		if _, dup := seen[p.Category]; dup {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
