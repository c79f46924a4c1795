package gen

import (
	"fixturegen/internal/catalog"
	"fixturegen/internal/fixture"
)

// Price and stock bounds, inclusive.
const (
	priceMin = 30
	priceMax = 1200
	stockMin = 20
	stockMax = 90
)

// Products fabricates one product per catalog entry, in catalog order, with
// ids assigned positionally from the configured base.
func (g *Generator) Products(entries []catalog.Entry) []fixture.Product {
	products := make([]fixture.Product, 0, len(entries))

	for i, entry := range entries {
		products = append(products, fixture.Product{
			ProductID:     g.cfg.ProductIDBase + i,
			ProductName:   entry.Name,
			Category:      entry.Category,
			Price:         g.between(priceMin, priceMax),
			StockQuantity: g.between(stockMin, stockMax),
		})
	}

	return products
}
