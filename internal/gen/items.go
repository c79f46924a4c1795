package gen

import (
	"fixturegen/internal/fixture"
)

// Per-order item count and per-item quantity bounds, inclusive.
const (
	itemsPerOrderMin = 1
	itemsPerOrderMax = 5
	quantityMin      = 1
	quantityMax      = 3
)

// Items fabricates 1-5 line items for every order. Each item references a
// product drawn uniformly with replacement, so one order may list the same
// product twice. The item's price copies the product's price as generated.
//
// nextID is the first id to assign; the ids increase by one per item across
// the whole flattened sequence, ignoring order boundaries. Items returns the
// items together with the advanced counter.
func (g *Generator) Items(orders []fixture.Order, products []fixture.Product, nextID int) ([]fixture.OrderItem, int) {
	items := make([]fixture.OrderItem, 0, len(orders)*itemsPerOrderMin)

	for _, order := range orders {
		count := g.between(itemsPerOrderMin, itemsPerOrderMax)

		for j := 0; j < count; j++ {
			product := products[g.rng.Intn(len(products))]

			items = append(items, fixture.OrderItem{
				OrderItemID: nextID,
				OrderID:     order.OrderID,
				ProductID:   product.ProductID,
				Quantity:    g.between(quantityMin, quantityMax),
				Price:       product.Price,
			})
			nextID++
		}
	}

	return items, nextID
}
