package gen

import (
	"time"

	"fixturegen/internal/fixture"
)

// orderEpoch is the base instant order dates are offset from.
var orderEpoch = time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)

const orderDateSpreadDays = 730

// Orders fabricates the order collection with sequential ids starting at the
// configured base. Each order references a uniformly chosen customer and gets
// a date within orderDateSpreadDays of the epoch. Delivered orders carry a
// delivery date 0-7 days plus 2-24 hours after the order date; pending orders
// carry none.
func (g *Generator) Orders(customers []fixture.Customer) []fixture.Order {
	orders := make([]fixture.Order, 0, g.cfg.Orders)

	for i := 0; i < g.cfg.Orders; i++ {
		customer := customers[g.rng.Intn(len(customers))]
		orderDate := fixture.NewTimestamp(orderEpoch.AddDate(0, 0, g.between(0, orderDateSpreadDays)))

		status := fixture.StatusDelivered
		if g.rng.Intn(2) == 1 {
			status = fixture.StatusPending
		}

		order := fixture.Order{
			OrderID:    g.cfg.OrderIDBase + i,
			CustomerID: customer.CustomerID,
			OrderDate:  orderDate,
			Status:     status,
		}

		if status == fixture.StatusDelivered {
			transit := time.Duration(g.between(0, 7))*24*time.Hour +
				time.Duration(g.between(2, 24))*time.Hour
			delivered := orderDate.Add(transit)
			order.DeliveryDate = &delivered
		}

		orders = append(orders, order)
	}

	return orders
}
