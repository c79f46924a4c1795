package fixture

// Address is the structured address nested under a Customer.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
}

// Customer is a person record referenced by orders.
type Customer struct {
	CustomerID int     `json:"customer_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Address    Address `json:"address"`
}

// Product is a catalog entry referenced by order items.
type Product struct {
	ProductID     int    `json:"product_id"`
	ProductName   string `json:"product_name"`
	Category      string `json:"category"`
	Price         int    `json:"price"`
	StockQuantity int    `json:"stock_quantity"`
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusDelivered OrderStatus = "Delivered"
	StatusPending   OrderStatus = "Pending"
)

// Order is a purchase event tying one customer to a date, status and an
// optional delivery date. DeliveryDate is nil exactly when Status is
// StatusPending; the serialized object then has no delivery_date key at all.
type Order struct {
	OrderID      int         `json:"order_id"`
	CustomerID   int         `json:"customer_id"`
	OrderDate    Timestamp   `json:"order_date"`
	Status       OrderStatus `json:"status"`
	DeliveryDate *Timestamp  `json:"delivery_date,omitempty"`
}

// OrderItem is a single product line within an order.
// Price snapshots the referenced product's price at generation time.
type OrderItem struct {
	OrderItemID int `json:"order_item_id"`
	OrderID     int `json:"order_id"`
	ProductID   int `json:"product_id"`
	Quantity    int `json:"quantity"`
	Price       int `json:"price"`
}
