package gen

import (
	"math/rand"
	"time"

	"github.com/jaswdr/faker"

	"fixturegen/internal/catalog"
	"fixturegen/internal/fixture"
)

// Config holds the knobs of a generation run. Identifier bases are fixed by
// the dataset's schema; collection sizes may be scaled.
type Config struct {
	// Customers is the number of customer records to fabricate.
	Customers int
	// Orders is the number of order records to fabricate.
	Orders int
	// CustomerIDBase is the first customer id.
	CustomerIDBase int
	// ProductIDBase is the first product id.
	ProductIDBase int
	// OrderIDBase is the first order id.
	OrderIDBase int
	// OrderItemIDBase is the first order-item id.
	OrderItemIDBase int
	// Seed seeds all randomness; 0 derives a seed from the current time.
	Seed int64
}

// DefaultConfig returns the standard dataset shape: 24 customers, 29 orders,
// one product per catalog entry.
func DefaultConfig() Config {
	return Config{
		Customers:       24,
		Orders:          29,
		CustomerIDBase:  1,
		ProductIDBase:   101,
		OrderIDBase:     5001,
		OrderItemIDBase: 9001,
		Seed:            0,
	}
}

// Result bundles the four generated collections of one run.
type Result struct {
	Customers  []fixture.Customer
	Products   []fixture.Product
	Orders     []fixture.Order
	OrderItems []fixture.OrderItem
}

// Generator fabricates sample collections. The zero value is not usable;
// construct with New. Not safe for concurrent use: the stages share one
// random source.
type Generator struct {
	cfg  Config
	rng  *rand.Rand
	fake faker.Faker
}

// New creates a Generator. The faker and the numeric draws share the same
// seeded source so one seed value determines the whole run.
func New(cfg Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	src := rand.NewSource(seed)

	return &Generator{
		cfg:  cfg,
		rng:  rand.New(src),
		fake: faker.NewWithSeed(src),
	}
}

// Run executes the four stages in order and returns the collections.
func (g *Generator) Run(entries []catalog.Entry) Result {
	customers := g.Customers()
	products := g.Products(entries)
	orders := g.Orders(customers)
	items, _ := g.Items(orders, products, g.cfg.OrderItemIDBase)

	return Result{
		Customers:  customers,
		Products:   products,
		Orders:     orders,
		OrderItems: items,
	}
}

// between returns a uniform draw from [min, max], both bounds inclusive.
func (g *Generator) between(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}
