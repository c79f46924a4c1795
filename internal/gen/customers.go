package gen

import (
	"fmt"
	"strings"

	"fixturegen/internal/fixture"
)

var emailDomains = []string{"hotmail.com", "gmail.com", "coldmail.com"}

// Customers fabricates the customer collection with sequential ids starting
// at the configured base. The email address is derived from the display name
// by stripping spaces and lowercasing, with a random domain appended.
func (g *Generator) Customers() []fixture.Customer {
	customers := make([]fixture.Customer, 0, g.cfg.Customers)

	for i := 0; i < g.cfg.Customers; i++ {
		name := g.fake.Person().Name()
		domain := emailDomains[g.rng.Intn(len(emailDomains))]

		customers = append(customers, fixture.Customer{
			CustomerID: g.cfg.CustomerIDBase + i,
			Name:       name,
			Email:      emailFromName(name, domain),
			Address: fixture.Address{
				Street: fmt.Sprintf("%d %s", g.between(111, 894), g.fake.Address().StreetName()),
				City:   g.fake.Address().City(),
				State:  g.fake.Address().State(),
			},
		})
	}

	return customers
}

func emailFromName(name, domain string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "")) + "@" + domain
}
