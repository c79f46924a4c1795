// Package fixture defines the sample-data domain model: customers, products,
// orders and order items, plus the Timestamp wrapper that owns their
// serialized time format.
//
// Records are created once by the generators and never mutated afterwards.
// The Order's delivery date is a pointer that is nil for pending orders, so
// the serialized object carries the key only when the order was delivered.
package fixture
