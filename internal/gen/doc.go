// Package gen fabricates the four sample collections and writes them to disk.
//
// Generation is a single forward pass over four stages: customers, products,
// orders, order items. Later stages only read from the collections produced
// by earlier ones. All randomness, including the faker's, flows from one
// seeded source, so a fixed seed reproduces a run exactly.
package gen
