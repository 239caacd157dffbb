// Package services provides domain services of the order engine: business
// computations that span many aggregates and belong to none of them.
//
// The package includes:
//   - ProfitAggregator: groups completed orders by calendar month and sums
//     (unit price - unit cost) * quantity with exact decimal arithmetic
package services
