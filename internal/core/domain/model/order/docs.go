// Package order provides the order aggregate of the reseller order service.
//
// The package includes:
//   - StatusType: the fixed status catalog with case-insensitive name lookup
//   - Status: a catalog entry bound to its seeded storage row
//   - Item: an order line referencing a product, a service and a quantity
//   - Order: the aggregate root owning its items
//
// Key business rules:
//   - An order always references exactly one valid status
//   - An order has at least one item; every item has a positive quantity
//   - Status changes are unrestricted: any catalog status may follow any other
package order
