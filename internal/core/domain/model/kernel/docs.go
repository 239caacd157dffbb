// Package kernel provides the shared value objects of the order domain.
//
// UUID wraps github.com/google/uuid so that identifiers of orders, items,
// resellers, customers, products, services and statuses are validated at
// construction: the nil UUID is never a valid identity.
package kernel
