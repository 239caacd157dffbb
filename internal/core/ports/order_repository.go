// Package ports defines the storage contracts the order engine depends on.
// Adapters under internal/adapters/out implement them; use cases and tests
// depend only on these interfaces.
package ports

import (
	"context"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
)

// OrderRepository is the write-side contract for order aggregates.
// Instances are bound to the transaction of the unit of work that produced them.
type OrderRepository interface {
	// Add persists a new order together with all of its items.
	// Either the header and every item are stored, or nothing is.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its items.
	// Returns an errs.ObjectNotFoundError when no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus persists the aggregate's current status. The write only
	// succeeds if the stored version still equals aggregate.Version(), so of
	// two concurrent read-modify-write cycles on one order at most one wins.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error
}

// StatusReader resolves catalog entries to their seeded storage rows.
type StatusReader interface {
	// GetStatus returns an errs.ObjectNotFoundError when the catalog row for
	// statusType has not been seeded.
	GetStatus(ctx context.Context, statusType order.StatusType) (order.Status, error)
}

// CatalogRepository answers reference-data questions needed while creating
// orders. Products and services are never modified through it.
type CatalogRepository interface {
	StatusReader

	// CountExistingProducts returns how many of the given distinct ids exist.
	CountExistingProducts(ctx context.Context, ids []kernel.UUID) (int, error)

	// CountExistingServices returns how many of the given distinct ids exist.
	CountExistingServices(ctx context.Context, ids []kernel.UUID) (int, error)
}
