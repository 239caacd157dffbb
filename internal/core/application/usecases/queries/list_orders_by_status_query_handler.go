package queries

import (
	"context"

	"orderservice/internal/core/ports"
	"orderservice/internal/pkg/errs"
)

// ListOrdersByStatusQueryHandler lists the orders currently in one status.
type ListOrdersByStatusQueryHandler struct {
	statuses ports.StatusReader
	store    ports.OrderReadStore
}

// NewListOrdersByStatusQueryHandler creates a handler resolving statuses through statuses.
func NewListOrdersByStatusQueryHandler(
	statuses ports.StatusReader,
	store ports.OrderReadStore,
) ListOrdersByStatusQueryHandler {
	return ListOrdersByStatusQueryHandler{statuses: statuses, store: store}
}

// Handle resolves the status row and lists its orders, most recent first.
// A status that has no storage row yet cannot be referenced by any order,
// so the result is empty rather than an error.
func (h ListOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByStatusQuery,
) ([]ports.OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	status, err := h.statuses.GetStatus(ctx, query.StatusType())
	if err != nil {
		if errs.IsNotFound(err) {
			return []ports.OrderSummary{}, nil
		}
		return nil, readFailed("resolve status", err)
	}

	orders, err := h.store.ListOrdersByStatus(ctx, status.ID())
	if err != nil {
		return nil, readFailed("list orders by status", err)
	}
	if orders == nil {
		orders = []ports.OrderSummary{}
	}
	return orders, nil
}
