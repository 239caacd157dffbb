package queries

import (
	"context"

	"orderservice/internal/core/ports"
)

// ListOrdersQueryHandler lists every order summary.
type ListOrdersQueryHandler struct {
	store ports.OrderReadStore
}

// NewListOrdersQueryHandler creates a handler over store.
func NewListOrdersQueryHandler(store ports.OrderReadStore) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{store: store}
}

// Handle returns an empty, non-nil slice when there are no orders.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ports.OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.store.ListOrders(ctx)
	if err != nil {
		return nil, readFailed("list orders", err)
	}
	if orders == nil {
		orders = []ports.OrderSummary{}
	}
	return orders, nil
}
