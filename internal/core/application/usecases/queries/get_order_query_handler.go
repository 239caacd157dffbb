package queries

import (
	"context"

	"orderservice/internal/core/ports"
	"orderservice/internal/pkg/errs"
)

var ErrOrderNotFound = errs.NewObjectNotFoundError("orderId", "requested order")

// GetOrderQueryHandler loads one order with its lines.
type GetOrderQueryHandler struct {
	store ports.OrderReadStore
}

// NewGetOrderQueryHandler creates a handler over store.
func NewGetOrderQueryHandler(store ports.OrderReadStore) GetOrderQueryHandler {
	return GetOrderQueryHandler{store: store}
}

// Handle returns ErrOrderNotFound when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (ports.OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return ports.OrderDetail{}, err
	}

	detail, err := h.store.GetOrder(ctx, query.OrderID())
	if err != nil {
		if errs.IsNotFound(err) {
			return ports.OrderDetail{}, ErrOrderNotFound
		}
		return ports.OrderDetail{}, readFailed("get order", err)
	}
	return detail, nil
}
