package queries

import (
	"context"

	"orderservice/internal/core/domain/services"
	"orderservice/internal/core/ports"
)

// GetProfitByMonthQueryHandler loads the completed orders inside the query
// window and groups them in memory with services.ProfitAggregator, keeping
// the decimal arithmetic out of the database.
type GetProfitByMonthQueryHandler struct {
	store      ports.OrderReadStore
	aggregator services.ProfitAggregator
}

// NewGetProfitByMonthQueryHandler creates a handler over store.
func NewGetProfitByMonthQueryHandler(store ports.OrderReadStore) GetProfitByMonthQueryHandler {
	return GetProfitByMonthQueryHandler{
		store:      store,
		aggregator: services.NewProfitAggregator(),
	}
}

// Handle returns one row per month, newest first.
func (h GetProfitByMonthQueryHandler) Handle(
	ctx context.Context,
	query GetProfitByMonthQuery,
) ([]services.ProfitByMonth, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.store.ListCompletedOrders(ctx, query.Window())
	if err != nil {
		return nil, readFailed("list completed orders", err)
	}

	return h.aggregator.Aggregate(orders), nil
}
