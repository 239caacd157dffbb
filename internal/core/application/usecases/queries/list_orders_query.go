// Package queries contains the read use cases. Handlers read through
// ports.OrderReadStore and never modify state.
package queries

import (
	"orderservice/internal/pkg/errs"
	"orderservice/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errs.NewValueIsRequiredErrorWithCause(
	"listOrders",
	guard.ErrDefaultConstructorGuard,
)

// ListOrdersQuery retrieves every order, most recent first.
//
// Example:
//
//	query := NewListOrdersQuery()
//	handler := NewListOrdersQueryHandler(readStore)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	for _, o := range orders {
//	    fmt.Printf("%s %s %s\n", o.ID, o.StatusName, o.TotalPrice.StringFixed(2))
//	}
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query without parameters.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate reports whether the query was built with NewListOrdersQuery.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
