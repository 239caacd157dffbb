package queries

import (
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"
	"orderservice/internal/pkg/guard"
)

var ErrListOrdersByStatusQueryIsNotConstructed = errs.NewValueIsRequiredErrorWithCause(
	"listOrdersByStatus",
	guard.ErrDefaultConstructorGuard,
)

// ListOrdersByStatusQuery filters orders by a status name. The name is
// resolved case-insensitively when the query is built, so an unknown name
// is rejected before any storage access.
//
// Example:
//
//	query, err := NewListOrdersByStatusQuery("pending")
//	if err != nil {
//	    return err // errs.IsInvalidArgument(err) == true
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersByStatusQuery struct {
	statusType order.StatusType

	guard guard.ConstructorGuard
}

// NewListOrdersByStatusQuery resolves statusName against the catalog, ignoring case and surrounding whitespace.
func NewListOrdersByStatusQuery(statusName string) (ListOrdersByStatusQuery, error) {
	statusType, err := order.ParseStatusType(statusName)
	if err != nil {
		return ListOrdersByStatusQuery{}, err
	}
	return ListOrdersByStatusQuery{statusType: statusType, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the query was built with NewListOrdersByStatusQuery.
func (q ListOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByStatusQueryIsNotConstructed)
}

// StatusType returns the resolved catalog entry.
func (q ListOrdersByStatusQuery) StatusType() order.StatusType {
	return q.statusType
}
