package queries

import (
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"
	"orderservice/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errs.NewValueIsRequiredErrorWithCause(
		"getOrder",
		guard.ErrDefaultConstructorGuard,
	)
	ErrOrderIDIsRequired = errs.NewValueIsRequiredError("orderId")
)

// GetOrderQuery retrieves one order with its lines.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery requires a non-nil order id.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if orderID.Validate() != nil {
		return GetOrderQuery{}, ErrOrderIDIsRequired
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the query was built with NewGetOrderQuery.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
