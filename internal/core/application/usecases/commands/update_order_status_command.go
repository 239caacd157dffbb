package commands

import (
	"strings"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"
	"orderservice/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errs.NewValueIsRequiredErrorWithCause(
		"updateOrderStatus",
		guard.ErrDefaultConstructorGuard,
	)
	ErrOrderIDIsRequired    = errs.NewValueIsRequiredError("orderId")
	ErrStatusNameIsRequired = errs.NewValueIsRequiredError("statusName")
)

// UpdateOrderStatusCommand moves an existing order to the named status.
// The name is resolved against the status catalog by the handler, so any
// casing is accepted here.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	statusName string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand requires an order id and a non-blank status name.
// The name is resolved against the catalog by the handler.
func NewUpdateOrderStatusCommand(orderID kernel.UUID, statusName string) (UpdateOrderStatusCommand, error) {
	if orderID.Validate() != nil {
		return UpdateOrderStatusCommand{}, ErrOrderIDIsRequired
	}
	if strings.TrimSpace(statusName) == "" {
		return UpdateOrderStatusCommand{}, ErrStatusNameIsRequired
	}

	return UpdateOrderStatusCommand{
		orderID:    orderID,
		statusName: statusName,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built with NewUpdateOrderStatusCommand.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StatusName returns the requested status name as given.
func (c UpdateOrderStatusCommand) StatusName() string {
	return c.statusName
}
