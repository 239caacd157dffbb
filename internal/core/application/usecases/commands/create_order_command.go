package commands

import (
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"
	"orderservice/internal/pkg/guard"
)

const (
	MinItemQuantity = 1
	MaxItemQuantity = 1000
)

var (
	ErrCreateOrderCommandIsNotConstructed = errs.NewValueIsRequiredErrorWithCause(
		"order",
		guard.ErrDefaultConstructorGuard,
	)
	ErrResellerIDIsRequired = errs.NewValueIsRequiredError("resellerId")
	ErrCustomerIDIsRequired = errs.NewValueIsRequiredError("customerId")
	ErrItemsAreRequired     = errs.NewValueIsRequiredError("items")
)

// OrderItemInput is one requested order line.
type OrderItemInput struct {
	ProductID kernel.UUID
	ServiceID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a reseller's request to place an order for a customer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(resellerID, customerID, []OrderItemInput{
//	    {ProductID: productID, ServiceID: serviceID, Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	resellerID kernel.UUID
	customerID kernel.UUID
	items      []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the arguments in order and reports the
// first failure only: reseller, customer, item list, then each item.
func NewCreateOrderCommand(
	resellerID, customerID kernel.UUID,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setResellerID(resellerID); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := cmd.setCustomerID(customerID); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := cmd.setItems(items); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ResellerID returns the reseller placing the order.
func (c CreateOrderCommand) ResellerID() kernel.UUID {
	return c.resellerID
}

// CustomerID returns the customer the order is for.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns a copy of the requested lines.
func (c CreateOrderCommand) Items() []OrderItemInput {
	items := make([]OrderItemInput, len(c.items))
	copy(items, c.items)
	return items
}

// ProductIDs returns the distinct product ids in first-seen order.
func (c CreateOrderCommand) ProductIDs() []kernel.UUID {
	return distinctIDs(c.items, func(i OrderItemInput) kernel.UUID { return i.ProductID })
}

// ServiceIDs returns the distinct service ids in first-seen order.
func (c CreateOrderCommand) ServiceIDs() []kernel.UUID {
	return distinctIDs(c.items, func(i OrderItemInput) kernel.UUID { return i.ServiceID })
}

func (c *CreateOrderCommand) setResellerID(id kernel.UUID) error {
	if id.Validate() != nil {
		return ErrResellerIDIsRequired
	}
	c.resellerID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if id.Validate() != nil {
		return ErrCustomerIDIsRequired
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if item.ProductID.Validate() != nil {
			return errs.NewValueIsRequiredError("productId")
		}
		if item.ServiceID.Validate() != nil {
			return errs.NewValueIsRequiredError("serviceId")
		}
		if item.Quantity < MinItemQuantity || item.Quantity > MaxItemQuantity {
			return errs.NewValueIsOutOfRangeError("quantity", item.Quantity, MinItemQuantity, MaxItemQuantity)
		}
	}

	c.items = make([]OrderItemInput, len(items))
	copy(c.items, items)
	return nil
}

func distinctIDs(items []OrderItemInput, pick func(OrderItemInput) kernel.UUID) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(items))
	ids := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		id := pick(item)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
