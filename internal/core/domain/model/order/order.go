package order

import (
	"errors"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order would be created without lines.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root: a reseller/customer purchase with one or
// more items and exactly one status.
//
// Order follows these invariants:
//   - Identity, reseller and customer are valid UUIDs
//   - Status is a resolved catalog entry
//   - At least one item, each with a positive quantity
//   - CreatedAt is in UTC
//
// version is the optimistic concurrency counter maintained by storage.
type Order struct {
	id         kernel.UUID
	resellerID kernel.UUID
	customerID kernel.UUID
	status     Status
	createdAt  time.Time
	items      []Item
	version    int

	isConstructed bool
}

// NewOrder creates an order in the given initial status, stamped with createdAt.
//
// Example:
//
//	created, _ := catalog.GetStatus(ctx, order.Created)
//	item, _ := order.NewItem(productID, serviceID, 2)
//	o, err := order.NewOrder(kernel.NewUUID(), resellerID, customerID, created, []order.Item{item}, time.Now())
func NewOrder(
	id, resellerID, customerID kernel.UUID,
	status Status,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	return RestoreOrder(id, resellerID, customerID, status, items, createdAt, 0)
}

// RestoreOrder rebuilds an order read from storage at the given version.
func RestoreOrder(
	id, resellerID, customerID kernel.UUID,
	status Status,
	items []Item,
	createdAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt.UTC(),
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setResellerID(resellerID),
		o.setCustomerID(customerID),
		o.setStatus(status),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate reports whether the order was built with NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ResellerID returns the reseller that placed the order.
func (o *Order) ResellerID() kernel.UUID {
	return o.resellerID
}

// CustomerID returns the customer the order is for.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation time in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Version returns the optimistic-lock counter read from storage.
func (o *Order) Version() int {
	return o.version
}

// ChangeStatus moves the order to status. Every catalog status is reachable
// from every other, including the current one.
func (o *Order) ChangeStatus(status Status) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.setStatus(status)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setResellerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("resellerId", err)
	}
	o.resellerID = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
