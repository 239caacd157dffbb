package order

import (
	"errors"
	"fmt"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not built via NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an order line. Pricing is not stored on the item; it is derived
// from the referenced product whenever the order is read.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	serviceID kernel.UUID
	quantity  int

	isConstructed bool
}

// NewItem creates an order line with a fresh identity.
func NewItem(productID, serviceID kernel.UUID, quantity int) (Item, error) {
	return RestoreItem(kernel.NewUUID(), productID, serviceID, quantity)
}

// RestoreItem rebuilds an item read from storage.
func RestoreItem(id, productID, serviceID kernel.UUID, quantity int) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setServiceID(serviceID),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate reports whether the item was built with NewItem or RestoreItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the ordered product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// ServiceID returns the service the product belongs to.
func (i Item) ServiceID() kernel.UUID {
	return i.serviceID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	i.productID = id
	return nil
}

func (i *Item) setServiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("serviceId", err)
	}
	i.serviceID = id
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
