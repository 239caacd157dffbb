// Package orderrepo persists order aggregates and serves the order read side.
package orderrepo

import (
	"time"

	"orderservice/internal/adapters/out/postgres/catalogrepo"
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders table. Version is the optimistic concurrency
// counter, advanced on every status write.
type OrderDTO struct {
	ID         uuid.UUID              `gorm:"type:uuid;primaryKey"`
	ResellerID uuid.UUID              `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID              `gorm:"type:uuid;not null;index"`
	StatusID   uuid.UUID              `gorm:"type:uuid;not null;index"`
	Status     *catalogrepo.StatusDTO `gorm:"foreignKey:StatusID"`
	CreatedAt  time.Time              `gorm:"not null;index"`
	Version    int                    `gorm:"not null;default:0"`
	Items      []ItemDTO              `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the GORM table name.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line. Pricing lives on the referenced product.
type ItemDTO struct {
	ID        uuid.UUID               `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID               `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID               `gorm:"type:uuid;not null;index"`
	Product   *catalogrepo.ProductDTO `gorm:"foreignKey:ProductID"`
	ServiceID uuid.UUID               `gorm:"type:uuid;not null;index"`
	Service   *catalogrepo.ServiceDTO `gorm:"foreignKey:ServiceID"`
	Quantity  int                     `gorm:"not null"`
}

// TableName overrides the GORM table name.
func (ItemDTO) TableName() string {
	return "order_item"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Google()
	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemDTO{
			ID:        item.ID().Google(),
			OrderID:   orderID,
			ProductID: item.ProductID().Google(),
			ServiceID: item.ServiceID().Google(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:         orderID,
		ResellerID: o.ResellerID().Google(),
		CustomerID: o.CustomerID().Google(),
		StatusID:   o.Status().ID().Google(),
		CreatedAt:  o.CreatedAt(),
		Version:    o.Version(),
		Items:      items,
	}
}

// toDomain expects Status and Items to be preloaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	if dto.Status == nil {
		return nil, errMissingStatus
	}

	status, err := catalogrepo.StatusToDomain(*dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	resellerID, err := kernel.UUIDFromGoogle(dto.ResellerID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromGoogle(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, resellerID, customerID, status, items, dto.CreatedAt, dto.Version)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return order.Item{}, err
	}
	productID, err := kernel.UUIDFromGoogle(dto.ProductID)
	if err != nil {
		return order.Item{}, err
	}
	serviceID, err := kernel.UUIDFromGoogle(dto.ServiceID)
	if err != nil {
		return order.Item{}, err
	}
	return order.RestoreItem(id, productID, serviceID, dto.Quantity)
}
