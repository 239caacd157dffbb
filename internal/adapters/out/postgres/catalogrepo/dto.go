// Package catalogrepo persists the reference data orders point at: the
// status catalog, services and products. The engine only reads these rows;
// the write helpers here exist for seeding and tests.
package catalogrepo

import (
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatusDTO is one seeded row of the status catalog, keyed by canonical name.
type StatusDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(20);not null;uniqueIndex"`
}

// TableName overrides the GORM table name.
func (StatusDTO) TableName() string {
	return "order_status"
}

// ServiceDTO is a row of order_service.
type ServiceDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(100);not null"`
}

// TableName overrides the GORM table name.
func (ServiceDTO) TableName() string {
	return "order_service"
}

// ProductDTO carries the current unit pricing used to derive order totals.
type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ServiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Service   *ServiceDTO     `gorm:"foreignKey:ServiceID"`
	Name      string          `gorm:"type:varchar(100);not null"`
	UnitCost  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName overrides the GORM table name.
func (ProductDTO) TableName() string {
	return "order_product"
}

// StatusToDomain maps a stored status row onto the catalog. Rows whose name
// is not a catalog entry are rejected.
func StatusToDomain(dto StatusDTO) (order.Status, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return order.Status{}, err
	}

	statusType, err := order.ParseStatusType(dto.Name)
	if err != nil {
		return order.Status{}, err
	}

	return order.NewStatus(id, statusType)
}

func toGoogleIDs(ids []kernel.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Google())
	}
	return out
}
