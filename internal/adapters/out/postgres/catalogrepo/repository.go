package catalogrepo

import (
	"context"
	"errors"
	"strings"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a repository over db, which may be a transaction.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetStatus resolves the seeded row for statusType. Stored names are
// compared case-insensitively.
func (r *GormCatalogRepository) GetStatus(ctx context.Context, statusType order.StatusType) (order.Status, error) {
	if err := statusType.Validate(); err != nil {
		return order.Status{}, err
	}

	var dto StatusDTO
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(statusType.String())).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Status{}, errs.NewObjectNotFoundError("statusName", statusType.String())
		}
		return order.Status{}, err
	}

	return StatusToDomain(dto)
}

// CountExistingProducts returns how many of ids name a stored product.
// ids are expected to be distinct.
func (r *GormCatalogRepository) CountExistingProducts(ctx context.Context, ids []kernel.UUID) (int, error) {
	return r.countExisting(ctx, &ProductDTO{}, ids)
}

// CountExistingServices returns how many of ids name a stored service.
func (r *GormCatalogRepository) CountExistingServices(ctx context.Context, ids []kernel.UUID) (int, error) {
	return r.countExisting(ctx, &ServiceDTO{}, ids)
}

func (r *GormCatalogRepository) countExisting(ctx context.Context, model any, ids []kernel.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(model).Where("id IN ?", toGoogleIDs(ids)).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// SeedStatusCatalog inserts a row for every catalog status that has none.
// Existing rows keep their ids, so running it repeatedly is safe.
func (r *GormCatalogRepository) SeedStatusCatalog(ctx context.Context) error {
	rows := make([]StatusDTO, 0, len(order.StatusTypes()))
	for _, name := range order.StatusNames() {
		rows = append(rows, StatusDTO{ID: uuid.New(), Name: name})
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&rows).Error
}

// AddService stores a service and returns its id.
func (r *GormCatalogRepository) AddService(ctx context.Context, name string) (kernel.UUID, error) {
	if strings.TrimSpace(name) == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("name")
	}

	dto := ServiceDTO{ID: uuid.New(), Name: name}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromGoogle(dto.ID)
}

// AddProduct stores a product offered under serviceID and returns its id.
func (r *GormCatalogRepository) AddProduct(
	ctx context.Context,
	serviceID kernel.UUID,
	name string,
	unitCost, unitPrice decimal.Decimal,
) (kernel.UUID, error) {
	if err := serviceID.Validate(); err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause("serviceId", err)
	}
	if strings.TrimSpace(name) == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("name")
	}
	if unitCost.IsNegative() {
		return kernel.UUID{}, errs.NewValueIsInvalidError("unitCost")
	}
	if unitPrice.IsNegative() {
		return kernel.UUID{}, errs.NewValueIsInvalidError("unitPrice")
	}

	dto := ProductDTO{
		ID:        uuid.New(),
		ServiceID: serviceID.Google(),
		Name:      name,
		UnitCost:  unitCost,
		UnitPrice: unitPrice,
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromGoogle(dto.ID)
}
