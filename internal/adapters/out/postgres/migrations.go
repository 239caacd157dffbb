package postgres

import (
	"context"
	"fmt"

	"orderservice/internal/adapters/out/postgres/catalogrepo"
	"orderservice/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&catalogrepo.StatusDTO{},
		&catalogrepo.ServiceDTO{},
		&catalogrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// SeedStatusCatalog makes sure every catalog status has a storage row.
func SeedStatusCatalog(ctx context.Context, db *gorm.DB) error {
	if err := catalogrepo.NewGormCatalogRepository(db).SeedStatusCatalog(ctx); err != nil {
		return fmt.Errorf("failed to seed status catalog: %w", err)
	}
	return nil
}
