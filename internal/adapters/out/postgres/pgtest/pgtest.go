// Package pgtest starts a throwaway PostgreSQL container for integration
// tests and prepares the order schema in it.
package pgtest

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"orderservice/internal/adapters/out/postgres"
	"orderservice/internal/adapters/out/postgres/catalogrepo"
	"orderservice/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Database is a migrated, seeded database inside a running container.
type Database struct {
	Container *tcpostgres.PostgresContainer
	SQL       *sql.DB
	Gorm      *gorm.DB
}

// Start skips the calling test under -short, otherwise it starts the
// container, migrates the schema and seeds the status catalog.
func Start(t *testing.T) *Database {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	sqlDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, sqlDB.PingContext(ctx))

	gormDB, err := postgres.OpenGorm(sqlDB)
	require.NoError(t, err)

	require.NoError(t, postgres.Migrate(ctx, gormDB))
	require.NoError(t, postgres.SeedStatusCatalog(ctx, gormDB))

	return &Database{Container: container, SQL: sqlDB, Gorm: gormDB}
}

// Terminate closes the pool and stops the container.
func (d *Database) Terminate(t *testing.T) {
	t.Helper()
	if d == nil {
		return
	}
	_ = d.SQL.Close()
	require.NoError(t, d.Container.Terminate(context.Background()))
}

// Reset removes orders and reference products and services. Status rows stay.
func (d *Database) Reset(t *testing.T) {
	t.Helper()
	require.NoError(t, d.Gorm.Exec("TRUNCATE TABLE order_item, orders, order_product, order_service").Error)
}

// Product is a seeded product together with its service.
type Product struct {
	ID        kernel.UUID
	ServiceID kernel.UUID
}

// AddProduct stores a service and one product priced at cost/price.
func (d *Database) AddProduct(t *testing.T, name, cost, price string) Product {
	t.Helper()
	ctx := context.Background()
	repo := catalogrepo.NewGormCatalogRepository(d.Gorm)

	serviceID, err := repo.AddService(ctx, name+" service")
	require.NoError(t, err)

	productID, err := repo.AddProduct(ctx, serviceID, name,
		decimal.RequireFromString(cost), decimal.RequireFromString(price))
	require.NoError(t, err)

	return Product{ID: productID, ServiceID: serviceID}
}
