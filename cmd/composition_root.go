package cmd

import (
	"log/slog"

	httpin "orderservice/internal/adapters/in/http"
	"orderservice/internal/adapters/out/postgres"
	"orderservice/internal/adapters/out/postgres/catalogrepo"
	"orderservice/internal/adapters/out/postgres/orderrepo"
	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. It owns no lifecycle; main closes the database.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	readStore  *orderrepo.GormOrderReadStore
	catalog    *catalogrepo.GormCatalogRepository
}

// NewCompositionRoot builds the stores shared by every handler on top of gormDB.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		readStore:  orderrepo.NewGormOrderReadStore(gormDB),
		catalog:    catalogrepo.NewGormCatalogRepository(gormDB),
	}
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// CreateCreateOrderCommandHandler returns a handler that opens a unit of work per command.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.commandUoWFactory(), c.logger)
	return &h
}

// CreateUpdateOrderStatusCommandHandler returns a handler that opens a unit of work per command.
func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() *commands.UpdateOrderStatusCommandHandler {
	h := commands.NewUpdateOrderStatusCommandHandler(c.commandUoWFactory(), c.logger)
	return &h
}

// CreateListOrdersQueryHandler returns a handler reading from the order read store.
func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.readStore)
}

// CreateGetOrderQueryHandler returns a handler reading from the order read store.
func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.readStore)
}

// CreateListOrdersByStatusQueryHandler resolves statuses through the catalog outside any transaction.
func (c *CompositionRoot) CreateListOrdersByStatusQueryHandler() queries.ListOrdersByStatusQueryHandler {
	return queries.NewListOrdersByStatusQueryHandler(c.catalog, c.readStore)
}

// CreateGetProfitByMonthQueryHandler returns a handler reading completed orders from the read store.
func (c *CompositionRoot) CreateGetProfitByMonthQueryHandler() queries.GetProfitByMonthQueryHandler {
	return queries.NewGetProfitByMonthQueryHandler(c.readStore)
}

// CreateHTTPServer returns the HTTP server with every use case attached.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus:  c.CreateUpdateOrderStatusCommandHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		ListOrdersByStatus: c.CreateListOrdersByStatusQueryHandler(),
		GetProfitByMonth:   c.CreateGetProfitByMonthQueryHandler(),
	}, c.logger)
}

// CreateJobManager returns the scheduled jobs configured by Config.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetProfitByMonthQueryHandler(), c.config.ProfitReportSchedule, c.logger)
}

// FuncUoWFactory adapts a function to commands.UoWFactory.
type FuncUoWFactory func() commands.UoW

// Create calls f.
func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
