package commands

import (
	"context"
	"log/slog"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"
)

var (
	ErrProductNotFound     = errs.NewObjectNotFoundError("productId", "one or more products")
	ErrServiceNotFound     = errs.NewObjectNotFoundError("serviceId", "one or more services")
	ErrOrderCreationFailed = errs.NewOperationFailedError("create order")
)

// CreateOrderCommandHandler places new orders in the Created status after
// checking that every referenced product and service exists.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, logger)
//	orderID, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrProductNotFound):
//	    // unknown product
//	case errs.IsInternalFailure(err):
//	    // storage problem, cause already logged
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler that opens one unit of work per command.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "CreateOrderCommandHandler"),
		now:        time.Now,
	}
}

// Handle creates the order and its items in one transaction and returns the
// new order id. Storage failures are logged and reported as ErrOrderCreationFailed.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, h.failed(ctx, "begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalog := uow.CatalogRepository()
	created, err := catalog.GetStatus(ctx, order.Created)
	if err != nil {
		return kernel.UUID{}, h.failed(ctx, "resolve initial status", err)
	}

	productIDs := cmd.ProductIDs()
	found, err := catalog.CountExistingProducts(ctx, productIDs)
	if err != nil {
		return kernel.UUID{}, h.failed(ctx, "count products", err)
	}
	if found < len(productIDs) {
		return kernel.UUID{}, ErrProductNotFound
	}

	serviceIDs := cmd.ServiceIDs()
	found, err = catalog.CountExistingServices(ctx, serviceIDs)
	if err != nil {
		return kernel.UUID{}, h.failed(ctx, "count services", err)
	}
	if found < len(serviceIDs) {
		return kernel.UUID{}, ErrServiceNotFound
	}

	inputs := cmd.Items()
	items := make([]order.Item, 0, len(inputs))
	for _, in := range inputs {
		item, err := order.NewItem(in.ProductID, in.ServiceID, in.Quantity)
		if err != nil {
			return kernel.UUID{}, err
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(kernel.NewUUID(), cmd.ResellerID(), cmd.CustomerID(), created, items, h.now().UTC())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return kernel.UUID{}, h.failed(ctx, "insert order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, h.failed(ctx, "commit", err)
	}

	h.logger.InfoContext(ctx, "order created",
		"orderId", o.ID().String(),
		"resellerId", o.ResellerID().String(),
		"items", len(items),
	)
	return o.ID(), nil
}

func (h *CreateOrderCommandHandler) failed(ctx context.Context, step string, cause error) error {
	h.logger.ErrorContext(ctx, "order creation failed", "step", step, "error", cause)
	return ErrOrderCreationFailed
}
