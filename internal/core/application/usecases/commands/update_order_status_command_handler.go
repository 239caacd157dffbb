package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"
)

var (
	ErrOrderNotFound           = errs.NewObjectNotFoundError("orderId", "requested order")
	ErrStatusNotFound          = errs.NewValueIsInvalidError("statusName")
	ErrOrderStatusUpdateFailed = errs.NewOperationFailedError("update order status")
)

// UpdateOrderStatusCommandHandler applies status transitions. Any catalog
// status may follow any other.
//
// Example:
//
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, "processing")
//	switch err := handler.Handle(ctx, cmd); {
//	case errors.Is(err, ErrOrderNotFound):
//	    // 404
//	case errors.Is(err, ErrStatusNotFound):
//	    // 400
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler that opens one unit of work per command.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory, logger *slog.Logger) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "UpdateOrderStatusCommandHandler"),
	}
}

// Handle looks the order up first, then resolves the status name, so an
// unknown order is reported as ErrOrderNotFound even when the name is also bad.
// The store rejects the write if the order changed since it was read.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return h.failed(ctx, cmd, "begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errs.IsNotFound(err) {
			return ErrOrderNotFound
		}
		return h.failed(ctx, cmd, "load order", err)
	}

	statusType, err := order.ParseStatusType(cmd.StatusName())
	if err != nil {
		return statusNotFound(err)
	}

	status, err := uow.CatalogRepository().GetStatus(ctx, statusType)
	if err != nil {
		if errs.IsNotFound(err) {
			return ErrStatusNotFound
		}
		return h.failed(ctx, cmd, "resolve status", err)
	}

	if err = o.ChangeStatus(status); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, o); err != nil {
		return h.failed(ctx, cmd, "update status", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return h.failed(ctx, cmd, "commit", err)
	}

	h.logger.InfoContext(ctx, "order status updated",
		"orderId", cmd.OrderID().String(),
		"status", status.Name(),
	)
	return nil
}

func (h *UpdateOrderStatusCommandHandler) failed(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
	step string,
	cause error,
) error {
	h.logger.ErrorContext(ctx, "order status update failed",
		"orderId", cmd.OrderID().String(),
		"step", step,
		"error", cause,
	)
	return ErrOrderStatusUpdateFailed
}

// statusNotFound keeps ErrStatusNotFound as the identity and carries the
// parse failure, which lists the accepted names.
func statusNotFound(parseErr error) error {
	cause := parseErr
	var invalid *errs.ValueIsInvalidError
	if errors.As(parseErr, &invalid) && invalid.Cause != nil {
		cause = invalid.Cause
	}
	return fmt.Errorf("%w: %w", ErrStatusNotFound, cause)
}
