package http

import (
	"context"
	"log/slog"

	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/services"
	"orderservice/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var discardLogger = slog.New(slog.DiscardHandler)

type MockCreateOrderHandler struct {
	mock.Mock
}

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockUpdateOrderStatusHandler struct {
	mock.Mock
}

func (m *MockUpdateOrderStatusHandler) Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockListOrdersHandler struct {
	mock.Mock
}

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]ports.OrderSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OrderSummary), args.Error(1)
}

type MockGetOrderHandler struct {
	mock.Mock
}

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (ports.OrderDetail, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(ports.OrderDetail), args.Error(1)
}

type MockListOrdersByStatusHandler struct {
	mock.Mock
}

func (m *MockListOrdersByStatusHandler) Handle(
	ctx context.Context,
	query queries.ListOrdersByStatusQuery,
) ([]ports.OrderSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OrderSummary), args.Error(1)
}

type MockGetProfitByMonthHandler struct {
	mock.Mock
}

func (m *MockGetProfitByMonthHandler) Handle(
	ctx context.Context,
	query queries.GetProfitByMonthQuery,
) ([]services.ProfitByMonth, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.ProfitByMonth), args.Error(1)
}
