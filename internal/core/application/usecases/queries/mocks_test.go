package queries_test

import (
	"context"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/domain/services"
	"orderservice/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderReadStore struct{ mock.Mock }

func (m *MockOrderReadStore) ListOrders(ctx context.Context) ([]ports.OrderSummary, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]ports.OrderSummary)
	return orders, args.Error(1)
}

func (m *MockOrderReadStore) ListOrdersByStatus(ctx context.Context, statusID kernel.UUID) ([]ports.OrderSummary, error) {
	args := m.Called(ctx, statusID)
	orders, _ := args.Get(0).([]ports.OrderSummary)
	return orders, args.Error(1)
}

func (m *MockOrderReadStore) GetOrder(ctx context.Context, id kernel.UUID) (ports.OrderDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.OrderDetail), args.Error(1)
}

func (m *MockOrderReadStore) ListCompletedOrders(
	ctx context.Context,
	window ports.DateRange,
) ([]services.CompletedOrder, error) {
	args := m.Called(ctx, window)
	orders, _ := args.Get(0).([]services.CompletedOrder)
	return orders, args.Error(1)
}

type MockStatusReader struct{ mock.Mock }

func (m *MockStatusReader) GetStatus(ctx context.Context, statusType order.StatusType) (order.Status, error) {
	args := m.Called(ctx, statusType)
	return args.Get(0).(order.Status), args.Error(1)
}
