package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/services"
	"orderservice/internal/core/ports"
	"orderservice/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateOrderHandler creates orders.
type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.UUID, error)
}

// UpdateOrderStatusHandler changes the status of an order.
type UpdateOrderStatusHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error
}

// ListOrdersHandler lists every order.
type ListOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) ([]ports.OrderSummary, error)
}

// GetOrderHandler loads one order with its lines.
type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (ports.OrderDetail, error)
}

// ListOrdersByStatusHandler lists the orders in one status.
type ListOrdersByStatusHandler interface {
	Handle(ctx context.Context, query queries.ListOrdersByStatusQuery) ([]ports.OrderSummary, error)
}

// GetProfitByMonthHandler reports monthly profit of completed orders.
type GetProfitByMonthHandler interface {
	Handle(ctx context.Context, query queries.GetProfitByMonthQuery) ([]services.ProfitByMonth, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder        CreateOrderHandler
	UpdateOrderStatus  UpdateOrderStatusHandler
	ListOrders         ListOrdersHandler
	GetOrder           GetOrderHandler
	ListOrdersByStatus ListOrdersByStatusHandler
	GetProfitByMonth   GetProfitByMonthHandler
}

// Server implements servers.ServerInterface on top of the order use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
	now      func() time.Time
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
		now:      time.Now,
	}
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request servers.CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	items := make([]commands.OrderItemInput, len(request.Items))
	for i, item := range request.Items {
		items[i] = commands.OrderItemInput{
			ProductID: fromAPIID(item.ProductId),
			ServiceID: fromAPIID(item.ServiceId),
			Quantity:  item.Quantity,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(fromAPIID(request.ResellerId), fromAPIID(request.CustomerId), items)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	orderID, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/orders/"+orderID.String())
	return ctx.JSON(http.StatusCreated, servers.CreateOrderResponse{
		OrderId: orderID.Google(),
		Message: "Order created successfully",
	})
}

// UpdateOrderStatus handles PATCH /orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	var request servers.UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(fromAPIID(orderId), request.StatusName)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err := s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.MessageResponse{
		Message: fmt.Sprintf("Order status updated successfully to '%s'", strings.TrimSpace(request.StatusName)),
	})
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	summaries, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPISummaries(summaries))
}

// GetOrder handles GET /orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	query, err := queries.NewGetOrderQuery(fromAPIID(orderId))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	detail, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIDetail(detail))
}

// ListOrdersByStatus handles GET /orders/status/{statusName}.
func (s *Server) ListOrdersByStatus(ctx echo.Context, statusName string) error {
	query, err := queries.NewListOrdersByStatusQuery(statusName)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	summaries, err := s.handlers.ListOrdersByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPISummaries(summaries))
}

// GetProfitByMonth handles GET /orders/profit/monthly.
func (s *Server) GetProfitByMonth(ctx echo.Context, params servers.GetProfitByMonthParams) error {
	query, err := queries.NewGetProfitByMonthQuery(params.Year, params.Month, s.now())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	rows, err := s.handlers.GetProfitByMonth.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIProfit(rows))
}
