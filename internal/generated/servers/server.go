package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List all orders, most recent first
	// (GET /orders)
	ListOrders(ctx echo.Context) error
	// Create an order in the Created status
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// Profit of completed orders grouped by creation month
	// (GET /orders/profit/monthly)
	GetProfitByMonth(ctx echo.Context, params GetProfitByMonthParams) error
	// List the orders currently in a status
	// (GET /orders/status/{statusName})
	ListOrdersByStatus(ctx echo.Context, statusName string) error
	// Get one order with its items
	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error
	// Move an order to another status
	// (PATCH /orders/{orderId}/status)
	UpdateOrderStatus(ctx echo.Context, orderId OrderId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	return w.Handler.ListOrders(ctx)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// GetProfitByMonth converts echo context to params.
func (w *ServerInterfaceWrapper) GetProfitByMonth(ctx echo.Context) error {
	var err error

	var params GetProfitByMonthParams

	err = runtime.BindQueryParameter("form", true, false, "year", ctx.QueryParams(), &params.Year)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter year: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "month", ctx.QueryParams(), &params.Month)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter month: %s", err))
	}

	return w.Handler.GetProfitByMonth(ctx, params)
}

// ListOrdersByStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrdersByStatus(ctx echo.Context) error {
	var err error
	var statusName string

	err = runtime.BindStyledParameterWithOptions("simple", "statusName", ctx.Param("statusName"), &statusName,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter statusName: %s", err))
	}

	return w.Handler.ListOrdersByStatus(ctx, statusName)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	return w.Handler.GetOrder(ctx, orderId)
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	var err error
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	return w.Handler.UpdateOrderStatus(ctx, orderId)
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/profit/monthly", wrapper.GetProfitByMonth)
	router.GET(baseURL+"/orders/status/:statusName", wrapper.ListOrdersByStatus)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.PATCH(baseURL+"/orders/:orderId/status", wrapper.UpdateOrderStatus)
}
