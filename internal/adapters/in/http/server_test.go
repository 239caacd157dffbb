package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/domain/services"
	"orderservice/internal/core/ports"
	"orderservice/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	resellerID = kernel.MustUUIDFromString("5f0b7c8e-2d1a-4c3b-9e8f-7a6b5c4d3e2f")
	customerID = kernel.MustUUIDFromString("0e7d2c1b-6a5f-4e3d-8c2b-1a0f9e8d7c6b")
	productID  = kernel.MustUUIDFromString("9a8b7c6d-5e4f-4a3b-8c2d-1e0f2a3b4c5d")
	serviceID  = kernel.MustUUIDFromString("1c2d3e4f-5a6b-4c7d-8e9f-0a1b2c3d4e5f")
	orderID    = kernel.MustUUIDFromString("7b6a5c4d-3e2f-4a1b-9c8d-7e6f5a4b3c2d")
	statusID   = kernel.MustUUIDFromString("2a3b4c5d-6e7f-4081-92a3-b4c5d6e7f809")
)

type serverFixture struct {
	router             *echo.Echo
	createOrder        *MockCreateOrderHandler
	updateOrderStatus  *MockUpdateOrderStatusHandler
	listOrders         *MockListOrdersHandler
	getOrder           *MockGetOrderHandler
	listOrdersByStatus *MockListOrdersByStatusHandler
	getProfitByMonth   *MockGetProfitByMonthHandler
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	f := &serverFixture{
		createOrder:        &MockCreateOrderHandler{},
		updateOrderStatus:  &MockUpdateOrderStatusHandler{},
		listOrders:         &MockListOrdersHandler{},
		getOrder:           &MockGetOrderHandler{},
		listOrdersByStatus: &MockListOrdersByStatusHandler{},
		getProfitByMonth:   &MockGetProfitByMonthHandler{},
	}

	server := NewServer(Handlers{
		CreateOrder:        f.createOrder,
		UpdateOrderStatus:  f.updateOrderStatus,
		ListOrders:         f.listOrders,
		GetOrder:           f.getOrder,
		ListOrdersByStatus: f.listOrdersByStatus,
		GetProfitByMonth:   f.getProfitByMonth,
	}, discardLogger)

	router, err := NewRouter(server, discardLogger)
	require.NoError(t, err)
	f.router = router

	t.Cleanup(func() {
		f.createOrder.AssertExpectations(t)
		f.updateOrderStatus.AssertExpectations(t)
		f.listOrders.AssertExpectations(t)
		f.getOrder.AssertExpectations(t)
		f.listOrdersByStatus.AssertExpectations(t)
		f.getProfitByMonth.AssertExpectations(t)
	})

	return f
}

func (f *serverFixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func createOrderBody(quantity int) string {
	return fmt.Sprintf(`{"resellerId":%q,"customerId":%q,"items":[{"productId":%q,"serviceId":%q,"quantity":%d}]}`,
		resellerID, customerID, productID, serviceID, quantity)
}

func sampleSummary() ports.OrderSummary {
	return ports.OrderSummary{
		ID:          orderID,
		ResellerID:  resellerID,
		CustomerID:  customerID,
		StatusID:    statusID,
		StatusName:  "Created",
		ItemCount:   2,
		TotalCost:   decimal.RequireFromString("8.8"),
		TotalPrice:  decimal.RequireFromString("10.9"),
		CreatedDate: time.Date(2024, time.May, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestCreateOrder_Success(t *testing.T) {
	f := newServerFixture(t)
	f.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		items := cmd.Items()
		return cmd.ResellerID().IsEqual(resellerID) &&
			cmd.CustomerID().IsEqual(customerID) &&
			len(items) == 1 &&
			items[0].ProductID.IsEqual(productID) &&
			items[0].ServiceID.IsEqual(serviceID) &&
			items[0].Quantity == 3
	})).Return(orderID, nil).Once()

	rec := f.do(http.MethodPost, "/orders", createOrderBody(3))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/orders/"+orderID.String(), rec.Header().Get(echo.HeaderLocation))

	var body servers.CreateOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, orderID.Google(), body.OrderId)
	assert.NotEmpty(t, body.Message)
}

func TestCreateOrder_RejectedBeforeReachingHandler(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing reseller field",
			body: fmt.Sprintf(`{"customerId":%q,"items":[]}`, customerID),
		},
		{
			name: "nil reseller id",
			body: fmt.Sprintf(`{"resellerId":"00000000-0000-0000-0000-000000000000","customerId":%q,"items":[]}`, customerID),
		},
		{
			name: "empty items",
			body: fmt.Sprintf(`{"resellerId":%q,"customerId":%q,"items":[]}`, resellerID, customerID),
		},
		{
			name: "zero quantity",
			body: createOrderBody(0),
		},
		{
			name: "quantity above limit",
			body: createOrderBody(commands.MaxItemQuantity + 1),
		},
		{
			name: "malformed json",
			body: `{"resellerId":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture(t)

			rec := f.do(http.MethodPost, "/orders", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
			f.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateOrder_MapsUseCaseErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "unknown product", err: commands.ErrProductNotFound, wantCode: http.StatusNotFound},
		{name: "unknown service", err: commands.ErrServiceNotFound, wantCode: http.StatusNotFound},
		{name: "creation failed", err: commands.ErrOrderCreationFailed, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture(t)
			f.createOrder.On("Handle", mock.Anything, mock.Anything).Return(kernel.UUID{}, tt.err).Once()

			rec := f.do(http.MethodPost, "/orders", createOrderBody(1))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
		})
	}
}

func TestCreateOrder_InternalFailureHidesCause(t *testing.T) {
	f := newServerFixture(t)
	f.createOrder.On("Handle", mock.Anything, mock.Anything).
		Return(kernel.UUID{}, fmt.Errorf("%w: pq: connection refused", commands.ErrOrderCreationFailed)).Once()

	rec := f.do(http.MethodPost, "/orders", createOrderBody(1))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, internalErrorMessage, body.Message)
	assert.Nil(t, body.Details)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestUpdateOrderStatus_Success(t *testing.T) {
	f := newServerFixture(t)
	f.updateOrderStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOrderStatusCommand) bool {
		return cmd.OrderID().IsEqual(orderID) && cmd.StatusName() == "processing"
	})).Return(nil).Once()

	rec := f.do(http.MethodPatch, "/orders/"+orderID.String()+"/status", `{"statusName":"processing"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body servers.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Order status updated successfully to 'processing'", body.Message)
}

func TestUpdateOrderStatus_Errors(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		body     string
		err      error
		wantCode int
	}{
		{
			name:     "malformed order id",
			target:   "/orders/not-a-uuid/status",
			body:     `{"statusName":"Shipped"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "blank status name",
			target:   "/orders/" + orderID.String() + "/status",
			body:     `{"statusName":"   "}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown order",
			target:   "/orders/" + orderID.String() + "/status",
			body:     `{"statusName":"Shipped"}`,
			err:      commands.ErrOrderNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "unknown status",
			target:   "/orders/" + orderID.String() + "/status",
			body:     `{"statusName":"Teleported"}`,
			err:      commands.ErrStatusNotFound,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "update failed",
			target:   "/orders/" + orderID.String() + "/status",
			body:     `{"statusName":"Shipped"}`,
			err:      commands.ErrOrderStatusUpdateFailed,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture(t)
			if tt.err != nil {
				f.updateOrderStatus.On("Handle", mock.Anything, mock.Anything).Return(tt.err).Once()
			}

			rec := f.do(http.MethodPatch, tt.target, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestUpdateOrderStatus_ContractViolationDetailsAreOneLine(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodPatch, "/orders/"+orderID.String()+"/status", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	require.NotNil(t, body.Details)
	assert.Contains(t, *body.Details, "statusName")
	assert.NotContains(t, *body.Details, "\n")
	assert.NotContains(t, *body.Details, "Schema:")
	f.updateOrderStatus.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestListOrders(t *testing.T) {
	f := newServerFixture(t)
	f.listOrders.On("Handle", mock.Anything, queries.NewListOrdersQuery()).
		Return([]ports.OrderSummary{sampleSummary()}, nil).Once()

	rec := f.do(http.MethodGet, "/orders", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []servers.OrderSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, orderID.Google(), body[0].Id)
	assert.Equal(t, "Created", body[0].StatusName)
	assert.Equal(t, 2, body[0].ItemCount)
	assert.Equal(t, "8.80", body[0].TotalCost)
	assert.Equal(t, "10.90", body[0].TotalPrice)
}

func TestListOrders_EmptyIsArray(t *testing.T) {
	f := newServerFixture(t)
	f.listOrders.On("Handle", mock.Anything, mock.Anything).Return([]ports.OrderSummary{}, nil).Once()

	rec := f.do(http.MethodGet, "/orders", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetOrder(t *testing.T) {
	f := newServerFixture(t)
	detail := ports.OrderDetail{
		OrderSummary: sampleSummary(),
		Items: []ports.OrderLine{{
			ID:          kernel.NewUUID(),
			OrderID:     orderID,
			ProductID:   productID,
			ProductName: "Hosting",
			ServiceID:   serviceID,
			ServiceName: "Cloud",
			UnitCost:    decimal.RequireFromString("1.1"),
			UnitPrice:   decimal.RequireFromString("1.3"),
			TotalCost:   decimal.RequireFromString("2.2"),
			TotalPrice:  decimal.RequireFromString("2.6"),
			Quantity:    2,
		}},
	}
	f.getOrder.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderQuery) bool {
		return q.OrderID().IsEqual(orderID)
	})).Return(detail, nil).Once()

	rec := f.do(http.MethodGet, "/orders/"+orderID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body servers.OrderDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, orderID.Google(), body.Id)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Hosting", body.Items[0].ProductName)
	assert.Equal(t, "1.10", body.Items[0].UnitCost)
	assert.Equal(t, "2.60", body.Items[0].TotalPrice)
}

func TestGetOrder_NotFound(t *testing.T) {
	f := newServerFixture(t)
	f.getOrder.On("Handle", mock.Anything, mock.Anything).Return(ports.OrderDetail{}, queries.ErrOrderNotFound).Once()

	rec := f.do(http.MethodGet, "/orders/"+orderID.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decodeError(t, rec).Code)
}

func TestListOrdersByStatus(t *testing.T) {
	f := newServerFixture(t)
	f.listOrdersByStatus.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersByStatusQuery) bool {
		return q.StatusType() == order.InProgress
	})).Return([]ports.OrderSummary{sampleSummary()}, nil).Once()

	rec := f.do(http.MethodGet, "/orders/status/inprogress", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []servers.OrderSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 1)
}

func TestListOrdersByStatus_UnknownStatus(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodGet, "/orders/status/Teleported", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.listOrdersByStatus.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestGetProfitByMonth(t *testing.T) {
	f := newServerFixture(t)
	f.getProfitByMonth.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetProfitByMonthQuery) bool {
		year, hasYear := q.Year()
		month, hasMonth := q.Month()
		return hasYear && year == 2024 && hasMonth && month == 5
	})).Return([]services.ProfitByMonth{{
		Year:        2024,
		Month:       5,
		MonthName:   "May",
		TotalProfit: decimal.RequireFromString("0.2"),
		OrderCount:  1,
	}}, nil).Once()

	rec := f.do(http.MethodGet, "/orders/profit/monthly?year=2024&month=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"year":2024,"month":5,"monthName":"May","totalProfit":"0.20","orderCount":1}]`,
		rec.Body.String())
}

func TestGetProfitByMonth_NoFilters(t *testing.T) {
	f := newServerFixture(t)
	f.getProfitByMonth.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetProfitByMonthQuery) bool {
		return q.Window().Unbounded()
	})).Return([]services.ProfitByMonth{}, nil).Once()

	rec := f.do(http.MethodGet, "/orders/profit/monthly", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetProfitByMonth_InvalidParameters(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "month without year", query: "month=5"},
		{name: "month out of range", query: "year=2024&month=13"},
		{name: "year not a number", query: "year=abc"},
		{name: "year too early", query: "year=1900"},
		{name: "year too far ahead", query: fmt.Sprintf("year=%d", time.Now().Year()+2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture(t)

			rec := f.do(http.MethodGet, "/orders/profit/monthly?"+tt.query, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			f.getProfitByMonth.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestHealth(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestSwaggerDocument(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/orders/profit/monthly")
}

func TestUnknownRoute(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodGet, "/invoices", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decodeError(t, rec).Code)
}
