// Package servers holds the HTTP contract of the order service: wire types,
// the server interface, echo route registration and the embedded OpenAPI
// document they are derived from (openapi.yml).
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateOrderItem defines model for CreateOrderItem.
type CreateOrderItem struct {
	ProductId openapi_types.UUID `json:"productId"`
	Quantity  int                `json:"quantity"`
	ServiceId openapi_types.UUID `json:"serviceId"`
}

// CreateOrderRequest defines model for CreateOrderRequest.
type CreateOrderRequest struct {
	CustomerId openapi_types.UUID `json:"customerId"`
	Items      []CreateOrderItem  `json:"items"`
	ResellerId openapi_types.UUID `json:"resellerId"`
}

// CreateOrderResponse defines model for CreateOrderResponse.
type CreateOrderResponse struct {
	Message string             `json:"message"`
	OrderId openapi_types.UUID `json:"orderId"`
}

// Error defines model for Error.
type Error struct {
	Code    int     `json:"code"`
	Details *string `json:"details,omitempty"`
	Message string  `json:"message"`
}

// MessageResponse defines model for MessageResponse.
type MessageResponse struct {
	Message string `json:"message"`
}

// Money Decimal amount with two fraction digits
type Money = string

// OrderDetail defines model for OrderDetail.
type OrderDetail struct {
	CreatedDate time.Time          `json:"createdDate"`
	CustomerId  openapi_types.UUID `json:"customerId"`
	Id          openapi_types.UUID `json:"id"`
	ItemCount   int                `json:"itemCount"`
	Items       []OrderItem        `json:"items"`
	ResellerId  openapi_types.UUID `json:"resellerId"`
	StatusId    openapi_types.UUID `json:"statusId"`
	StatusName  string             `json:"statusName"`
	TotalCost   Money              `json:"totalCost"`
	TotalPrice  Money              `json:"totalPrice"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	Id          openapi_types.UUID `json:"id"`
	OrderId     openapi_types.UUID `json:"orderId"`
	ProductId   openapi_types.UUID `json:"productId"`
	ProductName string             `json:"productName"`
	Quantity    int                `json:"quantity"`
	ServiceId   openapi_types.UUID `json:"serviceId"`
	ServiceName string             `json:"serviceName"`
	TotalCost   Money              `json:"totalCost"`
	TotalPrice  Money              `json:"totalPrice"`
	UnitCost    Money              `json:"unitCost"`
	UnitPrice   Money              `json:"unitPrice"`
}

// OrderSummary defines model for OrderSummary.
type OrderSummary struct {
	CreatedDate time.Time          `json:"createdDate"`
	CustomerId  openapi_types.UUID `json:"customerId"`
	Id          openapi_types.UUID `json:"id"`
	ItemCount   int                `json:"itemCount"`
	ResellerId  openapi_types.UUID `json:"resellerId"`
	StatusId    openapi_types.UUID `json:"statusId"`
	StatusName  string             `json:"statusName"`
	TotalCost   Money              `json:"totalCost"`
	TotalPrice  Money              `json:"totalPrice"`
}

// ProfitByMonth defines model for ProfitByMonth.
type ProfitByMonth struct {
	Month       int    `json:"month"`
	MonthName   string `json:"monthName"`
	OrderCount  int    `json:"orderCount"`
	TotalProfit Money  `json:"totalProfit"`
	Year        int    `json:"year"`
}

// UpdateOrderStatusRequest defines model for UpdateOrderStatusRequest.
type UpdateOrderStatusRequest struct {
	StatusName string `json:"statusName"`
}

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// GetProfitByMonthParams defines parameters for GetProfitByMonth.
type GetProfitByMonthParams struct {
	Year *int `form:"year,omitempty" json:"year,omitempty"`

	// Month Requires year
	Month *int `form:"month,omitempty" json:"month,omitempty"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = CreateOrderRequest

// UpdateOrderStatusJSONRequestBody defines body for UpdateOrderStatus for application/json ContentType.
type UpdateOrderStatusJSONRequestBody = UpdateOrderStatusRequest
