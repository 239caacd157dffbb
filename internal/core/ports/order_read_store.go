package ports

import (
	"context"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// OrderReadStore serves the read side. Monetary totals are derived from
// current product pricing at read time.
type OrderReadStore interface {
	// ListOrders returns every order, most recent first.
	ListOrders(ctx context.Context) ([]OrderSummary, error)

	// ListOrdersByStatus returns the orders referencing the status row, most recent first.
	ListOrdersByStatus(ctx context.Context, statusID kernel.UUID) ([]OrderSummary, error)

	// GetOrder returns an errs.ObjectNotFoundError when no order has the given id.
	GetOrder(ctx context.Context, id kernel.UUID) (OrderDetail, error)

	// ListCompletedOrders returns the orders in the Completed status whose
	// creation time falls within window, with per-line product pricing.
	ListCompletedOrders(ctx context.Context, window DateRange) ([]services.CompletedOrder, error)
}

// DateRange is the half-open interval [From, To). A zero bound is open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Unbounded reports whether neither bound is set.
func (r DateRange) Unbounded() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// OrderSummary is one order with its item count and totals.
type OrderSummary struct {
	ID          kernel.UUID
	ResellerID  kernel.UUID
	CustomerID  kernel.UUID
	StatusID    kernel.UUID
	StatusName  string
	ItemCount   int
	TotalCost   decimal.Decimal
	TotalPrice  decimal.Decimal
	CreatedDate time.Time
}

// OrderDetail is an order summary with its lines.
type OrderDetail struct {
	OrderSummary
	Items []OrderLine
}

// OrderLine is one item priced from its product.
type OrderLine struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	ServiceID   kernel.UUID
	ServiceName string
	UnitCost    decimal.Decimal
	UnitPrice   decimal.Decimal
	TotalCost   decimal.Decimal
	TotalPrice  decimal.Decimal
	Quantity    int
}
