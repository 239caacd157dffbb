package orderrepo

import (
	"context"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/domain/services"
	"orderservice/internal/core/ports"
	"orderservice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// summarySelect aggregates line totals from current product pricing.
// Postgres numeric arithmetic is exact, so the sums match the per-line
// decimal math done for order details.
const summarySelect = `
	SELECT
		o.id,
		o.reseller_id,
		o.customer_id,
		o.status_id,
		s.name,
		COUNT(i.id),
		COALESCE(SUM(p.unit_cost * i.quantity), 0),
		COALESCE(SUM(p.unit_price * i.quantity), 0),
		o.created_at
	FROM orders o
	JOIN order_status s ON s.id = o.status_id
	LEFT JOIN order_item i ON i.order_id = o.id
	LEFT JOIN order_product p ON p.id = i.product_id
`

const summaryGroupOrder = `
	GROUP BY o.id, s.name
	ORDER BY o.created_at DESC, o.id
`

// GormOrderReadStore implements ports.OrderReadStore. It reads outside any
// unit of work.
type GormOrderReadStore struct {
	db *gorm.DB
}

// NewGormOrderReadStore creates a read store over db.
func NewGormOrderReadStore(db *gorm.DB) *GormOrderReadStore {
	return &GormOrderReadStore{db: db}
}

// ListOrders returns every order, newest first.
func (s *GormOrderReadStore) ListOrders(ctx context.Context) ([]ports.OrderSummary, error) {
	return s.querySummaries(ctx, summarySelect+summaryGroupOrder)
}

// ListOrdersByStatus returns the orders referencing statusID, newest first.
func (s *GormOrderReadStore) ListOrdersByStatus(ctx context.Context, statusID kernel.UUID) ([]ports.OrderSummary, error) {
	return s.querySummaries(ctx, summarySelect+"WHERE o.status_id = ?"+summaryGroupOrder, statusID.Google())
}

// GetOrder returns the order with its lines ordered by product name.
func (s *GormOrderReadStore) GetOrder(ctx context.Context, id kernel.UUID) (ports.OrderDetail, error) {
	summaries, err := s.querySummaries(ctx, summarySelect+"WHERE o.id = ?"+summaryGroupOrder, id.Google())
	if err != nil {
		return ports.OrderDetail{}, err
	}
	if len(summaries) == 0 {
		return ports.OrderDetail{}, errs.NewObjectNotFoundError("orderId", id.String())
	}

	lines, err := s.queryLines(ctx, id)
	if err != nil {
		return ports.OrderDetail{}, err
	}

	return ports.OrderDetail{OrderSummary: summaries[0], Items: lines}, nil
}

// ListCompletedOrders loads completed orders in the window with their items
// and products preloaded. Grouping happens in the caller.
func (s *GormOrderReadStore) ListCompletedOrders(
	ctx context.Context,
	window ports.DateRange,
) ([]services.CompletedOrder, error) {
	query := s.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Joins("JOIN order_status ON order_status.id = orders.status_id").
		Where("LOWER(order_status.name) = LOWER(?)", order.Completed.String()).
		Preload("Items.Product")

	if !window.Unbounded() {
		query = query.Scopes(createdWithin(window))
	}

	var dtos []OrderDTO
	if err := query.Order("orders.created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	result := make([]services.CompletedOrder, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromGoogle(dto.ID)
		if err != nil {
			return nil, err
		}

		lines := make([]services.PricedLine, 0, len(dto.Items))
		for _, item := range dto.Items {
			if item.Product == nil {
				continue
			}
			lines = append(lines, services.PricedLine{
				UnitCost:  item.Product.UnitCost,
				UnitPrice: item.Product.UnitPrice,
				Quantity:  item.Quantity,
			})
		}

		result = append(result, services.CompletedOrder{
			ID:          id,
			CreatedDate: dto.CreatedAt.UTC(),
			Lines:       lines,
		})
	}

	return result, nil
}

func (s *GormOrderReadStore) querySummaries(ctx context.Context, query string, args ...any) ([]ports.OrderSummary, error) {
	rows, err := s.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]ports.OrderSummary, 0)
	for rows.Next() {
		var (
			id, resellerID, customerID, statusID uuid.UUID
			row                                  ports.OrderSummary
			created                              time.Time
		)

		err = rows.Scan(
			&id,
			&resellerID,
			&customerID,
			&statusID,
			&row.StatusName,
			&row.ItemCount,
			&row.TotalCost,
			&row.TotalPrice,
			&created,
		)
		if err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if row.ResellerID, err = kernel.UUIDFromGoogle(resellerID); err != nil {
			return nil, err
		}
		if row.CustomerID, err = kernel.UUIDFromGoogle(customerID); err != nil {
			return nil, err
		}
		if row.StatusID, err = kernel.UUIDFromGoogle(statusID); err != nil {
			return nil, err
		}
		row.CreatedDate = created.UTC()

		summaries = append(summaries, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func (s *GormOrderReadStore) queryLines(ctx context.Context, orderID kernel.UUID) ([]ports.OrderLine, error) {
	rows, err := s.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.order_id,
			i.product_id,
			p.name,
			i.service_id,
			sv.name,
			p.unit_cost,
			p.unit_price,
			i.quantity
		FROM order_item i
		JOIN order_product p ON p.id = i.product_id
		JOIN order_service sv ON sv.id = i.service_id
		WHERE i.order_id = ?
		ORDER BY p.name, i.id
	`, orderID.Google()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]ports.OrderLine, 0)
	for rows.Next() {
		var (
			id, ownerID, productID, serviceID uuid.UUID
			line                              ports.OrderLine
		)

		err = rows.Scan(
			&id,
			&ownerID,
			&productID,
			&line.ProductName,
			&serviceID,
			&line.ServiceName,
			&line.UnitCost,
			&line.UnitPrice,
			&line.Quantity,
		)
		if err != nil {
			return nil, err
		}

		if line.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if line.OrderID, err = kernel.UUIDFromGoogle(ownerID); err != nil {
			return nil, err
		}
		if line.ProductID, err = kernel.UUIDFromGoogle(productID); err != nil {
			return nil, err
		}
		if line.ServiceID, err = kernel.UUIDFromGoogle(serviceID); err != nil {
			return nil, err
		}

		qty := decimal.NewFromInt(int64(line.Quantity))
		line.TotalCost = line.UnitCost.Mul(qty)
		line.TotalPrice = line.UnitPrice.Mul(qty)

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// createdWithin restricts orders to window. A zero bound adds no condition.
func createdWithin(window ports.DateRange) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !window.From.IsZero() {
			db = db.Where("orders.created_at >= ?", window.From)
		}
		if !window.To.IsZero() {
			db = db.Where("orders.created_at < ?", window.To)
		}
		return db
	}
}
