package services

import (
	"cmp"
	"slices"
	"time"

	"orderservice/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CompletedOrder is one completed order with the pricing of each line taken
// from its product at read time.
type CompletedOrder struct {
	ID          kernel.UUID
	CreatedDate time.Time
	Lines       []PricedLine
}

// PricedLine is one order line with its product pricing.
type PricedLine struct {
	UnitCost  decimal.Decimal
	UnitPrice decimal.Decimal
	Quantity  int
}

// Profit is (UnitPrice - UnitCost) * Quantity.
func (l PricedLine) Profit() decimal.Decimal {
	return l.UnitPrice.Sub(l.UnitCost).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ProfitByMonth summarizes the completed orders created in one calendar month.
type ProfitByMonth struct {
	Year        int
	Month       int
	MonthName   string
	TotalProfit decimal.Decimal
	OrderCount  int
}

type monthKey struct {
	year  int
	month time.Month
}

// ProfitAggregator computes monthly profit in application memory so the
// result does not depend on how a storage backend sums decimals.
//
// Example:
//
//	rows := services.NewProfitAggregator().Aggregate(completedOrders)
//	for _, r := range rows {
//	    fmt.Printf("%d-%02d %s: %s over %d orders\n", r.Year, r.Month, r.MonthName, r.TotalProfit, r.OrderCount)
//	}
type ProfitAggregator struct{}

// NewProfitAggregator creates a stateless aggregator.
func NewProfitAggregator() ProfitAggregator {
	return ProfitAggregator{}
}

// Aggregate groups orders by the UTC year and month of their creation time
// and returns one row per group ordered by year, then month, descending.
// Month names are the English names from time.Month, independent of locale.
func (ProfitAggregator) Aggregate(orders []CompletedOrder) []ProfitByMonth {
	groups := make(map[monthKey]*ProfitByMonth)

	for _, o := range orders {
		created := o.CreatedDate.UTC()
		key := monthKey{year: created.Year(), month: created.Month()}

		row, ok := groups[key]
		if !ok {
			row = &ProfitByMonth{
				Year:        key.year,
				Month:       int(key.month),
				MonthName:   key.month.String(),
				TotalProfit: decimal.Zero,
			}
			groups[key] = row
		}

		for _, line := range o.Lines {
			row.TotalProfit = row.TotalProfit.Add(line.Profit())
		}
		row.OrderCount++
	}

	result := make([]ProfitByMonth, 0, len(groups))
	for _, row := range groups {
		result = append(result, *row)
	}

	slices.SortFunc(result, func(a, b ProfitByMonth) int {
		if c := cmp.Compare(b.Year, a.Year); c != 0 {
			return c
		}
		return cmp.Compare(b.Month, a.Month)
	})

	return result
}
