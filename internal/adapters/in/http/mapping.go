package http

import (
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/services"
	"orderservice/internal/core/ports"
	"orderservice/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fromAPIID maps the nil UUID to the zero kernel.UUID, which the command and
// query constructors reject with a field-specific error.
func fromAPIID(id uuid.UUID) kernel.UUID {
	u, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return kernel.UUID{}
	}
	return u
}

func money(d decimal.Decimal) servers.Money {
	return d.StringFixed(2)
}

func toAPISummary(s ports.OrderSummary) servers.OrderSummary {
	return servers.OrderSummary{
		Id:          s.ID.Google(),
		ResellerId:  s.ResellerID.Google(),
		CustomerId:  s.CustomerID.Google(),
		StatusId:    s.StatusID.Google(),
		StatusName:  s.StatusName,
		ItemCount:   s.ItemCount,
		TotalCost:   money(s.TotalCost),
		TotalPrice:  money(s.TotalPrice),
		CreatedDate: s.CreatedDate.UTC(),
	}
}

func toAPISummaries(summaries []ports.OrderSummary) []servers.OrderSummary {
	response := make([]servers.OrderSummary, len(summaries))
	for i, s := range summaries {
		response[i] = toAPISummary(s)
	}
	return response
}

func toAPIDetail(d ports.OrderDetail) servers.OrderDetail {
	items := make([]servers.OrderItem, len(d.Items))
	for i, line := range d.Items {
		items[i] = servers.OrderItem{
			Id:          line.ID.Google(),
			OrderId:     line.OrderID.Google(),
			ProductId:   line.ProductID.Google(),
			ProductName: line.ProductName,
			ServiceId:   line.ServiceID.Google(),
			ServiceName: line.ServiceName,
			UnitCost:    money(line.UnitCost),
			UnitPrice:   money(line.UnitPrice),
			TotalCost:   money(line.TotalCost),
			TotalPrice:  money(line.TotalPrice),
			Quantity:    line.Quantity,
		}
	}

	summary := toAPISummary(d.OrderSummary)
	return servers.OrderDetail{
		Id:          summary.Id,
		ResellerId:  summary.ResellerId,
		CustomerId:  summary.CustomerId,
		StatusId:    summary.StatusId,
		StatusName:  summary.StatusName,
		ItemCount:   summary.ItemCount,
		TotalCost:   summary.TotalCost,
		TotalPrice:  summary.TotalPrice,
		CreatedDate: summary.CreatedDate,
		Items:       items,
	}
}

func toAPIProfit(rows []services.ProfitByMonth) []servers.ProfitByMonth {
	response := make([]servers.ProfitByMonth, len(rows))
	for i, r := range rows {
		response[i] = servers.ProfitByMonth{
			Year:        r.Year,
			Month:       r.Month,
			MonthName:   r.MonthName,
			TotalProfit: money(r.TotalProfit),
			OrderCount:  r.OrderCount,
		}
	}
	return response
}
