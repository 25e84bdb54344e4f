package queries

import (
	"context"
	"time"

	"nailorders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type GetDashboardQueryHandler struct {
	orders OrderLister
	loc    *time.Location
}

func NewGetDashboardQueryHandler(orders OrderLister, loc *time.Location) GetDashboardQueryHandler {
	if loc == nil {
		loc = time.UTC
	}
	return GetDashboardQueryHandler{orders: orders, loc: loc}
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (Dashboard, error) {
	if err := query.Validate(); err != nil {
		return Dashboard{}, err
	}

	all, err := h.orders.ListAll(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	now := query.Now().In(h.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, h.loc)
	trendStart := today.AddDate(0, 0, -(dashboardTrendDays - 1))
	tomorrow := today.AddDate(0, 0, 1)

	d := Dashboard{
		MonthRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		Trend:             make([]DailyRevenue, dashboardTrendDays),
		Recent:            make([]*order.Order, 0, dashboardRecentLimit),
	}
	for i := range d.Trend {
		d.Trend[i] = DailyRevenue{Date: trendStart.AddDate(0, 0, i), Revenue: decimal.Zero}
	}

	// ListAll is newest first.
	for _, o := range all {
		if len(d.Recent) < dashboardRecentLimit {
			d.Recent = append(d.Recent, o)
		}

		created := o.CreatedAt().In(h.loc)
		if !created.Before(monthStart) && created.Before(tomorrow) {
			d.MonthOrderCount++
			d.MonthRevenue = d.MonthRevenue.Add(o.Price())
			if o.Status() != order.Shipped {
				d.PendingCount++
			}
		}
		if !created.Before(trendStart) && created.Before(tomorrow) {
			day := time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, h.loc)
			i := dayIndex(trendStart, day)
			d.Trend[i].Revenue = d.Trend[i].Revenue.Add(o.Price())
		}
	}

	if d.MonthOrderCount > 0 {
		d.AverageOrderValue = d.MonthRevenue.
			Div(decimal.NewFromInt(int64(d.MonthOrderCount))).
			Round(0)
	}

	return d, nil
}

// dayIndex counts calendar days, so a DST shift inside the window does not
// move an order to the neighbouring day.
func dayIndex(from, day time.Time) int {
	i := 0
	for cur := from; cur.Before(day); cur = cur.AddDate(0, 0, 1) {
		i++
	}
	return i
}
