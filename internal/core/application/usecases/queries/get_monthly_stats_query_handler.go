package queries

import (
	"cmp"
	"context"
	"slices"
	"time"

	"nailorders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// GetMonthlyStatsQueryHandler computes MonthlyStats in a fixed time zone, so
// an order placed just after local midnight counts for the local day.
type GetMonthlyStatsQueryHandler struct {
	orders OrderLister
	loc    *time.Location
}

func NewGetMonthlyStatsQueryHandler(orders OrderLister, loc *time.Location) GetMonthlyStatsQueryHandler {
	if loc == nil {
		loc = time.UTC
	}
	return GetMonthlyStatsQueryHandler{orders: orders, loc: loc}
}

func (h GetMonthlyStatsQueryHandler) Handle(ctx context.Context, query GetMonthlyStatsQuery) (MonthlyStats, error) {
	if err := query.Validate(); err != nil {
		return MonthlyStats{}, err
	}

	all, err := h.orders.ListAll(ctx)
	if err != nil {
		return MonthlyStats{}, err
	}

	start := time.Date(query.Year(), query.Month(), 1, 0, 0, 0, 0, h.loc)
	end := start.AddDate(0, 1, 0)
	daysInMonth := end.AddDate(0, 0, -1).Day()

	stats := MonthlyStats{
		Year:              query.Year(),
		Month:             query.Month(),
		Revenue:           decimal.Zero,
		AverageOrderValue: decimal.Zero,
		Days:              make([]DailyStat, daysInMonth),
	}
	for i := range stats.Days {
		stats.Days[i] = DailyStat{
			Date:              start.AddDate(0, 0, i),
			Revenue:           decimal.Zero,
			CumulativeRevenue: decimal.Zero,
		}
	}

	shapes := newDistribution()
	sizes := newDistribution()
	for _, o := range all {
		created := o.CreatedAt().In(h.loc)
		if created.Before(start) || !created.Before(end) {
			continue
		}

		stats.OrderCount++
		if o.Status() == order.Shipped {
			stats.ShippedCount++
		}
		stats.Revenue = stats.Revenue.Add(o.Price())

		day := &stats.Days[created.Day()-1]
		day.OrderCount++
		day.Revenue = day.Revenue.Add(o.Price())

		shapes.add(o.Shape().Label())
		sizes.add(o.Size().Label())
	}

	running := decimal.Zero
	for i := range stats.Days {
		running = running.Add(stats.Days[i].Revenue)
		stats.Days[i].CumulativeRevenue = running
	}

	if stats.OrderCount > 0 {
		stats.AverageOrderValue = stats.Revenue.
			Div(decimal.NewFromInt(int64(stats.OrderCount))).
			Round(0)
	}
	stats.Shapes = shapes.sorted()
	stats.Sizes = sizes.sorted()

	return stats, nil
}

// distribution counts labels and keeps first-seen order for ties.
type distribution struct {
	counts []LabelCount
	index  map[string]int
}

func newDistribution() *distribution {
	return &distribution{index: make(map[string]int)}
}

func (d *distribution) add(label string) {
	if i, ok := d.index[label]; ok {
		d.counts[i].Count++
		return
	}
	d.index[label] = len(d.counts)
	d.counts = append(d.counts, LabelCount{Label: label, Count: 1})
}

func (d *distribution) sorted() []LabelCount {
	out := slices.Clone(d.counts)
	if out == nil {
		out = []LabelCount{}
	}
	slices.SortStableFunc(out, func(a, b LabelCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return out
}
