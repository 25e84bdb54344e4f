package queries

import (
	"cmp"
	"context"
	"slices"
)

type GetCustomerStatsQueryHandler struct {
	orders OrderLister
}

func NewGetCustomerStatsQueryHandler(orders OrderLister) GetCustomerStatsQueryHandler {
	return GetCustomerStatsQueryHandler{orders: orders}
}

// Handle relies on ListAll returning orders newest first: histories keep
// that order and customers with equal counts keep first-seen order.
func (h GetCustomerStatsQueryHandler) Handle(ctx context.Context, query GetCustomerStatsQuery) (CustomerStats, error) {
	if err := query.Validate(); err != nil {
		return CustomerStats{}, err
	}

	all, err := h.orders.ListAll(ctx)
	if err != nil {
		return CustomerStats{}, err
	}

	customers := make([]CustomerStat, 0)
	index := make(map[string]int)
	for _, o := range all {
		i, ok := index[o.Customer()]
		if !ok {
			i = len(customers)
			index[o.Customer()] = i
			customers = append(customers, CustomerStat{Name: o.Customer()})
		}

		c := &customers[i]
		c.OrderCount++
		c.History = append(c.History, o)
		if o.CreatedAt().After(c.LastOrderAt) {
			c.LastOrderAt = o.CreatedAt()
		}
	}

	slices.SortStableFunc(customers, func(a, b CustomerStat) int {
		return cmp.Compare(b.OrderCount, a.OrderCount)
	})

	stats := CustomerStats{Customers: customers}
	if len(customers) > 0 {
		stats.Top = customers[0].Name
	}
	return stats, nil
}
