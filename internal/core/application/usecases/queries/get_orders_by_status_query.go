package queries

import (
	"errors"

	"nailorders/internal/core/domain/model/order"
	"nailorders/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery lists the orders of one tab, newest first.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery(order.ParseStatus("ordered"))
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
//	fmt.Printf("%d orders (cached: %t)\n", len(resp.Orders), resp.Cached)
type GetOrdersByStatusQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// GetOrdersByStatusQueryResponse carries the freshness flag of the listing.
type GetOrdersByStatusQueryResponse struct {
	Orders []*order.Order
	Cached bool
}
