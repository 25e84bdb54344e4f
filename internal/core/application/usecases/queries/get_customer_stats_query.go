package queries

import (
	"errors"
	"time"

	"nailorders/internal/core/domain/model/order"
	"nailorders/internal/pkg/guard"
)

var ErrGetCustomerStatsQueryIsNotConstructed = errors.New(
	"GetCustomerStatsQuery must be created via NewGetCustomerStatsQuery constructor",
)

// GetCustomerStatsQuery groups every order by customer name.
type GetCustomerStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCustomerStatsQuery() GetCustomerStatsQuery {
	return GetCustomerStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCustomerStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerStatsQueryIsNotConstructed)
}

// CustomerStats lists customers by order count, most orders first. Top is
// the name of the first customer, empty when there are no orders.
type CustomerStats struct {
	Customers []CustomerStat
	Top       string
}

// CustomerStat holds one customer's orders, most recent first.
type CustomerStat struct {
	Name        string
	OrderCount  int
	LastOrderAt time.Time
	History     []*order.Order
}
