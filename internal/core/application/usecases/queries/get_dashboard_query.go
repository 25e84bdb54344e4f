package queries

import (
	"errors"
	"time"

	"nailorders/internal/core/domain/model/order"
	"nailorders/internal/pkg/errs"
	"nailorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

const (
	dashboardTrendDays   = 7
	dashboardRecentLimit = 6
)

// GetDashboardQuery summarizes the business as of a reference instant.
type GetDashboardQuery struct {
	now time.Time

	guard guard.ConstructorGuard
}

func NewGetDashboardQuery(now time.Time) (GetDashboardQuery, error) {
	if now.IsZero() {
		return GetDashboardQuery{}, errs.NewValueIsRequiredError("now")
	}
	return GetDashboardQuery{now: now, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

func (q GetDashboardQuery) Now() time.Time {
	return q.now
}

// Dashboard is the landing page read model.
//
// The month figures cover the current calendar month up to now. PendingCount
// counts this month's orders that are not shipped. Trend has one entry per day
// for the last seven days ending today, oldest first, and may reach into the
// previous month. Recent holds the newest orders regardless of month.
type Dashboard struct {
	MonthRevenue      decimal.Decimal
	MonthOrderCount   int
	AverageOrderValue decimal.Decimal
	PendingCount      int
	Trend             []DailyRevenue
	Recent            []*order.Order
}

type DailyRevenue struct {
	Date    time.Time
	Revenue decimal.Decimal
}
