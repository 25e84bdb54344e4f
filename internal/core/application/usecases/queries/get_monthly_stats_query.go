package queries

import (
	"errors"
	"time"

	"nailorders/internal/pkg/errs"
	"nailorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetMonthlyStatsQueryIsNotConstructed = errors.New(
	"GetMonthlyStatsQuery must be created via NewGetMonthlyStatsQuery constructor",
)

const (
	minStatsYear = 2000
	maxStatsYear = 9999
)

// GetMonthlyStatsQuery aggregates the orders created in one calendar month.
type GetMonthlyStatsQuery struct {
	year  int
	month time.Month

	guard guard.ConstructorGuard
}

func NewGetMonthlyStatsQuery(year, month int) (GetMonthlyStatsQuery, error) {
	var errList []error
	if year < minStatsYear || year > maxStatsYear {
		errList = append(errList, errs.NewValueIsOutOfRangeError("year", year, minStatsYear, maxStatsYear))
	}
	if month < 1 || month > 12 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("month", month, 1, 12))
	}
	if err := errors.Join(errList...); err != nil {
		return GetMonthlyStatsQuery{}, err
	}

	return GetMonthlyStatsQuery{
		year:  year,
		month: time.Month(month),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetMonthlyStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetMonthlyStatsQueryIsNotConstructed)
}

func (q GetMonthlyStatsQuery) Year() int {
	return q.year
}

func (q GetMonthlyStatsQuery) Month() time.Month {
	return q.month
}

// MonthlyStats is the statistics page read model.
//
// AverageOrderValue is Revenue / OrderCount rounded to whole units, zero for
// an empty month. Days has one entry per calendar day, empty days included.
type MonthlyStats struct {
	Year              int
	Month             time.Month
	OrderCount        int
	ShippedCount      int
	Revenue           decimal.Decimal
	AverageOrderValue decimal.Decimal
	Days              []DailyStat
	Shapes            []LabelCount
	Sizes             []LabelCount
}

type DailyStat struct {
	Date              time.Time
	OrderCount        int
	Revenue           decimal.Decimal
	CumulativeRevenue decimal.Decimal
}

// LabelCount is one slice of a distribution, keyed by display label.
type LabelCount struct {
	Label string
	Count int
}
