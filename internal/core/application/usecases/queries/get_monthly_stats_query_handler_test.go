package queries_test

import (
	"errors"
	"testing"
	"time"

	"nailorders/internal/core/application/usecases/queries"
	"nailorders/internal/core/domain/model/order"
	"nailorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetMonthlyStatsQuery(t *testing.T) {
	_, err := queries.NewGetMonthlyStatsQuery(2025, 13)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewGetMonthlyStatsQuery(1999, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "year")
	assert.Contains(t, err.Error(), "month")

	q, err := queries.NewGetMonthlyStatsQuery(2025, 2)
	require.NoError(t, err)
	assert.Equal(t, time.February, q.Month())
}

func TestGetMonthlyStatsQueryHandler_Handle(t *testing.T) {
	taipei := time.FixedZone("UTC+8", 8*60*60)

	t.Run("aggregates the month in the configured zone", func(t *testing.T) {
		ctx := t.Context()
		orders := []*order.Order{
			// 2025-02-28 17:00 UTC is 2025-03-01 01:00 local.
			buildOrder(t, orderSpec{id: "edge", price: 1000, shape: order.ShapeAlmond, size: order.SizeS,
				created: time.Date(2025, 2, 28, 17, 0, 0, 0, time.UTC)}),
			buildOrder(t, orderSpec{id: "mid", price: 1500, shape: order.ShapeAlmond, size: order.SizeM,
				status: order.Shipped, created: time.Date(2025, 3, 15, 4, 0, 0, 0, time.UTC)}),
			buildOrder(t, orderSpec{id: "same-day", price: 501, shape: order.ShapeOval, size: order.SizeM,
				created: time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)}),
			// 2025-03-31 16:30 UTC is already April locally.
			buildOrder(t, orderSpec{id: "april", price: 9999,
				created: time.Date(2025, 3, 31, 16, 30, 0, 0, time.UTC)}),
		}
		lister := new(MockOrderLister)
		lister.On("ListAll", ctx).Return(orders, nil).Once()

		query, err := queries.NewGetMonthlyStatsQuery(2025, 3)
		require.NoError(t, err)
		stats, err := queries.NewGetMonthlyStatsQueryHandler(lister, taipei).Handle(ctx, query)
		require.NoError(t, err)

		assert.Equal(t, 3, stats.OrderCount)
		assert.Equal(t, 1, stats.ShippedCount)
		assert.True(t, decimal.NewFromInt(3001).Equal(stats.Revenue), stats.Revenue.String())
		assert.True(t, decimal.NewFromInt(1000).Equal(stats.AverageOrderValue), stats.AverageOrderValue.String())

		require.Len(t, stats.Days, 31)
		assert.Equal(t, 1, stats.Days[0].OrderCount)
		assert.Equal(t, 2, stats.Days[14].OrderCount)
		assert.True(t, decimal.NewFromInt(2001).Equal(stats.Days[14].Revenue))
		assert.True(t, decimal.NewFromInt(1000).Equal(stats.Days[13].CumulativeRevenue))
		assert.True(t, decimal.NewFromInt(3001).Equal(stats.Days[30].CumulativeRevenue))
		assert.Equal(t, 0, stats.Days[30].OrderCount)

		assert.Equal(t, []queries.LabelCount{
			{Label: order.ShapeAlmond.Label(), Count: 2},
			{Label: order.ShapeOval.Label(), Count: 1},
		}, stats.Shapes)
		assert.Equal(t, []queries.LabelCount{
			{Label: order.SizeM.Label(), Count: 2},
			{Label: order.SizeS.Label(), Count: 1},
		}, stats.Sizes)
	})

	t.Run("empty month has zero average and every day listed", func(t *testing.T) {
		ctx := t.Context()
		lister := new(MockOrderLister)
		lister.On("ListAll", ctx).Return([]*order.Order{}, nil).Once()

		query, _ := queries.NewGetMonthlyStatsQuery(2024, 2)
		stats, err := queries.NewGetMonthlyStatsQueryHandler(lister, time.UTC).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, 0, stats.OrderCount)
		assert.True(t, stats.AverageOrderValue.IsZero())
		assert.Len(t, stats.Days, 29)
		assert.Empty(t, stats.Shapes)
	})

	t.Run("list failure is returned", func(t *testing.T) {
		ctx := t.Context()
		lister := new(MockOrderLister)
		lister.On("ListAll", ctx).Return(nil, errors.New("down")).Once()

		query, _ := queries.NewGetMonthlyStatsQuery(2024, 2)
		_, err := queries.NewGetMonthlyStatsQueryHandler(lister, nil).Handle(ctx, query)

		require.Error(t, err)
	})
}
