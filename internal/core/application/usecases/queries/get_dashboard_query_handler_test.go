package queries_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"nailorders/internal/core/application/usecases/queries"
	"nailorders/internal/core/domain/model/order"
	"nailorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDashboardQuery(t *testing.T) {
	_, err := queries.NewGetDashboardQuery(time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetDashboardQueryHandler(new(MockOrderLister), nil).
		Handle(t.Context(), queries.GetDashboardQuery{})
	require.ErrorIs(t, err, queries.ErrGetDashboardQueryIsNotConstructed)
}

func TestGetDashboardQueryHandler_Handle(t *testing.T) {
	taipei := time.FixedZone("UTC+8", 8*60*60)
	// 2025-03-03 10:00 local.
	now := time.Date(2025, 3, 3, 2, 0, 0, 0, time.UTC)

	t.Run("trend crosses the month boundary", func(t *testing.T) {
		ctx := t.Context()
		orders := []*order.Order{
			buildOrder(t, orderSpec{id: "today", price: 800,
				created: time.Date(2025, 3, 3, 1, 0, 0, 0, time.UTC)}),
			// 2025-02-28 16:30 UTC is 2025-03-01 00:30 local.
			buildOrder(t, orderSpec{id: "first", price: 1200, status: order.Shipped,
				created: time.Date(2025, 2, 28, 16, 30, 0, 0, time.UTC)}),
			buildOrder(t, orderSpec{id: "feb-27", price: 500,
				created: time.Date(2025, 2, 27, 4, 0, 0, 0, time.UTC)}),
			buildOrder(t, orderSpec{id: "feb-25", price: 300,
				created: time.Date(2025, 2, 25, 4, 0, 0, 0, time.UTC)}),
			// Local 2025-02-24 is outside the window.
			buildOrder(t, orderSpec{id: "feb-24", price: 9000,
				created: time.Date(2025, 2, 24, 4, 0, 0, 0, time.UTC)}),
		}
		lister := new(MockOrderLister)
		lister.On("ListAll", ctx).Return(orders, nil).Once()

		query, err := queries.NewGetDashboardQuery(now)
		require.NoError(t, err)
		d, err := queries.NewGetDashboardQueryHandler(lister, taipei).Handle(ctx, query)
		require.NoError(t, err)

		assert.Equal(t, 2, d.MonthOrderCount)
		assert.True(t, decimal.NewFromInt(2000).Equal(d.MonthRevenue), d.MonthRevenue.String())
		assert.True(t, decimal.NewFromInt(1000).Equal(d.AverageOrderValue), d.AverageOrderValue.String())
		assert.Equal(t, 1, d.PendingCount)

		require.Len(t, d.Trend, 7)
		assert.Equal(t, time.Date(2025, 2, 25, 0, 0, 0, 0, taipei), d.Trend[0].Date)
		assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, taipei), d.Trend[6].Date)
		want := []int64{300, 0, 500, 0, 1200, 0, 800}
		for i, w := range want {
			assert.True(t, decimal.NewFromInt(w).Equal(d.Trend[i].Revenue),
				fmt.Sprintf("day %d: %s", i, d.Trend[i].Revenue))
		}

		require.Len(t, d.Recent, 5)
		assert.Equal(t, "today", d.Recent[0].ID())
		lister.AssertExpectations(t)
	})

	t.Run("recent keeps the six newest", func(t *testing.T) {
		ctx := t.Context()
		var orders []*order.Order
		for i := range 8 {
			orders = append(orders, buildOrder(t, orderSpec{
				id:      fmt.Sprintf("o%d", i),
				price:   100,
				created: now.Add(-time.Duration(i) * time.Minute),
			}))
		}
		lister := new(MockOrderLister)
		lister.On("ListAll", ctx).Return(orders, nil).Once()

		query, err := queries.NewGetDashboardQuery(now)
		require.NoError(t, err)
		d, err := queries.NewGetDashboardQueryHandler(lister, taipei).Handle(ctx, query)
		require.NoError(t, err)

		require.Len(t, d.Recent, 6)
		assert.Equal(t, "o0", d.Recent[0].ID())
		assert.Equal(t, "o5", d.Recent[5].ID())
		assert.Equal(t, 8, d.PendingCount)
	})

	t.Run("empty store", func(t *testing.T) {
		ctx := t.Context()
		lister := new(MockOrderLister)
		lister.On("ListAll", ctx).Return([]*order.Order{}, nil).Once()

		query, err := queries.NewGetDashboardQuery(now)
		require.NoError(t, err)
		d, err := queries.NewGetDashboardQueryHandler(lister, taipei).Handle(ctx, query)
		require.NoError(t, err)

		assert.Equal(t, 0, d.MonthOrderCount)
		assert.True(t, d.AverageOrderValue.IsZero())
		assert.Len(t, d.Trend, 7)
		assert.NotNil(t, d.Recent)
		assert.Empty(t, d.Recent)
	})

	t.Run("datastore error", func(t *testing.T) {
		ctx := t.Context()
		boom := errors.New("boom")
		lister := new(MockOrderLister)
		lister.On("ListAll", ctx).Return(nil, boom).Once()

		query, err := queries.NewGetDashboardQuery(now)
		require.NoError(t, err)
		_, err = queries.NewGetDashboardQueryHandler(lister, taipei).Handle(ctx, query)
		require.ErrorIs(t, err, boom)
	})
}
