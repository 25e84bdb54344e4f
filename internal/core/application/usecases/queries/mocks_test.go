package queries_test

import (
	"context"
	"testing"
	"time"

	"nailorders/internal/core/application/services"
	"nailorders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) GetList(ctx context.Context, tab order.Status) (services.ListResult, error) {
	args := m.Called(ctx, tab)
	return args.Get(0).(services.ListResult), args.Error(1)
}

func (m *MockOrderReader) GetSingle(ctx context.Context, id string) (services.SingleResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(services.SingleResult), args.Error(1)
}

type MockOrderLister struct{ mock.Mock }

func (m *MockOrderLister) ListAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type orderSpec struct {
	id       string
	customer string
	size     order.Size
	shape    order.Shape
	price    int64
	status   order.Status
	created  time.Time
}

func buildOrder(t *testing.T, s orderSpec) *order.Order {
	t.Helper()
	if s.customer == "" {
		s.customer = "Mei"
	}
	if s.size == "" {
		s.size = order.SizeM
	}
	if s.shape == "" {
		s.shape = order.ShapeOval
	}
	if s.status == order.Unknown {
		s.status = order.DepositPaid
	}
	o, err := order.NewOrder(s.id, order.Details{
		Customer: s.customer,
		Size:     s.size,
		Shape:    s.shape,
		Quantity: 1,
		Price:    decimal.NewFromInt(s.price),
		Status:   s.status,
	}, nil, s.created)
	require.NoError(t, err)
	return o
}
