package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"nailorders/internal/core/domain/model/order"
	"nailorders/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}

func (m *MockOrderRepository) UpdateByID(_ context.Context, _ string, _ order.Patch) error {
	return errors.New("not implemented in mock")
}

func (m *MockOrderRepository) DeleteByID(_ context.Context, _ string) error {
	return errors.New("not implemented in mock")
}

type MockOrderWriter struct{ mock.Mock }

func (m *MockOrderWriter) Create(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderWriter) Update(ctx context.Context, id string, patch order.Patch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockOrderWriter) UpdateStatus(ctx context.Context, id string, newStatus order.Status) (*order.Order, error) {
	args := m.Called(ctx, id, newStatus)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderWriter) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockImageStore struct{ mock.Mock }

func (m *MockImageStore) Upload(ctx context.Context, prefix string, blobs []ports.ImageBlob) ([]string, error) {
	args := m.Called(ctx, prefix, blobs)
	urls, _ := args.Get(0).([]string)
	return urls, args.Error(1)
}

func (m *MockImageStore) Discard(ctx context.Context, urls []string) {
	m.Called(ctx, urls)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validDetails() order.Details {
	return order.Details{
		Customer: "Mei",
		Size:     order.SizeS,
		Shape:    order.ShapeShortSquoval,
		Quantity: 2,
		Price:    decimal.NewFromInt(1500),
		Status:   order.DepositPaid,
	}
}

func storedOrder(t *testing.T, id string, status order.Status, images ...string) *order.Order {
	t.Helper()
	d := validDetails()
	d.Status = status
	o, err := order.NewOrder(id, d, images, time.Date(2025, 5, 2, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}
