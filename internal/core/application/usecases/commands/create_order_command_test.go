package commands_test

import (
	"errors"
	"testing"

	"nailorders/internal/core/application/usecases/commands"
	"nailorders/internal/core/domain/model/order"
	"nailorders/internal/core/ports"
	"nailorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("missing status defaults to deposit paid", func(t *testing.T) {
		d := validDetails()
		d.Status = order.Unknown

		cmd, err := commands.NewCreateOrderCommand(d, nil)

		require.NoError(t, err)
		assert.Equal(t, order.DepositPaid, cmd.Details().Status)
		require.NoError(t, cmd.Validate())
	})

	t.Run("invalid details are all reported", func(t *testing.T) {
		d := validDetails()
		d.Customer = ""
		d.Quantity = 0

		_, err := commands.NewCreateOrderCommand(d, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		err := commands.CreateOrderCommand{}.Validate()
		require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	blobs := []ports.ImageBlob{{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte("a")}}
	urls := []string{"https://cdn.example.com/order-1-x.jpg"}

	t.Run("uploads then inserts", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateOrderCommand(validDetails(), blobs)
		require.NoError(t, err)

		writer := new(MockOrderWriter)
		images := new(MockImageStore)
		withImages := mock.MatchedBy(func(o *order.Order) bool {
			return assert.ObjectsAreEqual(urls, o.Images()) && o.Status() == order.DepositPaid
		})
		mock.InOrder(
			images.On("Upload", ctx, "order", blobs).Return(urls, nil).Once(),
			writer.On("Create", ctx, withImages).Return(nil).Once(),
		)

		h := commands.NewCreateOrderCommandHandler(writer, images, discardLogger())
		created, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID())
		assert.Equal(t, "Mei", created.Customer())
		writer.AssertExpectations(t)
		images.AssertExpectations(t)
		images.AssertNotCalled(t, "Discard", mock.Anything, mock.Anything)
	})

	t.Run("upload failure aborts before insert", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewCreateOrderCommand(validDetails(), blobs)
		writer := new(MockOrderWriter)
		images := new(MockImageStore)
		images.On("Upload", ctx, "order", blobs).
			Return(nil, errs.NewStorageError("put", "order-1-x.jpg")).Once()

		h := commands.NewCreateOrderCommandHandler(writer, images, discardLogger())
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrStorageFailure)
		writer.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("insert failure discards fresh uploads", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewCreateOrderCommand(validDetails(), blobs)
		writer := new(MockOrderWriter)
		images := new(MockImageStore)
		insertErr := errs.NewPersistenceErrorWithCause("insert order", errors.New("duplicate key"))
		mock.InOrder(
			images.On("Upload", ctx, "order", blobs).Return(urls, nil).Once(),
			writer.On("Create", ctx, mock.AnythingOfType("*order.Order")).Return(insertErr).Once(),
			images.On("Discard", ctx, urls).Return().Once(),
		)

		h := commands.NewCreateOrderCommandHandler(writer, images, discardLogger())
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrPersistenceFailure)
		images.AssertExpectations(t)
	})

	t.Run("not constructed command", func(t *testing.T) {
		h := commands.NewCreateOrderCommandHandler(new(MockOrderWriter), new(MockImageStore), discardLogger())
		_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})
		require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
