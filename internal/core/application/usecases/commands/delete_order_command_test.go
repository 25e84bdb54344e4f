package commands_test

import (
	"testing"

	"nailorders/internal/core/application/usecases/commands"
	"nailorders/internal/core/domain/model/order"
	"nailorders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	t.Run("removes the row then its images", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewDeleteOrderCommand("o1")
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		writer := new(MockOrderWriter)
		images := new(MockImageStore)
		mock.InOrder(
			repo.On("Get", ctx, "o1").Return(storedOrder(t, "o1", order.Shipped, "a", "b"), nil).Once(),
			writer.On("Remove", ctx, "o1").Return(nil).Once(),
			images.On("Discard", ctx, []string{"a", "b"}).Return().Once(),
		)

		h := commands.NewDeleteOrderCommandHandler(repo, writer, images)
		require.NoError(t, h.Handle(ctx, cmd))

		repo.AssertExpectations(t)
		writer.AssertExpectations(t)
		images.AssertExpectations(t)
	})

	t.Run("order without images discards an empty list", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewDeleteOrderCommand("o1")
		repo := new(MockOrderRepository)
		writer := new(MockOrderWriter)
		images := new(MockImageStore)
		repo.On("Get", ctx, "o1").Return(storedOrder(t, "o1", order.Ordered), nil).Once()
		writer.On("Remove", ctx, "o1").Return(nil).Once()
		images.On("Discard", ctx, []string{}).Return().Once()

		h := commands.NewDeleteOrderCommandHandler(repo, writer, images)
		require.NoError(t, h.Handle(ctx, cmd))

		images.AssertExpectations(t)
	})

	t.Run("missing order removes nothing", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewDeleteOrderCommand("ghost")
		repo := new(MockOrderRepository)
		writer := new(MockOrderWriter)
		repo.On("Get", ctx, "ghost").Return(nil, errs.NewObjectNotFoundError("orderId", "ghost")).Once()

		h := commands.NewDeleteOrderCommandHandler(repo, writer, new(MockImageStore))
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		writer.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("failed removal keeps the images", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewDeleteOrderCommand("o1")
		repo := new(MockOrderRepository)
		writer := new(MockOrderWriter)
		images := new(MockImageStore)
		repo.On("Get", ctx, "o1").Return(storedOrder(t, "o1", order.Ordered, "a"), nil).Once()
		writer.On("Remove", ctx, "o1").Return(errs.NewObjectNotFoundError("orderId", "o1")).Once()

		h := commands.NewDeleteOrderCommandHandler(repo, writer, images)
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		images.AssertNotCalled(t, "Discard", mock.Anything, mock.Anything)
	})

	t.Run("zero value command", func(t *testing.T) {
		h := commands.NewDeleteOrderCommandHandler(new(MockOrderRepository), new(MockOrderWriter), new(MockImageStore))
		err := h.Handle(t.Context(), commands.DeleteOrderCommand{})
		require.ErrorIs(t, err, commands.ErrDeleteOrderCommandIsNotConstructed)
	})
}
