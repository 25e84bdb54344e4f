package commands

import (
	"context"

	"nailorders/internal/core/ports"
)

// DeleteOrderCommandHandler deletes the row first, then its images. Storage
// failures are logged by the ImageStore and never undo the deletion.
type DeleteOrderCommandHandler struct {
	repo   ports.OrderRepository
	orders OrderWriter
	images ImageStore
}

func NewDeleteOrderCommandHandler(repo ports.OrderRepository, orders OrderWriter, images ImageStore) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		repo:   repo,
		orders: orders,
		images: images,
	}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	current, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.orders.Remove(ctx, cmd.OrderID()); err != nil {
		return err
	}

	h.images.Discard(ctx, current.Images())
	return nil
}
