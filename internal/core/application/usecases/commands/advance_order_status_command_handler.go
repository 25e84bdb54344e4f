package commands

import (
	"context"

	"nailorders/internal/core/domain/model/order"
	"nailorders/internal/core/ports"
)

// AdvanceOrderStatusCommandHandler computes the next status from the stored
// row, never from the cache, and hands it to the order service.
//
// An order already at the terminal status is returned unchanged without a
// write. A stored status outside the sequence fails with
// order.ErrUnknownStatus.
type AdvanceOrderStatusCommandHandler struct {
	repo   ports.OrderRepository
	orders OrderWriter
}

func NewAdvanceOrderStatusCommandHandler(repo ports.OrderRepository, orders OrderWriter) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		repo:   repo,
		orders: orders,
	}
}

// Handle returns the status the order ends up in.
func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	current, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Unknown, err
	}

	next, err := current.Status().Next()
	if err != nil {
		return order.Unknown, err
	}
	if next == current.Status() {
		return next, nil
	}

	updated, err := h.orders.UpdateStatus(ctx, cmd.OrderID(), next)
	if err != nil {
		return order.Unknown, err
	}

	return updated.Status(), nil
}
