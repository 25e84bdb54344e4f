package commands

import (
	"context"
	"log/slog"

	"nailorders/internal/core/domain/model/order"
	"nailorders/internal/core/domain/services"
	"nailorders/internal/core/ports"
)

// EditOrderCommandHandler applies an edit in one datastore write.
//
// Steps:
//  1. read the stored order (authoritative image list)
//  2. upload new images under "order-<id>"
//  3. reconcile kept and uploaded images against the stored list
//  4. write the whitelisted fields and the final image list
//  5. discard images the order no longer references
//
// When step 4 fails the fresh uploads are discarded and the stored images are
// left alone, so the order still points at live objects.
type EditOrderCommandHandler struct {
	repo   ports.OrderRepository
	orders OrderWriter
	images ImageStore
	logger *slog.Logger
}

func NewEditOrderCommandHandler(
	repo ports.OrderRepository,
	orders OrderWriter,
	images ImageStore,
	logger *slog.Logger,
) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		repo:   repo,
		orders: orders,
		images: images,
		logger: logger.With("component", "EditOrderCommandHandler"),
	}
}

// Handle returns the order as written.
func (h *EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	uploaded, err := h.images.Upload(ctx, "order-"+cmd.OrderID(), cmd.NewImages())
	if err != nil {
		return nil, err
	}

	final, removed := services.ReconcileImages(current.Images(), cmd.KeptImages(), uploaded)

	patch := order.DetailsPatch(cmd.Details(), final)
	if cmd.KeepsStatus() {
		patch.Status = nil
	}

	if err = h.orders.Update(ctx, cmd.OrderID(), patch); err != nil {
		h.images.Discard(ctx, uploaded)
		return nil, err
	}

	updated := current.Apply(patch)
	if updated.MissingCustomSizeNote() {
		h.logger.WarnContext(ctx, "custom size without a note", "orderId", updated.ID())
	}

	h.images.Discard(ctx, removed)
	return updated, nil
}
