package commands

import (
	"context"
	"log/slog"
	"time"

	"nailorders/internal/core/domain/model/order"
)

const newOrderImagePrefix = "order"

// CreateOrderCommandHandler uploads the images of a new order and inserts it.
// When the insert fails the fresh uploads are discarded.
type CreateOrderCommandHandler struct {
	orders OrderWriter
	images ImageStore
	logger *slog.Logger
	now    func() time.Time
}

func NewCreateOrderCommandHandler(orders OrderWriter, images ImageStore, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders: orders,
		images: images,
		logger: logger.With("component", "CreateOrderCommandHandler"),
		now:    time.Now,
	}
}

// Handle returns the stored order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	urls, err := h.images.Upload(ctx, newOrderImagePrefix, cmd.Images())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(order.NewID(), cmd.Details(), urls, h.now())
	if err != nil {
		h.images.Discard(ctx, urls)
		return nil, err
	}
	if o.MissingCustomSizeNote() {
		h.logger.WarnContext(ctx, "custom size without a note", "orderId", o.ID())
	}

	if err = h.orders.Create(ctx, o); err != nil {
		h.images.Discard(ctx, urls)
		return nil, err
	}

	return o, nil
}
