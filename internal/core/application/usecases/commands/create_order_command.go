package commands

import (
	"errors"

	"nailorders/internal/core/domain/model/order"
	"nailorders/internal/core/ports"
	"nailorders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new order together
// with its style images.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(order.Details{
//	    Customer: "Mei",
//	    Size:     order.SizeM,
//	    Shape:    order.ShapeAlmond,
//	    Quantity: 1,
//	    Price:    decimal.NewFromInt(1200),
//	}, blobs)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	details order.Details
	images  []ports.ImageBlob

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates details. A missing status defaults to
// order.DepositPaid, the first step of the workflow.
func NewCreateOrderCommand(details order.Details, images []ports.ImageBlob) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDetails(details); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.images = append([]ports.ImageBlob(nil), images...)

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c CreateOrderCommand) Images() []ports.ImageBlob {
	return c.images
}

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	if details.Status == order.Unknown {
		details.Status = order.DepositPaid
	}
	if err := details.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}
