package commands

import (
	"errors"
	"strings"

	"nailorders/internal/core/domain/model/order"
	"nailorders/internal/core/ports"
	"nailorders/internal/pkg/errs"
	"nailorders/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand replaces the editable fields of an order and its image
// list. keptImages are previously stored URLs the user kept, in display order;
// newImages are uploaded and appended after them.
//
// A details.Status of order.Unknown keeps the stored status.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	details    order.Details
	keptImages []string
	newImages  []ports.ImageBlob

	guard guard.ConstructorGuard
}

func NewEditOrderCommand(
	orderID string,
	details order.Details,
	keptImages []string,
	newImages []ports.ImageBlob,
) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDetails(details),
	); err != nil {
		return EditOrderCommand{}, err
	}
	cmd.keptImages = append([]string(nil), keptImages...)
	cmd.newImages = append([]ports.ImageBlob(nil), newImages...)

	return cmd, nil
}

func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

func (c EditOrderCommand) OrderID() string {
	return c.orderID
}

func (c EditOrderCommand) Details() order.Details {
	return c.details
}

func (c EditOrderCommand) KeptImages() []string {
	return c.keptImages
}

func (c EditOrderCommand) NewImages() []ports.ImageBlob {
	return c.newImages
}

// KeepsStatus reports whether the edit leaves the status untouched.
func (c EditOrderCommand) KeepsStatus() bool {
	return c.details.Status == order.Unknown
}

func (c *EditOrderCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setDetails(details order.Details) error {
	patch := order.DetailsPatch(details, nil)
	if details.Status == order.Unknown {
		patch.Status = nil
	}
	if err := patch.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}
