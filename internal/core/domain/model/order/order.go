package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"nailorders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Details groups the mutable attributes of an order. It is the whitelisted
// field set accepted from clients on create and edit.
type Details struct {
	Customer       string
	Size           Size
	CustomSizeNote string
	Shape          Shape
	Quantity       int
	Price          decimal.Decimal
	Note           string
	Status         Status
}

// Validate checks the field rules shared by NewOrder and Patch.Validate.
// Every violation is reported.
func (d Details) Validate() error {
	return errors.Join(
		validateCustomer(strings.TrimSpace(d.Customer)),
		d.Size.Validate(),
		d.Shape.Validate(),
		validateQuantity(d.Quantity),
		validatePrice(d.Price),
		d.Status.Validate(),
	)
}

// Order is the aggregate root of the back-office. Fields are private; copies
// are produced by WithStatus and Apply so that snapshots held by the cache are
// never mutated in place.
type Order struct {
	id        string
	details   Details
	images    []string
	createdAt time.Time
}

// NewID returns a fresh opaque order identifier.
func NewID() string {
	return uuid.NewString()
}

// NewOrder creates a validated order.
//
// Rules:
//   - id and customer are required
//   - size, shape and status must be members of their sets
//   - quantity must be positive, price must not be negative
//
// All violations are reported together (errors.Join). A custom size without a
// note is accepted; see MissingCustomSizeNote.
func NewOrder(id string, details Details, images []string, createdAt time.Time) (*Order, error) {
	details.Customer = strings.TrimSpace(details.Customer)

	if err := errors.Join(validateID(id), details.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:        id,
		details:   details,
		images:    cloneImages(images),
		createdAt: createdAt,
	}, nil
}

// RestoreOrder rebuilds an order loaded from persistence. Only the id is
// checked: legacy rows keep whatever size, shape or status they were stored
// with, so an out-of-sequence status can still be reported as unknown.
func RestoreOrder(id string, details Details, images []string, createdAt time.Time) (*Order, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	return &Order{
		id:        id,
		details:   details,
		images:    cloneImages(images),
		createdAt: createdAt,
	}, nil
}

func (o *Order) ID() string {
	return o.id
}

func (o *Order) Customer() string {
	return o.details.Customer
}

func (o *Order) Size() Size {
	return o.details.Size
}

func (o *Order) CustomSizeNote() string {
	return o.details.CustomSizeNote
}

func (o *Order) Shape() Shape {
	return o.details.Shape
}

func (o *Order) Quantity() int {
	return o.details.Quantity
}

func (o *Order) Price() decimal.Decimal {
	return o.details.Price
}

func (o *Order) Note() string {
	return o.details.Note
}

func (o *Order) Status() Status {
	return o.details.Status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Details returns the mutable attributes as a value.
func (o *Order) Details() Details {
	return o.details
}

// Images returns a copy of the image URLs in display order.
func (o *Order) Images() []string {
	return cloneImages(o.images)
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// MissingCustomSizeNote reports the soft invariant violation of a custom size
// without a note.
func (o *Order) MissingCustomSizeNote() bool {
	return o.details.Size == SizeCustom && strings.TrimSpace(o.details.CustomSizeNote) == ""
}

// CoverImage returns the first image, used as the list thumbnail.
func (o *Order) CoverImage() (string, bool) {
	if len(o.images) == 0 {
		return "", false
	}
	return o.images[0], true
}

// WithStatus returns a copy of the order carrying status s.
func (o *Order) WithStatus(s Status) *Order {
	cp := o.clone()
	cp.details.Status = s
	return cp
}

// Apply returns a copy of the order with every non-nil field of p applied.
func (o *Order) Apply(p Patch) *Order {
	cp := o.clone()
	if p.Customer != nil {
		cp.details.Customer = *p.Customer
	}
	if p.Size != nil {
		cp.details.Size = *p.Size
	}
	if p.CustomSizeNote != nil {
		cp.details.CustomSizeNote = *p.CustomSizeNote
	}
	if p.Shape != nil {
		cp.details.Shape = *p.Shape
	}
	if p.Quantity != nil {
		cp.details.Quantity = *p.Quantity
	}
	if p.Price != nil {
		cp.details.Price = *p.Price
	}
	if p.Note != nil {
		cp.details.Note = *p.Note
	}
	if p.Status != nil {
		cp.details.Status = *p.Status
	}
	if p.Images != nil {
		cp.images = cloneImages(*p.Images)
	}
	return cp
}

func (o *Order) clone() *Order {
	return &Order{
		id:        o.id,
		details:   o.details,
		images:    cloneImages(o.images),
		createdAt: o.createdAt,
	}
}

func cloneImages(images []string) []string {
	out := make([]string, len(images))
	copy(out, images)
	return out
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("id")
	}
	return nil
}

func validateCustomer(customer string) error {
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price.String()))
	}
	return nil
}
