package order

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Patch is a partial update of an order. Nil fields are left untouched;
// Images set to a non-nil pointer replaces the whole image list (an empty
// slice clears it).
type Patch struct {
	Customer       *string
	Size           *Size
	CustomSizeNote *string
	Shape          *Shape
	Quantity       *int
	Price          *decimal.Decimal
	Note           *string
	Status         *Status
	Images         *[]string
}

// StatusPatch updates the status only.
func StatusPatch(s Status) Patch {
	return Patch{Status: &s}
}

// ImagesPatch replaces the image list only.
func ImagesPatch(images []string) Patch {
	cp := cloneImages(images)
	return Patch{Images: &cp}
}

// DetailsPatch writes every whitelisted field plus the final image list.
func DetailsPatch(d Details, images []string) Patch {
	cp := cloneImages(images)
	return Patch{
		Customer:       &d.Customer,
		Size:           &d.Size,
		CustomSizeNote: &d.CustomSizeNote,
		Shape:          &d.Shape,
		Quantity:       &d.Quantity,
		Price:          &d.Price,
		Note:           &d.Note,
		Status:         &d.Status,
		Images:         &cp,
	}
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Customer == nil && p.Size == nil && p.CustomSizeNote == nil &&
		p.Shape == nil && p.Quantity == nil && p.Price == nil &&
		p.Note == nil && p.Status == nil && p.Images == nil
}

// Validate applies the NewOrder rules to the fields the patch sets.
func (p Patch) Validate() error {
	var errList []error
	if p.Customer != nil {
		errList = append(errList, validateCustomer(strings.TrimSpace(*p.Customer)))
	}
	if p.Size != nil {
		errList = append(errList, p.Size.Validate())
	}
	if p.Shape != nil {
		errList = append(errList, p.Shape.Validate())
	}
	if p.Quantity != nil {
		errList = append(errList, validateQuantity(*p.Quantity))
	}
	if p.Price != nil {
		errList = append(errList, validatePrice(*p.Price))
	}
	if p.Status != nil {
		errList = append(errList, p.Status.Validate())
	}
	return errors.Join(errList...)
}
