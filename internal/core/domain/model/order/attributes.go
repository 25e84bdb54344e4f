package order

import (
	"fmt"

	"nailorders/internal/pkg/errs"
)

// Size is the nail size of an order. SizeCustom expects a custom size note.
type Size string

const (
	SizeXS     Size = "XS"
	SizeS      Size = "S"
	SizeM      Size = "M"
	SizeL      Size = "L"
	SizeCustom Size = "custom"
)

var sizeLabels = map[Size]string{
	SizeXS:     "Extra small",
	SizeS:      "Small",
	SizeM:      "Medium",
	SizeL:      "Large",
	SizeCustom: "Custom size",
}

// Sizes lists the valid sizes in display order.
func Sizes() []Size {
	return []Size{SizeXS, SizeS, SizeM, SizeL, SizeCustom}
}

func (s Size) Validate() error {
	if _, ok := sizeLabels[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%q is not a valid size", string(s)))
	}
	return nil
}

// Label returns the display name, or the raw value for sizes outside the set.
func (s Size) Label() string {
	if l, ok := sizeLabels[s]; ok {
		return l
	}
	return string(s)
}

// Shape is the nail shape of an order.
type Shape string

const (
	ShapeShortRound     Shape = "short_round"
	ShapeShortSquoval   Shape = "short_squoval"
	ShapeShortSquare    Shape = "short_square"
	ShapeShortTrapezoid Shape = "short_trapezoid"
	ShapeTrapezoid      Shape = "trapezoid"
	ShapeOval           Shape = "oval"
	ShapeAlmond         Shape = "almond"
)

var shapeLabels = map[Shape]string{
	ShapeShortRound:     "Short round",
	ShapeShortSquoval:   "Short squoval",
	ShapeShortSquare:    "Short square",
	ShapeShortTrapezoid: "Short trapezoid",
	ShapeTrapezoid:      "Trapezoid",
	ShapeOval:           "Oval",
	ShapeAlmond:         "Almond",
}

// Shapes lists the valid shapes in display order.
func Shapes() []Shape {
	return []Shape{
		ShapeShortRound,
		ShapeShortSquoval,
		ShapeShortSquare,
		ShapeShortTrapezoid,
		ShapeTrapezoid,
		ShapeOval,
		ShapeAlmond,
	}
}

func (s Shape) Validate() error {
	if _, ok := shapeLabels[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("shape", fmt.Errorf("%q is not a valid shape", string(s)))
	}
	return nil
}

// Label returns the display name, or the raw value for shapes outside the set.
func (s Shape) Label() string {
	if l, ok := shapeLabels[s]; ok {
		return l
	}
	return string(s)
}
