// Package orderrepo persists order aggregates with GORM, mapping them to a
// single "orders" table. The image list is a native text[] column.
package orderrepo

import (
	"time"

	"nailorders/internal/core/domain/model/order"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row layout of an order. Status is stored by name so rows
// written with a status outside the workflow still load.
type OrderDTO struct {
	ID             string          `gorm:"type:text;primaryKey"`
	Customer       string          `gorm:"type:text;not null;index"`
	Size           string          `gorm:"type:text"`
	CustomSizeNote string          `gorm:"type:text"`
	Shape          string          `gorm:"type:text"`
	Quantity       int             `gorm:"not null"`
	Price          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Note           string          `gorm:"type:text"`
	Images         pq.StringArray  `gorm:"type:text[]"`
	Status         string          `gorm:"type:text;not null;index"`
	CreatedAt      time.Time       `gorm:"not null;index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:             o.ID(),
		Customer:       o.Customer(),
		Size:           string(o.Size()),
		CustomSizeNote: o.CustomSizeNote(),
		Shape:          string(o.Shape()),
		Quantity:       o.Quantity(),
		Price:          o.Price(),
		Note:           o.Note(),
		Images:         pq.StringArray(o.Images()),
		Status:         o.Status().String(),
		CreatedAt:      o.CreatedAt(),
	}
}

// toDomain uses RestoreOrder: stored rows are not re-validated.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(dto.ID, order.Details{
		Customer:       dto.Customer,
		Size:           order.Size(dto.Size),
		CustomSizeNote: dto.CustomSizeNote,
		Shape:          order.Shape(dto.Shape),
		Quantity:       dto.Quantity,
		Price:          dto.Price,
		Note:           dto.Note,
		Status:         order.ParseStatus(dto.Status),
	}, []string(dto.Images), dto.CreatedAt)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// patchColumns maps the set fields of p to column updates.
func patchColumns(p order.Patch) map[string]any {
	cols := make(map[string]any)
	if p.Customer != nil {
		cols["customer"] = *p.Customer
	}
	if p.Size != nil {
		cols["size"] = string(*p.Size)
	}
	if p.CustomSizeNote != nil {
		cols["custom_size_note"] = *p.CustomSizeNote
	}
	if p.Shape != nil {
		cols["shape"] = string(*p.Shape)
	}
	if p.Quantity != nil {
		cols["quantity"] = *p.Quantity
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.Note != nil {
		cols["note"] = *p.Note
	}
	if p.Status != nil {
		cols["status"] = p.Status.String()
	}
	if p.Images != nil {
		images := *p.Images
		if images == nil {
			images = []string{}
		}
		cols["images"] = pq.StringArray(images)
	}
	return cols
}
