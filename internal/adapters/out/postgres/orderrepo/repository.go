package orderrepo

import (
	"context"
	"errors"

	"nailorders/internal/core/domain/model/order"
	"nailorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository on Postgres.
// Every method touches a single row or a single SELECT; there are no
// transactions.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// ListByStatus returns the orders in status, newest first.
func (r *GormOrderRepository) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewPersistenceErrorWithCause("list orders by status", err)
	}

	return toDomainList(dtos)
}

func (r *GormOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceErrorWithCause("list orders", err)
	}

	return toDomainList(dtos)
}

func (r *GormOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, errs.NewPersistenceErrorWithCause("get order", err)
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) Add(ctx context.Context, o *order.Order) error {
	dto := fromDomain(o)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceErrorWithCause("insert order", err)
	}
	return nil
}

// UpdateByID writes only the columns set in patch. An empty patch writes
// nothing but still reports a missing row.
func (r *GormOrderRepository) UpdateByID(ctx context.Context, id string, patch order.Patch) error {
	cols := patchColumns(patch)
	if len(cols) == 0 {
		_, err := r.Get(ctx, id)
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Updates(cols)
	if result.Error != nil {
		return errs.NewPersistenceErrorWithCause("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id)
	}
	return nil
}

func (r *GormOrderRepository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&OrderDTO{})
	if result.Error != nil {
		return errs.NewPersistenceErrorWithCause("delete order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id)
	}
	return nil
}
