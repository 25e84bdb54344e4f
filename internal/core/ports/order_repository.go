// Package ports defines the contracts between the order core and the hosted
// services it depends on: the order datastore and object storage.
package ports

import (
	"context"

	"nailorders/internal/core/domain/model/order"
)

// OrderRepository is the order access layer. Every method is atomic at the
// single-row level; no multi-row transactions are used.
//
// Failures of the datastore itself are reported as errs.PersistenceError.
type OrderRepository interface {
	// ListByStatus returns the orders in status, newest first.
	ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// ListAll returns every order, newest first. Used by statistics and maintenance.
	ListAll(ctx context.Context) ([]*order.Order, error)

	// Get returns the order with id, or errs.ObjectNotFoundError when no row matches.
	Get(ctx context.Context, id string) (*order.Order, error)

	// Add inserts a new order.
	Add(ctx context.Context, o *order.Order) error

	// UpdateByID writes the non-nil fields of patch to the row with id.
	// Returns errs.ObjectNotFoundError when no row matches.
	UpdateByID(ctx context.Context, id string, patch order.Patch) error

	// DeleteByID removes the row with id.
	// Returns errs.ObjectNotFoundError when no row matches.
	DeleteByID(ctx context.Context, id string) error
}
