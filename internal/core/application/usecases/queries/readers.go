// Package queries contains read operations for retrieving system state.
// Tab and single order reads go through the order service cache; statistics
// are computed from a full read of the datastore.
package queries

import (
	"context"

	"nailorders/internal/core/application/services"
	"nailorders/internal/core/domain/model/order"
)

type (
	// OrderReader is the cache-first read side of the order service.
	OrderReader interface {
		GetList(ctx context.Context, tab order.Status) (services.ListResult, error)
		GetSingle(ctx context.Context, id string) (services.SingleResult, error)
	}

	// OrderLister returns every stored order, newest first.
	OrderLister interface {
		ListAll(ctx context.Context) ([]*order.Order, error)
	}
)
