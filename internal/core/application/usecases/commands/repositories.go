// Package commands contains business operations that modify system state.
// Every handler reads the datastore for authoritative state, talks to object
// storage through ImageStore and writes through OrderWriter, which keeps the
// order cache consistent.
package commands

import (
	"context"

	"nailorders/internal/core/domain/model/order"
	"nailorders/internal/core/ports"
)

type (
	// OrderWriter is the write side of the order service. Implementations
	// persist first and update the cache only after a successful write.
	OrderWriter interface {
		Create(ctx context.Context, o *order.Order) error
		Update(ctx context.Context, id string, patch order.Patch) error
		UpdateStatus(ctx context.Context, id string, newStatus order.Status) (*order.Order, error)
		Remove(ctx context.Context, id string) error
	}

	// ImageStore uploads and discards order images.
	//
	// Upload is all or nothing and returns public URLs in submission order.
	// Discard is best effort and never fails.
	ImageStore interface {
		Upload(ctx context.Context, prefix string, blobs []ports.ImageBlob) ([]string, error)
		Discard(ctx context.Context, urls []string)
	}
)
