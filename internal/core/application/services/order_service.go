package services

import (
	"context"
	"log/slog"
	"time"

	"nailorders/internal/core/application/cache"
	"nailorders/internal/core/domain/model/order"
	"nailorders/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

const (
	prefetchBatchSize = 2
	prefetchPause     = 150 * time.Millisecond
)

// ListResult is a tab listing. Cached reports whether it was served from the
// cache, so callers can tell a possibly stale answer from a fresh one.
type ListResult struct {
	Orders []*order.Order
	Cached bool
}

// SingleResult is a single order lookup with the same freshness flag.
type SingleResult struct {
	Order  *order.Order
	Cached bool
}

// OrderService is the only writer of the order cache.
//
// Every write goes to the datastore first. The cache is touched only after
// the write succeeded, and every write ends by clearing all tab lists, so a
// list read never shows a change that did not commit.
type OrderService struct {
	repo   ports.OrderRepository
	cache  *cache.OrderCache
	logger *slog.Logger

	pause time.Duration
}

func NewOrderService(repo ports.OrderRepository, c *cache.OrderCache, logger *slog.Logger) *OrderService {
	return &OrderService{
		repo:   repo,
		cache:  c,
		logger: logger.With("component", "OrderService"),
		pause:  prefetchPause,
	}
}

// GetList returns the orders of a tab, from the cache when populated. A read
// that overlaps a write is returned but not cached.
func (s *OrderService) GetList(ctx context.Context, tab order.Status) (ListResult, error) {
	if orders, ok := s.cache.GetList(tab); ok {
		return ListResult{Orders: orders, Cached: true}, nil
	}

	gen := s.cache.ListGeneration()
	orders, err := s.repo.ListByStatus(ctx, tab)
	if err != nil {
		return ListResult{}, err
	}

	if !s.cache.SetListAt(tab, orders, gen) {
		s.logger.DebugContext(ctx, "list invalidated during read, not caching", "tab", tab.String())
	}
	return ListResult{Orders: orders, Cached: false}, nil
}

// GetSingle returns one order, from the cache when present. A miss in both
// the cache and the datastore is an errs.ObjectNotFoundError.
func (s *OrderService) GetSingle(ctx context.Context, id string) (SingleResult, error) {
	if o, ok := s.cache.GetSingle(id); ok {
		return SingleResult{Order: o, Cached: true}, nil
	}

	gen := s.cache.SingleGeneration()
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return SingleResult{}, err
	}

	s.cache.SetSingleAt(o, gen)
	return SingleResult{Order: o, Cached: false}, nil
}

// Create inserts o. The tab o lands in is now stale, so all lists are dropped.
func (s *OrderService) Create(ctx context.Context, o *order.Order) error {
	if err := s.repo.Add(ctx, o); err != nil {
		return err
	}

	s.cache.ClearAllLists()
	s.logger.InfoContext(ctx, "order created", "orderId", o.ID(), "status", o.Status().String())
	return nil
}

// Update writes patch through to the datastore, then refreshes the single
// entry from the stored row. When that read fails the entry is dropped
// instead; the write has already committed and the call still succeeds.
func (s *OrderService) Update(ctx context.Context, id string, patch order.Patch) error {
	if err := s.repo.UpdateByID(ctx, id, patch); err != nil {
		return err
	}

	fresh, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.WarnContext(ctx, "re-read after update failed, dropping cached order",
			"orderId", id, "error", err)
		s.cache.RemoveSingle(id)
	} else {
		s.cache.SetSingle(fresh)
	}

	s.cache.ClearAllLists()
	return nil
}

// UpdateStatus moves an order to newStatus.
//
// The target is not checked for adjacency: callers compute it with
// order.Status.Next. Only values outside the sequence are rejected.
//
// Steps:
//  1. resolve the current order (cache, then datastore)
//  2. persist the new status; on failure nothing in the cache changes
//  3. build the updated copy
//  4. refresh the single entry
//  5. move the order between tab lists
//  6. clear all tab lists
//
// Step 6 supersedes step 5 on purpose: the next list read goes to the
// datastore. Concurrent calls on the same order race; the last datastore
// write wins.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, newStatus order.Status) (*order.Order, error) {
	if err := newStatus.Validate(); err != nil {
		return nil, err
	}

	current, ok := s.cache.GetSingle(id)
	if !ok {
		var err error
		current, err = s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateByID(ctx, id, order.StatusPatch(newStatus)); err != nil {
		return nil, err
	}

	updated := current.WithStatus(newStatus)
	s.cache.SetSingle(updated)
	s.cache.MoveOrderTab(current.Status(), newStatus, updated)
	s.cache.ClearAllLists()

	s.logger.InfoContext(ctx, "order status changed",
		"orderId", id, "from", current.Status().String(), "to", newStatus.String())
	return updated, nil
}

// Remove deletes the order and forgets it.
func (s *OrderService) Remove(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.cache.RemoveSingle(id)
	s.cache.ClearAllLists()
	s.logger.InfoContext(ctx, "order removed", "orderId", id)
	return nil
}

// Prefetch loads every tab except current into the cache, two tabs at a time
// with a short pause between batches. Failures are logged and skipped.
// Pass order.Unknown to warm every tab.
func (s *OrderService) Prefetch(ctx context.Context, current order.Status) {
	tabs := make([]order.Status, 0, len(order.Statuses()))
	for _, tab := range order.Statuses() {
		if tab != current {
			tabs = append(tabs, tab)
		}
	}

	for start := 0; start < len(tabs); start += prefetchBatchSize {
		if start > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.pause):
			}
		}

		end := min(start+prefetchBatchSize, len(tabs))
		var g errgroup.Group
		for _, tab := range tabs[start:end] {
			g.Go(func() error {
				if _, err := s.GetList(ctx, tab); err != nil {
					s.logger.WarnContext(ctx, "prefetch failed", "tab", tab.String(), "error", err)
				}
				return nil
			})
		}
		_ = g.Wait()
	}
}
