// Package cache holds the process-local, advisory order cache used by the
// order service. The datastore stays authoritative; every entry may be stale.
package cache

import (
	"sync"

	"nailorders/internal/core/domain/model/order"
)

// OrderCache keeps two independent mappings: tab (status) -> list of orders,
// most recent first, and order id -> single order snapshot.
//
// The mutex only protects the maps themselves. It does not serialize business
// operations: two status updates on the same order still race and the last
// datastore write wins.
//
// Orders are immutable once built (see order.Order.WithStatus), so snapshots
// are shared by pointer; slices are copied in and out.
//
// Each mapping carries a generation that every invalidation bumps. A reader
// that fills the cache after a datastore read captures the generation before
// the read and stores with SetListAt / SetSingleAt, which drop the result when
// a write invalidated the mapping in between.
type OrderCache struct {
	mu     sync.RWMutex
	lists  map[order.Status][]*order.Order
	single map[string]*order.Order

	listGen   uint64
	singleGen uint64
}

func NewOrderCache() *OrderCache {
	c := &OrderCache{}
	c.Reset()
	return c
}

// Reset drops every entry. Called at process start and between tests.
func (c *OrderCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lists = make(map[order.Status][]*order.Order)
	c.single = make(map[string]*order.Order)
	c.listGen++
	c.singleGen++
}

// ListGeneration returns the current list generation for SetListAt.
func (c *OrderCache) ListGeneration() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.listGen
}

// SingleGeneration returns the current single-entry generation for SetSingleAt.
func (c *OrderCache) SingleGeneration() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.singleGen
}

// GetList returns the cached list for tab. ok is false when the tab was never
// populated or has been cleared since.
func (c *OrderCache) GetList(tab order.Status) ([]*order.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	list, ok := c.lists[tab]
	if !ok {
		return nil, false
	}
	return cloneList(list), true
}

// SetList replaces the list for tab wholesale.
func (c *OrderCache) SetList(tab order.Status, orders []*order.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lists[tab] = cloneList(orders)
}

// SetListAt stores the list only if no list was invalidated since gen was
// read. It reports whether the list was stored.
func (c *OrderCache) SetListAt(tab order.Status, orders []*order.Order, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.listGen != gen {
		return false
	}
	c.lists[tab] = cloneList(orders)
	return true
}

func (c *OrderCache) ClearList(tab order.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.lists, tab)
	c.listGen++
}

func (c *OrderCache) ClearAllLists() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.lists)
	c.listGen++
}

func (c *OrderCache) GetSingle(id string) (*order.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	o, ok := c.single[id]
	return o, ok
}

func (c *OrderCache) SetSingle(o *order.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.single[o.ID()] = o
	c.singleGen++
}

// SetSingleAt stores o only if no single entry was written or removed since
// gen was read. It reports whether o was stored.
func (c *OrderCache) SetSingleAt(o *order.Order, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.singleGen != gen {
		return false
	}
	c.single[o.ID()] = o
	return true
}

func (c *OrderCache) RemoveSingle(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.single, id)
	c.singleGen++
}

// MoveOrderTab is the optimistic step of a status change: o is removed (by id)
// from the oldStatus list, prepended to the newStatus list and stored as the
// single snapshot. Callers clear all lists right after, so the move only lives
// until then.
func (c *OrderCache) MoveOrderTab(oldStatus, newStatus order.Status, o *order.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if list, ok := c.lists[oldStatus]; ok {
		kept := make([]*order.Order, 0, len(list))
		for _, cached := range list {
			if cached.ID() != o.ID() {
				kept = append(kept, cached)
			}
		}
		c.lists[oldStatus] = kept
	}

	target := c.lists[newStatus]
	moved := make([]*order.Order, 0, len(target)+1)
	moved = append(moved, o)
	for _, cached := range target {
		if cached.ID() != o.ID() {
			moved = append(moved, cached)
		}
	}
	c.lists[newStatus] = moved

	c.single[o.ID()] = o
	c.singleGen++
}

func cloneList(orders []*order.Order) []*order.Order {
	out := make([]*order.Order, len(orders))
	copy(out, orders)
	return out
}
