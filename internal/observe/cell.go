// Package observe provides single-writer, multi-reader broadcast cells: the
// reactive substrate the repositories and view-state composers are built on.
// A cell holds the latest value of some state; subscribers are notified with
// a full snapshot on every change, and notifications for a cell are
// serialized, so a subscriber never observes torn intermediate states.
package observe

import "sync"

// Cell holds a value of type T and broadcasts replacements to subscribers.
// Values stored in a cell must be treated as immutable snapshots: "update"
// means constructing a new value and replacing the slot.
type Cell[T any] struct {
	// notifyMu serializes Set/Update/Subscribe so that subscriber callbacks
	// for one cell run one at a time and in write order.
	notifyMu sync.Mutex

	mu     sync.RWMutex
	val    T
	subs   map[int]func(T)
	nextID int
}

// NewCell builds a cell holding the initial value.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{
		val:  initial,
		subs: make(map[int]func(T)),
	}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.val
}

// Set replaces the value and notifies all subscribers with the new value.
func (c *Cell[T]) Set(v T) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	c.store(v)
	c.broadcast(v)
}

// Update applies an atomic read-modify-write: f receives the current value
// and returns its replacement. The returned value is also broadcast and
// returned to the caller. No other writer can interleave between the read
// and the write.
func (c *Cell[T]) Update(f func(T) T) T {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	v := f(c.Get())
	c.store(v)
	c.broadcast(v)
	return v
}

// Subscribe registers fn, invokes it immediately with the current value, and
// returns a cancel function that unregisters it. fn is subsequently invoked
// for every Set/Update in write order.
func (c *Cell[T]) Subscribe(fn func(T)) func() {
	c.notifyMu.Lock()
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	v := c.val
	c.mu.Unlock()
	fn(v)
	c.notifyMu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *Cell[T]) store(v T) {
	c.mu.Lock()
	c.val = v
	c.mu.Unlock()
}

// broadcast is called with notifyMu held.
func (c *Cell[T]) broadcast(v T) {
	c.mu.RLock()
	fns := make([]func(T), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.RUnlock()
	for _, fn := range fns {
		fn(v)
	}
}
