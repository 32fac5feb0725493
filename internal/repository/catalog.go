// Package repository holds the event catalog and the sources it can be
// seeded from.
package repository

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Shivanand-hulikatti/eventease-catalog/internal/model"
)

// ErrNotFound is returned when a requested event does not exist.
var ErrNotFound = errors.New("not found")

// ErrEventFull is returned when an event has no remaining capacity.
var ErrEventFull = errors.New("event is fully booked")

// Catalog owns an ordered set of events. It is seeded once and afterwards
// only RegisteredCount changes, through Register or TryRegister.
//
// Every query hands back copies, so callers cannot mutate catalog state
// out-of-band. The write lock covers the whole find-compare-increment step
// of a registration, which keeps RegisteredCount <= Capacity under
// concurrent callers.
type Catalog struct {
	mu     sync.RWMutex
	events []model.Event
}

// NewCatalog constructs a Catalog and seeds it with the given events.
func NewCatalog(seed []model.Event) *Catalog {
	c := &Catalog{}
	c.Seed(seed)
	return c
}

// Seed populates an empty catalog. It reports whether anything was loaded;
// seeding an already populated catalog is a no-op.
func (c *Catalog) Seed(events []model.Event) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.events) > 0 || len(events) == 0 {
		return false
	}
	c.events = slices.Clone(events)
	return true
}

// Len returns the number of events held.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.events)
}

// All returns every event in insertion order.
func (c *Catalog) All() []model.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter(func(model.Event) bool { return true })
}

// ByID returns the first event with the given id.
func (c *Catalog) ByID(id int) (model.Event, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return c.events[i], true
	}
	return model.Event{}, false
}

// ByLocation returns the events whose location contains substr, ignoring
// case. An empty substr matches every event.
func (c *Catalog) ByLocation(substr string) []model.Event {
	needle := strings.ToLower(substr)

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter(func(e model.Event) bool {
		return strings.Contains(strings.ToLower(e.Location), needle)
	})
}

// Upcoming returns the events dated strictly after now, earliest first.
// Events sharing a date keep their insertion order.
func (c *Catalog) Upcoming(now time.Time) []model.Event {
	c.mu.RLock()
	out := c.filter(func(e model.Event) bool { return e.Date.After(now) })
	c.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b model.Event) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

// Register takes one seat on the event with the given id. It returns false,
// without mutating anything, when the event is unknown or already full.
func (c *Catalog) Register(id int) bool {
	_, err := c.TryRegister(id)
	return err == nil
}

// TryRegister is Register with the failure cause reported: ErrNotFound or
// ErrEventFull. On success it returns the updated event.
func (c *Catalog) TryRegister(id int) (model.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return model.Event{}, ErrNotFound
	}
	e := &c.events[i]
	if e.RegisteredCount >= e.Capacity {
		return *e, ErrEventFull
	}
	e.RegisteredCount++
	return *e, nil
}

// indexOf must be called with mu held.
func (c *Catalog) indexOf(id int) int {
	return slices.IndexFunc(c.events, func(e model.Event) bool { return e.ID == id })
}

// filter must be called with mu held. The result is never nil.
func (c *Catalog) filter(keep func(model.Event) bool) []model.Event {
	out := make([]model.Event, 0, len(c.events))
	for _, e := range c.events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
