package history

import (
	"container/list"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/aesthetic/pkg/namegen"
)

// DefaultCapacity matches the number of names the generator UI kept.
const DefaultCapacity = 1000

// History keeps the most recent generated names in memory, newest first.
// When full, adding a name drops the oldest one. It is safe for concurrent use.
type History struct {
	capacity int
	items    map[uuid.UUID]*list.Element
	order    *list.List
	mu       sync.Mutex
	onEvict  func(namegen.Result)
	total    int
}

// New creates a history holding up to capacity entries.
// The capacity must be positive, otherwise it panics.
func New(capacity int) *History {
	if capacity <= 0 {
		panic("history capacity must be positive")
	}
	return &History{
		capacity: capacity,
		items:    make(map[uuid.UUID]*list.Element),
		order:    list.New(),
	}
}

// SetEvictCallback registers fn to be called for every entry dropped by
// capacity. Clear does not call it.
func (h *History) SetEvictCallback(fn func(namegen.Result)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onEvict = fn
}

// Add records res as the newest entry. Adding an ID already present moves it
// to the front and replaces the stored result.
func (h *History) Add(res namegen.Result) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.total++
	if elem, ok := h.items[res.ID]; ok {
		elem.Value = res
		h.order.MoveToFront(elem)
		return
	}

	h.items[res.ID] = h.order.PushFront(res)
	if h.order.Len() > h.capacity {
		h.evictOldest()
	}
}

// Get returns the entry with the given ID without changing the order.
func (h *History) Get(id uuid.UUID) (namegen.Result, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if elem, ok := h.items[id]; ok {
		return elem.Value.(namegen.Result), true
	}
	return namegen.Result{}, false
}

// List returns up to limit entries, newest first. A limit <= 0 returns all.
func (h *History) List(limit int) []namegen.Result {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := h.order.Len()
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]namegen.Result, 0, n)
	for elem := h.order.Front(); elem != nil && len(out) < n; elem = elem.Next() {
		out = append(out, elem.Value.(namegen.Result))
	}
	return out
}

// Names returns the stored names, newest first.
func (h *History) Names() []string {
	entries := h.List(0)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.order.Len()
}

// Total returns the number of names added since creation or the last Clear,
// including evicted ones.
func (h *History) Total() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.total
}

func (h *History) Capacity() int { return h.capacity }

// Clear drops every entry and resets the total.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.items = make(map[uuid.UUID]*list.Element)
	h.order.Init()
	h.total = 0
}

// Must be called with lock held.
func (h *History) evictOldest() {
	elem := h.order.Back()
	if elem == nil {
		return
	}
	h.order.Remove(elem)
	res := elem.Value.(namegen.Result)
	delete(h.items, res.ID)
	if h.onEvict != nil {
		h.onEvict(res)
	}
}
