package scrollspy

import "sync"

// ScrollEvent is one scroll notification from the rendering host.
type ScrollEvent struct {
	Offset float64   `json:"offset"`
	Layout LayoutMap `json:"layout"`
}

// Feed fans scroll events out to subscribers in publish order.
type Feed struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(ScrollEvent)
	order  []int
}

// NewFeed creates an empty Feed.
func NewFeed() *Feed {
	return &Feed{subs: make(map[int]func(ScrollEvent))}
}

// Subscribe registers fn and returns a cancel function. Cancel is idempotent
// and, once it returns, fn will not be called again. fn must not call cancel
// itself.
func (f *Feed) Subscribe(fn func(ScrollEvent)) (cancel func()) {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = fn
	f.order = append(f.order, id)
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.subs, id)
			for i, v := range f.order {
				if v == id {
					f.order = append(f.order[:i], f.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Publish delivers ev to every current subscriber, oldest first. The read
// lock is held for the whole delivery so a concurrent cancel waits for it.
func (f *Feed) Publish(ev ScrollEvent) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, id := range f.order {
		f.subs[id](ev)
	}
}

// Len returns the number of active subscribers.
func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs)
}
