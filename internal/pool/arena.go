package pool

// Arena is a slot allocator with a free list. Released slots are handed out
// again before the arena grows, and item pointers stay valid for the life of
// the arena.
type Arena[T any] struct {
	slots  []*T
	active []bool
	free   []int
	live   int
}

// NewArena creates an arena with capacity pre-allocated slots.
func NewArena[T any](capacity int) *Arena[T] {
	a := &Arena[T]{
		slots:  make([]*T, 0, capacity),
		active: make([]bool, 0, capacity),
		free:   make([]int, 0, capacity),
	}
	for i := 0; i < capacity; i++ {
		a.slots = append(a.slots, new(T))
		a.active = append(a.active, false)
		a.free = append(a.free, capacity-1-i)
	}
	return a
}

// Acquire returns a zeroed item in a free slot, growing the arena only when
// no released slot is available.
func (a *Arena[T]) Acquire() (int, *T) {
	var id int
	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
		var zero T
		*a.slots[id] = zero
	} else {
		id = len(a.slots)
		a.slots = append(a.slots, new(T))
		a.active = append(a.active, false)
	}
	a.active[id] = true
	a.live++
	return id, a.slots[id]
}

// Release returns the slot to the free list. Releasing an inactive or unknown
// slot does nothing.
func (a *Arena[T]) Release(id int) {
	if id < 0 || id >= len(a.slots) || !a.active[id] {
		return
	}
	a.active[id] = false
	a.free = append(a.free, id)
	a.live--
}

// Get returns the item in an active slot.
func (a *Arena[T]) Get(id int) (*T, bool) {
	if id < 0 || id >= len(a.slots) || !a.active[id] {
		return nil, false
	}
	return a.slots[id], true
}

// Each calls fn for every active slot in slot order. fn may release the slot
// it is given.
func (a *Arena[T]) Each(fn func(id int, item *T)) {
	for id := range a.slots {
		if a.active[id] {
			fn(id, a.slots[id])
		}
	}
}

// Len returns the number of active slots.
func (a *Arena[T]) Len() int { return a.live }

// Cap returns the number of slots ever allocated.
func (a *Arena[T]) Cap() int { return len(a.slots) }

// Reset releases every slot.
func (a *Arena[T]) Reset() {
	a.free = a.free[:0]
	for id := len(a.slots) - 1; id >= 0; id-- {
		a.active[id] = false
		a.free = append(a.free, id)
	}
	a.live = 0
}
