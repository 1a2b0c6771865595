// Package notify provides the ordered, cancellable subscriber list shared
// by canvas resize notifications and host lifecycle events.
package notify

// List delivers values of type T to subscribers in subscription order.
//
// Subscribers may subscribe or cancel from inside a callback: a delivery
// runs over the subscribers present when it started, skipping any that
// were cancelled meanwhile.
//
// The zero List is ready to use. List is NOT safe for concurrent use.
type List[T any] struct {
	nextID int
	fns    map[int]func(T)
	order  []int
}

// Add registers fn and returns a function that removes it.
// Calling the returned function more than once is safe.
func (l *List[T]) Add(fn func(T)) (cancel func()) {
	if l.fns == nil {
		l.fns = make(map[int]func(T))
	}
	id := l.nextID
	l.nextID++
	l.fns[id] = fn
	l.order = append(l.order, id)
	return func() {
		delete(l.fns, id)
	}
}

// Notify calls every live subscriber with v.
func (l *List[T]) Notify(v T) {
	live := l.order[:0]
	for _, id := range l.order {
		if _, ok := l.fns[id]; ok {
			live = append(live, id)
		}
	}
	l.order = live

	for _, id := range append([]int(nil), live...) {
		if fn, ok := l.fns[id]; ok {
			fn(v)
		}
	}
}

// Len returns the number of live subscribers.
func (l *List[T]) Len() int {
	return len(l.fns)
}

// Reset drops every subscriber.
func (l *List[T]) Reset() {
	l.fns = nil
	l.order = nil
}
