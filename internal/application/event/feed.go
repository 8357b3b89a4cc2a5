// Package event provides synchronous fan-out notification channels.
package event

// Feed delivers published values to every subscriber, synchronously and in
// subscription order. The zero Feed is ready to use.
type Feed[T any] struct {
	subs []*subscription[T]
}

type subscription[T any] struct {
	fn     func(T)
	closed bool
}

// Subscribe registers fn and returns a function that removes it.
func (f *Feed[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	sub := &subscription[T]{fn: fn}
	f.subs = append(f.subs, sub)
	return func() {
		if sub.closed {
			return
		}
		sub.closed = true
		for i, s := range f.subs {
			if s == sub {
				f.subs = append(f.subs[:i:i], f.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish calls every subscriber with v before returning.
// Subscribers removed during delivery are not called.
func (f *Feed[T]) Publish(v T) {
	subs := f.subs
	for _, s := range subs {
		if s.closed {
			continue
		}
		s.fn(v)
	}
}

// Len returns the number of subscribers.
func (f *Feed[T]) Len() int {
	return len(f.subs)
}
