package viewport

import (
	"sync"
	"sync/atomic"
)

// Stream is a broadcast of values to any number of subscribers. Handlers
// run synchronously on the publishing goroutine, in subscription order.
type Stream[T any] struct {
	mu   sync.Mutex
	subs []*Subscription
	fns  map[*Subscription]func(T)
}

// Subscription is a handle on one registered handler. Close releases it;
// once Close returns the handler is never invoked again.
type Subscription struct {
	active  atomic.Bool
	release func(*Subscription)
	once    sync.Once
}

func (s *Subscription) Close() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.active.Store(false)
		s.release(s)
	})
}

// Active reports whether the subscription still receives values.
func (s *Subscription) Active() bool {
	return s != nil && s.active.Load()
}

func (st *Stream[T]) Subscribe(fn func(T)) *Subscription {
	sub := &Subscription{release: st.remove}
	sub.active.Store(true)

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.fns == nil {
		st.fns = make(map[*Subscription]func(T))
	}
	st.subs = append(st.subs, sub)
	st.fns[sub] = fn
	return sub
}

func (st *Stream[T]) remove(sub *Subscription) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i, s := range st.subs {
		if s == sub {
			st.subs = append(st.subs[:i:i], st.subs[i+1:]...)
			break
		}
	}
	delete(st.fns, sub)
}

// Publish delivers v to every active subscriber and returns how many
// handlers ran.
func (st *Stream[T]) Publish(v T) int {
	st.mu.Lock()
	subs := append([]*Subscription(nil), st.subs...)
	fns := make([]func(T), len(subs))
	for i, s := range subs {
		fns[i] = st.fns[s]
	}
	st.mu.Unlock()

	n := 0
	for i, s := range subs {
		if !s.Active() {
			continue
		}
		fns[i](v)
		n++
	}
	return n
}

// Len returns the number of live subscriptions.
func (st *Stream[T]) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.subs)
}
