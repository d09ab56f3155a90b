package events

import "sync"

// Listeners is a typed in-process subscriber list. Handlers run synchronously
// in subscription order, outside the list's lock.
type Listeners[E any] struct {
	mu   sync.RWMutex
	next int
	subs []subscription[E]
}

type subscription[E any] struct {
	id int
	fn func(E)
}

// Subscribe registers fn and returns a function that removes it.
func (l *Listeners[E]) Subscribe(fn func(E)) func() {
	if fn == nil {
		return func() {}
	}
	l.mu.Lock()
	l.next++
	id := l.next
	l.subs = append(l.subs, subscription[E]{id: id, fn: fn})
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(id) })
	}
}

func (l *Listeners[E]) Emit(event E) {
	l.mu.RLock()
	fns := make([]func(E), 0, len(l.subs))
	for _, s := range l.subs {
		fns = append(fns, s.fn)
	}
	l.mu.RUnlock()

	for _, fn := range fns {
		fn(event)
	}
}

func (l *Listeners[E]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.subs)
}

func (l *Listeners[E]) remove(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, s := range l.subs {
		if s.id == id {
			l.subs = append(l.subs[:i], l.subs[i+1:]...)
			return
		}
	}
}
