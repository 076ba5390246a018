// Package datelock provides a mutex set keyed by string, used to
// serialize booking commits per calendar date.
package datelock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// KeyedMutex hands out one mutex per key. Entries are dropped as soon as
// no goroutine holds or waits on them, so the set stays small even with
// an unbounded key space.
type KeyedMutex struct {
	mu   sync.Mutex
	held map[string]*entry
}

func New() *KeyedMutex {
	return &KeyedMutex{held: make(map[string]*entry)}
}

// Lock blocks until the mutex for key is acquired and returns the
// matching unlock function. The unlock function must be called exactly
// once.
func (k *KeyedMutex) Lock(key string) func() {
	k.mu.Lock()
	e, ok := k.held[key]
	if !ok {
		e = &entry{}
		k.held[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.held, key)
		}
		k.mu.Unlock()
	}
}
