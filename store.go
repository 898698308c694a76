package futures

import (
	"sync"

	"golang.org/x/exp/maps"
)

// Store is a keyed registry of pending promises, for correlating requests
// with eventual replies: a consumer registers interest under a key and an
// event source settles by key. Settling removes the entry, so each key
// settles at most once per registration.
type Store[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]*Promise[V]
}

func NewStore[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{
		m: make(map[K]*Promise[V]),
	}
}

// Get returns the promise registered under k, or nil.
func (s *Store[K, V]) Get(k K) *Promise[V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m[k]
}

// GetOrCreate returns the promise registered under k, creating it if
// needed. The second return value reports whether it was created by this
// call.
func (s *Store[K, V]) GetOrCreate(k K) (*Promise[V], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, exists := s.m[k]
	if !exists {
		p = NewPromise[V]()
		s.m[k] = p
	}
	return p, !exists
}

// Succeed fulfills and removes the promise registered under k, if any.
// Continuations attached to its future run before Succeed returns.
func (s *Store[K, V]) Succeed(k K, x V) bool {
	p := s.take(k)
	if p == nil {
		return false
	}
	return p.Succeed(x)
}

// Fail rejects and removes the promise registered under k, if any.
func (s *Store[K, V]) Fail(k K, err error) bool {
	p := s.take(k)
	if p == nil {
		return false
	}
	return p.Fail(err)
}

// take removes and returns the entry for k. Settlement happens outside
// the store lock so that continuations may re-enter the store.
func (s *Store[K, V]) take(k K) *Promise[V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, exists := s.m[k]
	if exists {
		delete(s.m, k)
	}
	return p
}

// Delete removes the entry for k if it is p, or unconditionally if p is
// nil. The promise itself is left unsettled.
func (s *Store[K, V]) Delete(k K, p *Promise[V]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p2 := s.m[k]
	if p == nil || p == p2 {
		delete(s.m, k)
	}
}

// Len returns the number of pending entries.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// ForEach calls fn for each pending entry until fn returns false. It
// reports whether the iteration ran to completion.
func (s *Store[K, V]) ForEach(fn func(k K, p *Promise[V]) bool) bool {
	s.mu.RLock()
	keys := maps.Keys(s.m)
	s.mu.RUnlock()
	for _, k := range keys {
		s.mu.RLock()
		p, exists := s.m[k]
		s.mu.RUnlock()
		if exists {
			if !fn(k, p) {
				return false
			}
		}
	}
	return true
}
