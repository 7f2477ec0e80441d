// Package repository provides in-memory, mutex-guarded storage for the
// timetable entities. Listing preserves insertion order so schedule
// generation sees entities in the order they were loaded.
package repository

import (
	"sync"

	"github.com/iiitdwd/timetable-api/pkg/errors"
)

// Entity is anything addressable by a string id.
type Entity interface {
	EntityID() string
}

// Store is a concurrency-safe in-memory collection of one entity kind.
type Store[T Entity] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

// NewStore constructs an empty store.
func NewStore[T Entity]() *Store[T] {
	return &Store[T]{items: make(map[string]T)}
}

// Put inserts or replaces an entity. Replacement keeps the original
// insertion position.
func (s *Store[T]) Put(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := item.EntityID()
	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = item
}

// Get fetches an entity by id.
func (s *Store[T]) Get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		var zero T
		return zero, errors.ErrNotFound
	}
	return item, nil
}

// List returns all entities in insertion order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Delete removes an entity by id.
func (s *Store[T]) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return errors.ErrNotFound
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear removes every entity.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]T)
	s.order = nil
}

// Len reports the number of stored entities.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
