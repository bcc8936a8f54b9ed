/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memory provides an in-memory implementation of the DataStore interface
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/dddlib/errors"
)

// DataStore is an in-memory datastore.DataStore[T]. It is safe for concurrent use.
type DataStore[T any] struct {
	mu      sync.RWMutex
	data    map[string]T
	keyFunc func(entity T) string
}

// New creates an empty DataStore that files entities under keyFunc(entity).
func New[T any](keyFunc func(T) string) *DataStore[T] {
	return &DataStore[T]{
		data:    make(map[string]T),
		keyFunc: keyFunc,
	}
}

// GetOne retrieves an entity by key
func (m *DataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if entity, exists := m.data[key]; exists {
		return &entity, nil
	}

	return nil, errors.NewNotFoundError(entityName[T](), key)
}

// Put stores an entity, overwriting any entity with the same key
func (m *DataStore[T]) Put(ctx context.Context, entity T) error {
	key := m.keyFunc(entity)
	if key == "" {
		return errors.NewValidationError("key", "unable to extract key from entity")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = entity
	return nil
}

// Create stores an entity unless one with the same key already exists
func (m *DataStore[T]) Create(ctx context.Context, entity T) error {
	key := m.keyFunc(entity)
	if key == "" {
		return errors.NewValidationError("key", "unable to extract key from entity")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; exists {
		return errors.NewAlreadyExistsError(entityName[T](), key)
	}
	m.data[key] = entity
	return nil
}

// Delete removes an entity by key
func (m *DataStore[T]) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists {
		return errors.NewNotFoundError(entityName[T](), key)
	}

	delete(m.data, key)
	return nil
}

// Keys returns the stored keys in sorted order
func (m *DataStore[T]) Keys() []string {
	m.mu.RLock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	m.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// Count returns the number of stored entities
func (m *DataStore[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all data
func (m *DataStore[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]T)
}

func entityName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
