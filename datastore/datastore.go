/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/dddlib/injector"
)

// DataStore persists entities of type T. Implementations are registered in
// the injector as DataStore[T] so repositories resolve them by entity type.
type DataStore[T any] interface {
	GetOne(ctx context.Context, key string) (*T, error)

	// Put stores entity, replacing any entity with the same key.
	Put(ctx context.Context, entity T) error

	// Create stores entity only if its key is unused; otherwise it returns an
	// error matching errors.ErrAlreadyExists.
	Create(ctx context.Context, entity T) error

	Delete(ctx context.Context, key string) error
}

// IndexMap maps key attributes of T to templates such as "USER#{ID}".
// Every instantiation is a distinct type, so each entity's index map lives in
// its own injector slot.
type IndexMap[T any] map[string]string

// RegisterIndexMap associates T with the given key templates (PK, SK, etc.),
// replacing any earlier index map for T.
func RegisterIndexMap[T any](r *injector.Registry, idxMap map[string]string) {
	injector.Set(r, IndexMap[T](idxMap))
}

// GetIndexMap retrieves the index map for T, if any.
func GetIndexMap[T any](r *injector.Registry) (IndexMap[T], bool) {
	return injector.TryGet[IndexMap[T]](r)
}

// Register makes ds the DataStore for T.
func Register[T any](r *injector.Registry, ds DataStore[T]) {
	injector.Set(r, ds)
}

// Resolve returns the DataStore registered for T.
func Resolve[T any](r *injector.Registry) (DataStore[T], error) {
	return injector.Get[DataStore[T]](r)
}
