/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package injector

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/suparena/dddlib/errors"
)

// Registry stores at most one service per distinct Go type.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	cells map[TypeID]cell
	log   *zap.Logger
}

var (
	instance     *Registry
	instanceOnce sync.Once
)

// Instance returns the process-wide registry, creating it on first call.
func Instance() *Registry {
	instanceOnce.Do(func() {
		instance = newRegistry()
	})
	return instance
}

func newRegistry() *Registry {
	return &Registry{
		cells: make(map[TypeID]cell),
		log:   zap.NewNop(),
	}
}

// SetLogger installs the logger used for registration events.
// A nil logger disables logging.
func (r *Registry) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = log
}

// Set registers svc as the service for T, replacing any earlier registration.
// Register pointer or interface types to share a single instance.
func Set[T any](r *Registry, svc T) {
	c := newSlot(svc)

	r.mu.Lock()
	_, replaced := r.cells[c.id]
	r.cells[c.id] = c
	log := r.log
	r.mu.Unlock()

	if replaced {
		log.Debug("service replaced", zap.String("type", c.typeName()), zap.Uint64("typeId", uint64(c.id)))
		return
	}
	log.Debug("service registered", zap.String("type", c.typeName()), zap.Uint64("typeId", uint64(c.id)))
}

// TryGet returns the service registered for T. When there is none it returns
// the zero value of T and false.
func TryGet[T any](r *Registry) (T, bool) {
	svc, ok, err := lookup[T](r)
	if err != nil {
		panic(err)
	}
	return svc, ok
}

// Get returns the service registered for T, or an error matching
// errors.ErrNotFound when there is none.
func Get[T any](r *Registry) (T, error) {
	svc, ok, err := lookup[T](r)
	if err != nil {
		return svc, err
	}
	if !ok {
		return svc, errors.NewServiceNotFoundError(typeName[T]())
	}
	return svc, nil
}

// MustGet is like Get but panics when T is not registered.
func MustGet[T any](r *Registry) T {
	svc, err := Get[T](r)
	if err != nil {
		panic(err)
	}
	return svc
}

// Has reports whether a service is registered for T.
func Has[T any](r *Registry) bool {
	id := TypeOf[T]()
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.cells[id]
	return ok
}

// Len returns the number of registered services.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cells)
}

// Types returns the sorted names of all registered service types.
func (r *Registry) Types() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.cells))
	for _, c := range r.cells {
		names = append(names, c.typeName())
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

func lookup[T any](r *Registry) (T, bool, error) {
	id := TypeOf[T]()

	r.mu.RLock()
	c, ok := r.cells[id]
	r.mu.RUnlock()

	if !ok {
		var zero T
		return zero, false, nil
	}
	svc, err := unwrap[T](c)
	return svc, true, err
}
