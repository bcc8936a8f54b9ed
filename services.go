/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dddlib

import "github.com/suparena/dddlib/injector"

// Set registers svc as the process-wide service for T, replacing any earlier
// registration.
func Set[T any](svc T) {
	injector.Set(injector.Instance(), svc)
}

// Get returns the process-wide service for T, or an error matching
// errors.ErrNotFound.
func Get[T any]() (T, error) {
	return injector.Get[T](injector.Instance())
}

// TryGet returns the process-wide service for T and whether it was found.
func TryGet[T any]() (T, bool) {
	return injector.TryGet[T](injector.Instance())
}

// MustGet is Get for wiring code; it panics when T is not registered.
func MustGet[T any]() T {
	return injector.MustGet[T](injector.Instance())
}
