/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package pipeline

import (
	"github.com/suparena/dddlib/injector"
)

// Msg is a message passed from chain to chain.
type Msg interface {
	// Rollback undoes the effects of a message that could not be delivered.
	Rollback()
	Clone() Msg
}

// Cell is one stage in a chain of cells.
type Cell interface {
	// Read blocks until the next message is available.
	Read() (Msg, error)

	// TryRead returns errors.ErrNotEnoughResources when no message is ready.
	TryRead() (Msg, error)

	// Write blocks until msg is accepted.
	Write(msg Msg) error

	// TryWrite returns errors.ErrNotEnoughResources when msg cannot be accepted now.
	TryWrite(msg Msg) error

	// ConnectTo makes this cell read from src.
	ConnectTo(src Cell)

	// IsPassive reports whether this cell is a passive generator.
	IsPassive() bool
}

// SetHead registers c as the active chain head.
func SetHead(r *injector.Registry, c Cell) {
	injector.Set[Cell](r, c)
}

// Head returns the active chain head, or an error matching
// errors.ErrNotFound when none was registered.
func Head(r *injector.Registry) (Cell, error) {
	return injector.Get[Cell](r)
}

// TryHead returns the active chain head if there is one.
func TryHead(r *injector.Registry) (Cell, bool) {
	return injector.TryGet[Cell](r)
}
