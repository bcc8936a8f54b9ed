/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package injector

import (
	"github.com/suparena/dddlib/errors"
)

// cell is a type-erased storage cell tagged with the TypeID of its payload.
type cell interface {
	typeID() TypeID
	typeName() string
}

// slot holds the registered value of one concrete type. Slots are never
// mutated after construction; replacing a service stores a new slot.
type slot[T any] struct {
	id  TypeID
	val T
}

func newSlot[T any](val T) *slot[T] {
	return &slot[T]{id: TypeOf[T](), val: val}
}

func (s *slot[T]) typeID() TypeID { return s.id }

func (s *slot[T]) typeName() string { return typeName[T]() }

// unwrap is the checked downcast from a cell back to T.
func unwrap[T any](c cell) (T, error) {
	var zero T
	want := TypeOf[T]()
	if c.typeID() != want {
		return zero, errors.NewTypeMismatchError(typeName[T](), uint64(want), uint64(c.typeID()))
	}
	s, ok := c.(*slot[T])
	if !ok {
		// tag agrees but the payload does not
		return zero, errors.NewTypeMismatchError(typeName[T](), uint64(want), uint64(TypeID(0)))
	}
	return s.val, nil
}
