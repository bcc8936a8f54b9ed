/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package injector

import (
	"fmt"
	"math"
	"reflect"
	"sync"

	"github.com/suparena/dddlib/errors"
)

// TypeID identifies a Go type for the lifetime of the process.
// Ids are assigned on first use, start at 1 and are never reused.
type TypeID uint64

var (
	typeIDsMu  sync.RWMutex
	typeIDs    = make(map[reflect.Type]TypeID)
	lastTypeID TypeID
)

// TypeOf returns the TypeID of T, assigning one if T has never been seen.
func TypeOf[T any]() TypeID {
	return typeIDOf(reflect.TypeOf((*T)(nil)).Elem())
}

func typeIDOf(t reflect.Type) TypeID {
	typeIDsMu.RLock()
	id, ok := typeIDs[t]
	typeIDsMu.RUnlock()
	if ok {
		return id
	}

	typeIDsMu.Lock()
	defer typeIDsMu.Unlock()

	// another goroutine may have assigned it between the two locks
	if id, ok := typeIDs[t]; ok {
		return id
	}
	id, err := nextTypeID(lastTypeID)
	if err != nil {
		panic(err)
	}
	lastTypeID = id
	typeIDs[t] = id
	return id
}

// nextTypeID never wraps around.
func nextTypeID(last TypeID) (TypeID, error) {
	if last == math.MaxUint64 {
		return 0, fmt.Errorf("%w: %d types already assigned", errors.ErrTypeIDExhausted, uint64(last))
	}
	return last + 1, nil
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
