/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when no service is registered for a type, or
	// when a datastore has no entity under a key
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when attempting to create an entity that already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoIndexMap is returned when no index map is registered for an entity type
	ErrNoIndexMap = errors.New("no index map found for type")

	// ErrTypeMismatch is returned when a storage cell does not hold the type it is tagged with
	ErrTypeMismatch = errors.New("storage cell type mismatch")

	// ErrTypeIDExhausted is raised when no more type ids can be assigned
	ErrTypeIDExhausted = errors.New("type id space exhausted")

	// ErrNotEnoughResources is returned by non-blocking pipeline operations
	// that cannot complete right now
	ErrNotEnoughResources = errors.New("not enough resources")
)

// NotFoundError represents a failed lookup. Key is empty for injector lookups.
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("no service registered for type %s", e.Type)
	}
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// TypeMismatchError reports a storage cell whose tag or payload disagrees
// with the type it was looked up as.
type TypeMismatchError struct {
	Type string
	Want uint64
	Got  uint64
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("storage cell for %s tagged %d, expected %d", e.Type, e.Got, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewServiceNotFoundError creates a NotFoundError for an unregistered service type
func NewServiceNotFoundError(serviceType string) error {
	return &NotFoundError{Type: serviceType}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entityType, key string) error {
	return &AlreadyExistsError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewTypeMismatchError creates a new TypeMismatchError
func NewTypeMismatchError(typeName string, want, got uint64) error {
	return &TypeMismatchError{Type: typeName, Want: want, Got: got}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNoIndexMap checks if an error reports a missing index map
func IsNoIndexMap(err error) bool {
	return errors.Is(err, ErrNoIndexMap)
}

// IsTypeMismatch checks if an error is a storage cell type mismatch
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

// IsNotEnoughResources checks if an error reports a pipeline stage that cannot proceed
func IsNotEnoughResources(err error) bool {
	return errors.Is(err, ErrNotEnoughResources)
}
