/*
Package errors provides semantic error types for dddlib.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound           = errors.New("not found")
	    ErrAlreadyExists      = errors.New("already exists")
	    ErrInvalidInput       = errors.New("invalid input")
	    ErrNoIndexMap         = errors.New("no index map found for type")
	    ErrTypeMismatch       = errors.New("storage cell type mismatch")
	    ErrTypeIDExhausted    = errors.New("type id space exhausted")
	    ErrNotEnoughResources = errors.New("not enough resources")
	)

Usage:

	// Fail-fast lookup of a registered service
	users, err := injector.Get[datastore.DataStore[User]](injector.Instance())
	if err != nil {
	    if errors.IsNotFound(err) {
	        // bootstrap never wired a user store
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewServiceNotFoundError("*app.Mailer")
	err := errors.NewNotFoundError("User", "123")
	err := errors.NewValidationError("stores.users.table", "required")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
