/*
Package datastore defines the persistence contract that services resolve
through the injector.

The main interface is DataStore[T], which provides generic CRUD operations for any entity type T:

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key string) (*T, error)
	    Put(ctx context.Context, entity T) error
	    Create(ctx context.Context, entity T) error
	    Delete(ctx context.Context, key string) error
	}

Bootstrap code registers one DataStore per entity type and consumers resolve it:

	datastore.Register[User](injector.Instance(), memory.New(func(u User) string { return u.ID }))

	users, err := datastore.Resolve[User](injector.Instance())

Key templates for backends with composite keys are registered the same way:

	datastore.RegisterIndexMap[User](r, map[string]string{
	    "PK": "USER#{ID}",
	    "SK": "USER#{ID}",
	})

Implementations:
  - ddb: DynamoDB implementation with support for single-table design
  - memory: in-memory implementation for tests and local runs
*/
package datastore
