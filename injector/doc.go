/*
Package injector implements a process-wide, type-keyed service registry.

The registry holds at most one service per distinct Go type. Bootstrap code
registers concrete implementations, and consumers later resolve them by type
without explicit wiring:

	r := injector.Instance()

	injector.Set[*Mailer](r, NewMailer(cfg))
	injector.Set[datastore.DataStore[User]](r, userStore)

	mailer, err := injector.Get[*Mailer](r)        // errors.ErrNotFound if missing
	users, ok := injector.TryGet[datastore.DataStore[User]](r)

Registering a type again replaces the previous service (last writer wins).
Register pointers or interfaces so every caller shares the same instance; the
registry keeps the instance reachable for as long as it stays registered.

Every type gets a TypeID on first use. Ids are stable for the life of the
process, distinct per type and never reused. All operations are serialized
by a single lock and each one is atomic with respect to the others.
*/
package injector
