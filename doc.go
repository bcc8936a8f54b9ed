/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package dddlib is a small service-location toolkit for domain-driven Go
services. Services are registered and resolved by their static type through a
process-wide injector, so wiring code never passes string keys or type
assertions around.

Packages:
  - injector: the type-keyed registry and its process-wide Instance
  - datastore: DataStore[T] and per-entity IndexMap[T], stored in the injector
  - datastore/memory, datastore/ddb: in-memory and DynamoDB backends
  - pipeline: message/cell contracts and the pipeline head registration
  - config, logger, bootstrap: YAML/.env configuration, zap logging and wiring

Basic Usage:

	dddlib.Set[Clock](systemClock{})
	dddlib.Set[*Billing](billing)

	clock := dddlib.MustGet[Clock]()
	if b, ok := dddlib.TryGet[*Billing](); ok {
		b.Charge(ctx, clock.Now())
	}

A second Set for the same type replaces the first. Get reports a missing
service as an error matching errors.ErrNotFound; TryGet reports it as false.
*/
package dddlib
