/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package bootstrap wires a service's logger, configuration and datastores
// into an injector.Registry from a config.Config.
//
//	cfg, _ := config.Load(".env", "services.yaml")
//	r := injector.Instance()
//	log, _ := bootstrap.Wire(cfg, r)
//	accounts, _ := bootstrap.ProvideStore(ctx, r, "accounts", testmodels.AccountKey)
package bootstrap
