/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/suparena/dddlib/config"
	"github.com/suparena/dddlib/datastore"
	"github.com/suparena/dddlib/datastore/ddb"
	"github.com/suparena/dddlib/datastore/memory"
	"github.com/suparena/dddlib/errors"
	"github.com/suparena/dddlib/injector"
	"github.com/suparena/dddlib/logger"
)

// Wire builds the logger described by cfg and registers it, together with
// cfg itself, in r. Later ProvideStore calls resolve both from r.
func Wire(cfg *config.Config, r *injector.Registry) (*zap.Logger, error) {
	log, err := logger.New(cfg.Log.Level, cfg.Log.Outputs, cfg.Log.ErrorOutputs)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	r.SetLogger(log.Named("injector"))
	injector.Set(r, log)
	injector.Set(r, cfg)

	log.Info("injector wired",
		zap.String("level", cfg.Log.Level),
		zap.Strings("stores", cfg.StoreNames()))
	return log, nil
}

// ProvideStore builds the backend configured for the named store and
// registers it in r as datastore.DataStore[T]. keyFunc is used by the memory
// backend; the dynamodb backend derives keys from the IndexMap[T] in r.
func ProvideStore[T any](ctx context.Context, r *injector.Registry, name string, keyFunc func(T) string) (datastore.DataStore[T], error) {
	cfg, err := injector.Get[*config.Config](r)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: configuration not wired: %w", err)
	}
	sc, err := cfg.Store(name)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	var ds datastore.DataStore[T]
	switch sc.Backend {
	case config.BackendMemory:
		if keyFunc == nil {
			return nil, errors.NewValidationError("keyFunc", fmt.Sprintf("required for the memory backend of store %q", name))
		}
		ds = memory.New(keyFunc)
	case config.BackendDynamoDB:
		client, err := dynamoClient(ctx, r, cfg)
		if err != nil {
			return nil, err
		}
		ds = ddb.NewDynamodbDataStore[T](client, sc.Table, r)
	default:
		return nil, fmt.Errorf("bootstrap: store %q has unknown backend %q", name, sc.Backend)
	}

	datastore.Register(r, ds)

	log := injector.MustGet[*zap.Logger](r)
	log.Info("datastore wired",
		zap.String("store", name),
		zap.String("backend", sc.Backend),
		zap.String("table", sc.Table),
		zap.Uint64("typeId", uint64(injector.TypeOf[datastore.DataStore[T]]())))
	return ds, nil
}

// dynamoClient returns the DynamoDB client registered in r, creating and
// registering one from cfg on first use.
func dynamoClient(ctx context.Context, r *injector.Registry, cfg *config.Config) (ddb.API, error) {
	if client, ok := injector.TryGet[ddb.API](r); ok {
		return client, nil
	}

	client, err := ddb.NewClient(ctx, ddb.ClientOptions{
		Region:          cfg.AWS.Region,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	injector.Set[ddb.API](r, client)
	return client, nil
}
