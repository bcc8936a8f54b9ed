/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/dddlib/datastore"
	"github.com/suparena/dddlib/datastore/memory"
	"github.com/suparena/dddlib/datastore/testmodels"
	"github.com/suparena/dddlib/errors"
)

func TestMemoryDataStore(t *testing.T) {
	ctx := context.Background()

	t.Run("BasicOperations", func(t *testing.T) {
		store := memory.New(testmodels.AccountKey)

		account := testmodels.Account{
			ID:        "123",
			Email:     strfmt.Email("ann@example.com"),
			Name:      "Ann",
			CreatedAt: strfmt.DateTime(time.Now()),
		}
		if err := store.Put(ctx, account); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		retrieved, err := store.GetOne(ctx, "123")
		if err != nil {
			t.Fatalf("GetOne failed: %v", err)
		}
		if retrieved.ID != "123" || retrieved.Name != "Ann" {
			t.Fatalf("Retrieved entity mismatch: %+v", retrieved)
		}

		if err := store.Delete(ctx, "123"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		_, err = store.GetOne(ctx, "123")
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got: %v", err)
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		store := memory.New(testmodels.AccountKey)

		store.Put(ctx, testmodels.Account{ID: "1", Name: "One"})
		store.Put(ctx, testmodels.Account{ID: "1", Name: "Uno"})

		got, err := store.GetOne(ctx, "1")
		if err != nil {
			t.Fatalf("GetOne failed: %v", err)
		}
		if got.Name != "Uno" {
			t.Fatalf("Expected last Put to win, got %q", got.Name)
		}
		if store.Count() != 1 {
			t.Fatalf("Expected count 1, got %d", store.Count())
		}
	})

	t.Run("Create", func(t *testing.T) {
		store := memory.New(testmodels.AccountKey)

		if err := store.Create(ctx, testmodels.Account{ID: "1", Name: "One"}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		err := store.Create(ctx, testmodels.Account{ID: "1", Name: "Uno"})
		if !errors.IsAlreadyExists(err) {
			t.Fatalf("Expected already exists error, got: %v", err)
		}
		got, _ := store.GetOne(ctx, "1")
		if got.Name != "One" {
			t.Fatalf("Create must not overwrite, got %q", got.Name)
		}

		if err := store.Create(ctx, testmodels.Account{}); !errors.IsValidationError(err) {
			t.Fatalf("Expected validation error, got: %v", err)
		}
	})

	t.Run("ConcurrentCreateHasOneWinner", func(t *testing.T) {
		store := memory.New(testmodels.AccountKey)

		var wg sync.WaitGroup
		var mu sync.Mutex
		created := 0
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				if err := store.Create(ctx, testmodels.Account{ID: "same", Name: fmt.Sprint(i)}); err == nil {
					mu.Lock()
					created++
					mu.Unlock()
				}
			}(i)
		}
		wg.Wait()

		if created != 1 {
			t.Fatalf("Expected exactly one successful Create, got %d", created)
		}
	})

	t.Run("ValidationAndMissing", func(t *testing.T) {
		store := memory.New(testmodels.AccountKey)

		err := store.Put(ctx, testmodels.Account{Name: "no id"})
		if !errors.IsValidationError(err) {
			t.Fatalf("Expected validation error, got: %v", err)
		}

		err = store.Delete(ctx, "missing")
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got: %v", err)
		}
		expected := `testmodels.Account with key "missing" not found`
		if err.Error() != expected {
			t.Fatalf("Expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("HelperMethods", func(t *testing.T) {
		store := memory.New(testmodels.AccountKey)
		for _, id := range []string{"b", "c", "a"} {
			store.Put(ctx, testmodels.Account{ID: id})
		}

		keys := store.Keys()
		if fmt.Sprint(keys) != "[a b c]" {
			t.Fatalf("Expected sorted keys [a b c], got %v", keys)
		}

		store.Clear()
		if store.Count() != 0 {
			t.Fatalf("Expected count 0 after clear, got %d", store.Count())
		}
	})

	t.Run("ConcurrentPuts", func(t *testing.T) {
		store := memory.New(testmodels.AccountKey)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				store.Put(ctx, testmodels.Account{ID: fmt.Sprintf("acct%d", i)})
			}(i)
		}
		wg.Wait()

		if store.Count() != 20 {
			t.Fatalf("Expected 20 accounts, got %d", store.Count())
		}
	})
}

// The memory store is the DataStore a service resolves after bootstrap.
func TestMemoryDataStoreSatisfiesInterface(t *testing.T) {
	var _ datastore.DataStore[testmodels.Account] = memory.New(testmodels.AccountKey)
}
