/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dddlib

import (
	"testing"

	"github.com/suparena/dddlib/errors"
	"github.com/suparena/dddlib/injector"
)

type clock interface {
	Now() int64
}

type fixedClock struct{ at int64 }

func (c fixedClock) Now() int64 { return c.at }

type billing struct{ currency string }

type neverRegistered struct{ id int }

func TestShortcuts(t *testing.T) {
	t.Run("SetAndResolve", func(t *testing.T) {
		b := &billing{currency: "EUR"}
		Set(b)
		Set[clock](fixedClock{at: 42})

		got, err := Get[*billing]()
		if err != nil || got != b {
			t.Fatalf("Get returned %v, %v", got, err)
		}
		if c := MustGet[clock](); c.Now() != 42 {
			t.Errorf("Expected clock at 42, got %d", c.Now())
		}
		if same, ok := injector.TryGet[*billing](injector.Instance()); !ok || same != b {
			t.Error("shortcuts should share the process-wide injector")
		}
	})

	t.Run("Replace", func(t *testing.T) {
		Set(&billing{currency: "USD"})
		Set(&billing{currency: "JPY"})

		got, ok := TryGet[*billing]()
		if !ok || got.currency != "JPY" {
			t.Fatalf("Expected last registration to win, got %v", got)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if _, ok := TryGet[*neverRegistered](); ok {
			t.Fatal("Expected TryGet to report missing service")
		}
		if _, err := Get[*neverRegistered](); !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got %v", err)
		}
	})
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version != Version {
		t.Errorf("Expected version %s, got %s", Version, info.Version)
	}
	if info.GoVersion == "" {
		t.Error("Expected Go version to be populated")
	}
}
