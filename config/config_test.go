/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/suparena/dddlib/errors"
)

// clearEnv unsets every override for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvLogLevel, EnvDynamoDBEndpoint, EnvAWSRegion, EnvAWSAccessKeyID, EnvAWSSecretAccessKey} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

const sampleYAML = `
log:
  level: debug
  outputs: [stdout]
aws:
  region: us-east-1
  endpoint: http://localhost:8000
stores:
  accounts:
    backend: dynamodb
    table: accounts
  sessions: {}
`

func TestParse(t *testing.T) {
	t.Run("FullDocument", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Parse([]byte(sampleYAML))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Expected debug level, got %q", cfg.Log.Level)
		}
		if cfg.AWS.Region != "us-east-1" || cfg.AWS.Endpoint != "http://localhost:8000" {
			t.Errorf("unexpected AWS config %+v", cfg.AWS)
		}

		accounts, err := cfg.Store("accounts")
		if err != nil {
			t.Fatalf("Store(accounts) failed: %v", err)
		}
		if accounts.Backend != BackendDynamoDB || accounts.Table != "accounts" {
			t.Errorf("unexpected accounts store %+v", accounts)
		}

		sessions, _ := cfg.Store("sessions")
		if sessions.Backend != BackendMemory {
			t.Errorf("Expected memory default backend, got %q", sessions.Backend)
		}

		names := cfg.StoreNames()
		if len(names) != 2 || names[0] != "accounts" || names[1] != "sessions" {
			t.Errorf("Expected sorted store names, got %v", names)
		}
	})

	t.Run("EmptyDocument", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Parse(nil)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if cfg.Log.Level != "info" || len(cfg.Stores) != 0 {
			t.Fatalf("unexpected defaults %+v", cfg)
		}
		if _, err := cfg.Store("missing"); !errors.IsNotFound(err) {
			t.Fatalf("Expected not found, got %v", err)
		}
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvLogLevel, "warn")
		t.Setenv(EnvAWSRegion, "eu-west-1")
		t.Setenv(EnvAWSAccessKeyID, "AKID")
		t.Setenv(EnvAWSSecretAccessKey, "secret")

		cfg, err := Parse([]byte(sampleYAML))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if cfg.Log.Level != "warn" || cfg.AWS.Region != "eu-west-1" {
			t.Fatalf("env overrides not applied: %+v", cfg)
		}
		if cfg.AWS.AccessKeyID != "AKID" || cfg.AWS.SecretAccessKey != "secret" {
			t.Fatal("credentials should come from the environment")
		}
	})

	t.Run("UnknownField", func(t *testing.T) {
		clearEnv(t)

		if _, err := Parse([]byte("stores:\n  a:\n    tabel: x\n")); err == nil {
			t.Fatal("Expected error for unknown field")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{
			name:  "bad level",
			yaml:  "log:\n  level: loud\n",
			field: "log.level",
		},
		{
			name:  "unknown backend",
			yaml:  "stores:\n  a:\n    backend: redis\n",
			field: "stores.a.backend",
		},
		{
			name:  "dynamodb without table",
			yaml:  "aws:\n  region: us-east-1\nstores:\n  a:\n    backend: dynamodb\n",
			field: "stores.a.table",
		},
		{
			name:  "dynamodb without region",
			yaml:  "stores:\n  a:\n    backend: dynamodb\n    table: t\n",
			field: "aws.region",
		},
		{
			name:  "endpoint without scheme",
			yaml:  "aws:\n  endpoint: localhost:8000\n",
			field: "aws.endpoint",
		},
		{
			name:  "endpoint with bad host",
			yaml:  "aws:\n  endpoint: http://bad_host!:8000\n",
			field: "aws.endpoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			_, err := Parse([]byte(tt.yaml))
			if !errors.IsValidationError(err) {
				t.Fatalf("Expected validation error, got %v", err)
			}
			verr, ok := err.(*errors.ValidationError)
			if !ok || verr.Field != tt.field {
				t.Fatalf("Expected error on %s, got %v", tt.field, err)
			}
		})
	}

	t.Run("ip endpoint", func(t *testing.T) {
		clearEnv(t)
		if _, err := Parse([]byte("aws:\n  endpoint: http://127.0.0.1:8000\n")); err != nil {
			t.Fatalf("IP endpoints should be accepted: %v", err)
		}
	})
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("DDDLIB_LOG_LEVEL=error\nAWS_REGION=ap-south-1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	yamlFile := filepath.Join(dir, "services.yaml")
	if err := os.WriteFile(yamlFile, []byte(sampleYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(envFile, yamlFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "error" || cfg.AWS.Region != "ap-south-1" {
		t.Fatalf(".env values should override YAML, got %+v", cfg)
	}

	t.Run("MissingEnvFileIgnored", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "nope.env"), yamlFile); err != nil {
			t.Fatalf("missing env file should be ignored: %v", err)
		}
	})

	t.Run("MissingYAMLFile", func(t *testing.T) {
		if _, err := Load("", filepath.Join(dir, "nope.yaml")); err == nil {
			t.Fatal("Expected error for missing config file")
		}
	})
}
