/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"net/url"
	"os"
	"sort"

	"github.com/go-openapi/strfmt"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/suparena/dddlib/errors"
)

// Store backends
const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
)

// Environment variables that override the YAML document
const (
	EnvLogLevel           = "DDDLIB_LOG_LEVEL"
	EnvDynamoDBEndpoint   = "DDDLIB_DYNAMODB_ENDPOINT"
	EnvAWSRegion          = "AWS_REGION"
	EnvAWSAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvAWSSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
)

// Config describes how a service wires its dependencies.
type Config struct {
	Log    LogConfig              `yaml:"log"`
	AWS    AWSConfig              `yaml:"aws"`
	Stores map[string]StoreConfig `yaml:"stores"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level        string   `yaml:"level"`
	Outputs      []string `yaml:"outputs"`
	ErrorOutputs []string `yaml:"errorOutputs"`
}

// AWSConfig holds the AWS connection settings. Credentials only come from
// the environment.
type AWSConfig struct {
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"-"`
	SecretAccessKey string `yaml:"-"`
}

// StoreConfig selects the backend of one named datastore.
type StoreConfig struct {
	Backend string `yaml:"backend"`
	Table   string `yaml:"table"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Stores: make(map[string]StoreConfig),
	}
}

// Load reads envFile into the process environment, then parses yamlFile.
// Either path may be empty, and a missing env file is ignored.
func Load(envFile, yamlFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	var data []byte
	if yamlFile != "" {
		var err error
		data, err = os.ReadFile(yamlFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return Parse(data)
}

// Parse decodes a YAML document, applies environment overrides and
// defaults, and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvAWSRegion); v != "" {
		c.AWS.Region = v
	}
	if v := os.Getenv(EnvDynamoDBEndpoint); v != "" {
		c.AWS.Endpoint = v
	}
	c.AWS.AccessKeyID = os.Getenv(EnvAWSAccessKeyID)
	c.AWS.SecretAccessKey = os.Getenv(EnvAWSSecretAccessKey)
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Stores == nil {
		c.Stores = make(map[string]StoreConfig)
	}
	for name, sc := range c.Stores {
		if sc.Backend == "" {
			sc.Backend = BackendMemory
			c.Stores[name] = sc
		}
	}
}

// Validate checks the configuration for values bootstrap cannot act on.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.NewValidationError("log.level", err.Error())
	}

	needsAWS := false
	for _, name := range c.StoreNames() {
		sc := c.Stores[name]
		field := "stores." + name
		switch sc.Backend {
		case BackendMemory:
		case BackendDynamoDB:
			needsAWS = true
			if sc.Table == "" {
				return errors.NewValidationError(field+".table", "required for the dynamodb backend")
			}
		default:
			return errors.NewValidationError(field+".backend", fmt.Sprintf("unknown backend %q", sc.Backend))
		}
	}

	if needsAWS && c.AWS.Region == "" {
		return errors.NewValidationError("aws.region", "required when a dynamodb store is configured")
	}
	if c.AWS.Endpoint != "" {
		u, err := url.Parse(c.AWS.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || !validHost(u.Hostname()) {
			return errors.NewValidationError("aws.endpoint", fmt.Sprintf("%q is not an http(s) URL with a valid host", c.AWS.Endpoint))
		}
	}
	return nil
}

func validHost(host string) bool {
	return net.ParseIP(host) != nil || strfmt.IsHostname(host)
}

// StoreNames returns the configured store names in sorted order.
func (c *Config) StoreNames() []string {
	names := make([]string, 0, len(c.Stores))
	for name := range c.Stores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Store returns the configuration of the named store.
func (c *Config) Store(name string) (StoreConfig, error) {
	sc, ok := c.Stores[name]
	if !ok {
		return StoreConfig{}, errors.NewNotFoundError("store", name)
	}
	return sc, nil
}
