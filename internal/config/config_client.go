// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// DefaultClientRequestTimeout is used when no client timeout is configured.
const DefaultClientRequestTimeout = 5 * time.Second

// ClientAdapter holds the settings the CLI client uses to reach the server.
type ClientAdapter struct {
	// HTTPAddress is the server address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout for a single request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AccessHeader is the header name sent with every request.
	// Env: ADAPTER_ACCESS_HEADER
	AccessHeader string `env:"ACCESS_HEADER"`

	// AccessToken is the value sent in AccessHeader. The server only checks
	// that the header is present, so any value, including empty, works.
	// Env: ADAPTER_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`
}

// ClientConfig is the configuration of the CLI client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
}

// GetClientConfig loads the client configuration from an optional .env
// file and the environment, applies overrides (typically command-line
// flags) on top and fills the remaining gaps with defaults.
func GetClientConfig(overrides ClientConfig) (*ClientConfig, error) {
	loader := newConfigBuilder().withDotEnv()
	if loader.err != nil {
		return nil, loader.err
	}

	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if err := mergo.Merge(cfg, overrides, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging client configs: %w", err)
	}

	defaults := ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultClientRequestTimeout,
			AccessHeader:   DefaultAccessHeader,
		},
	}
	if err := mergo.Merge(cfg, defaults); err != nil {
		return nil, fmt.Errorf("error merging client defaults: %w", err)
	}

	return cfg, cfg.validate()
}
