// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig(ClientConfig{})

	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultClientRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultAccessHeader, cfg.Adapter.AccessHeader)
	assert.Empty(t, cfg.Adapter.AccessToken)
}

func TestGetClientConfig_EnvAndOverrides(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://env-host:8080")
	t.Setenv("ADAPTER_ACCESS_TOKEN", "env-token")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "1s")

	cfg, err := GetClientConfig(ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "http://flag-host:9090"},
	})

	require.NoError(t, err)
	assert.Equal(t, "http://flag-host:9090", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "env-token", cfg.Adapter.AccessToken)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultAccessHeader, cfg.Adapter.AccessHeader)
}

func TestGetClientConfig_InvalidEnv(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "eventually")

	_, err := GetClientConfig(ClientConfig{})
	require.Error(t, err)
}
