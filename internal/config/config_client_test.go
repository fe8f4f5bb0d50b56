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
	cfg, rest, err := GetClientConfig([]string{"list"})

	require.NoError(t, err)
	assert.Equal(t, DefaultClientServerURL, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultClientRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, []string{"list"}, rest)
}

func TestGetClientConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("POSTS_SERVER_URL", "http://env-host:8000")
	t.Setenv("POSTS_REQUEST_TIMEOUT", "3s")
	t.Setenv("POSTS_TOKEN", "env-token")

	cfg, rest, err := GetClientConfig([]string{"-s", "http://flag-host:9000", "get", "5"})

	require.NoError(t, err)
	assert.Equal(t, "http://flag-host:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "env-token", cfg.Adapter.Token)
	assert.Equal(t, []string{"get", "5"}, rest)
}

func TestGetClientConfig_BadFlag(t *testing.T) {
	_, _, err := GetClientConfig([]string{"-t", "soon"})

	assert.Error(t, err)
}
